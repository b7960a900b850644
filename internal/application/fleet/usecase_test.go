package fleet_test

import (
	"context"
	"testing"

	"github.com/jhoicas/sys360/internal/application/auth"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/bootstrap"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// deliverySale registra una venta con flete para un cliente con dirección.
func deliverySale(t *testing.T, c *bootstrap.Container, doc, address string) int64 {
	t.Helper()
	ctx := context.Background()
	cl, err := c.ClientUC.Create(ctx, dto.ClientRequest{Name: "Cliente " + doc, CPFCNPJ: doc, Address: address})
	require.NoError(t, err)
	pid := testutil.CreateProduct(t, c, "Produto "+doc, 10, "10.00")
	res, err := c.CheckoutUC.Checkout(ctx, auth.Session{UserID: testutil.AdminID(t, c)}, dto.CheckoutRequest{
		Items:    []dto.CartItem{{ProductID: pid, Quantity: 1, UnitPrice: dec("10.00")}},
		ClientID: &cl.ID,
		Freight:  dec("8.00"),
	})
	require.NoError(t, err)
	return res.SaleID
}

func TestVehicleCRUD(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	v, err := c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "Fiorino", Plate: " abc1d23 ", CapacityKg: dec("650")})
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", v.Plate)
	assert.Equal(t, entity.VehicleAvailable, v.Status)

	_, err = c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "Outro", Plate: "ABC1D23"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "", Plate: "XYZ"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	n, err := c.FleetUC.UpdateVehicle(ctx, v.ID, dto.VehicleRequest{Model: "Fiorino 1.4", Plate: "ABC1D23", Status: entity.VehicleMaintenance})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := c.FleetUC.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.VehicleMaintenance, list[0].Status)

	require.NoError(t, c.FleetUC.ReleaseVehicle(ctx, v.ID))
	assert.ErrorIs(t, c.FleetUC.ReleaseVehicle(ctx, 999), domain.ErrNotFound)

	n, err = c.FleetUC.DeleteVehicle(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRecordMaintenance_LancaDespesa(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	v, err := c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "Kombi", Plate: "KOM0001"})
	require.NoError(t, err)

	m, err := c.FleetUC.RecordMaintenance(ctx, testutil.AdminID(t, c), v.ID, dto.MaintenanceRequest{Description: "Troca de óleo", Cost: dec("180")})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	list, err := c.FleetUC.ListMaintenance(ctx, v.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	entries, err := c.LedgerUC.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.DirectionOut, entries[0].Direction)
	assert.Equal(t, "Manutenção KOM0001: Troca de óleo", entries[0].Description)
	assert.Equal(t, entity.CategoryMaintenance, entries[0].Category)

	_, err = c.FleetUC.RecordMaintenance(ctx, 0, 999, dto.MaintenanceRequest{Description: "x", Cost: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDispatch_YEntrega(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	s1 := deliverySale(t, c, "52998224725", "Rua das Flores, 10")
	s2 := deliverySale(t, c, "11222333000181", "Av. Central 500")
	v, err := c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "HR", Plate: "HRX2024"})
	require.NoError(t, err)

	pending, err := c.FleetUC.ListPendingDeliveries(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	m, err := c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: v.ID, SaleIDs: []int64{s1, s2, s1}})
	require.NoError(t, err)
	assert.Equal(t, "HRX2024", m.Plate)
	assert.Equal(t, []string{"Rua das Flores, 10", "Av. Central 500"}, m.Addresses)
	assert.Contains(t, m.RouteURL, "https://www.google.com/maps/dir/")

	pending, err = c.FleetUC.ListPendingDeliveries(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	vs, err := c.FleetUC.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleOnRoute, vs[0].Status)

	require.NoError(t, c.FleetUC.MarkDelivered(ctx, s1))
	err = c.FleetUC.MarkDelivered(ctx, s1)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, c.FleetUC.MarkDelivered(ctx, 9999), domain.ErrNotFound)

	detail, err := c.HistoryUC.GetSale(ctx, s2)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryOnRoute, detail.DeliveryStatus)
	require.NotNil(t, detail.VehicleID)
	assert.Equal(t, v.ID, *detail.VehicleID)
}

func TestDispatch_VendaJaDespachadaNaoAlteraNada(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	s1 := deliverySale(t, c, "52998224725", "Rua das Flores, 10")
	s2 := deliverySale(t, c, "11222333000181", "Av. Central 500")
	v1, err := c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "HR", Plate: "AAA0001"})
	require.NoError(t, err)
	v2, err := c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "HR", Plate: "BBB0002"})
	require.NoError(t, err)

	_, err = c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: v1.ID, SaleIDs: []int64{s1}})
	require.NoError(t, err)

	_, err = c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: v2.ID, SaleIDs: []int64{s2, s1}})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, domain.Reason(err), entity.DeliveryOnRoute)

	// s2 sigue pendente y v2 disponível: la tx se deshizo completa.
	pending, err := c.FleetUC.ListPendingDeliveries(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, s2, pending[0].SaleID)
	vs, err := c.FleetUC.ListVehicles(ctx)
	require.NoError(t, err)
	for _, v := range vs {
		if v.ID == v2.ID {
			assert.Equal(t, entity.VehicleAvailable, v.Status)
		}
	}
}

func TestDispatch_Rechazos(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	s1 := deliverySale(t, c, "52998224725", "Rua das Flores, 10")
	v, err := c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "HR", Plate: "MNT0001", Status: entity.VehicleMaintenance})
	require.NoError(t, err)

	_, err = c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: v.ID, SaleIDs: []int64{s1}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: 999, SaleIDs: []int64{s1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, c.FleetUC.ReleaseVehicle(ctx, v.ID))
	_, err = c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: v.ID, SaleIDs: []int64{9999}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: v.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDispatch_VendaSemFreteRejeitada(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	pid := testutil.CreateProduct(t, c, "Balcão", 5, "10.00")
	res, err := c.CheckoutUC.Checkout(ctx, auth.Session{UserID: testutil.AdminID(t, c)}, dto.CheckoutRequest{
		Items: []dto.CartItem{{ProductID: pid, Quantity: 1, UnitPrice: dec("10.00")}},
	})
	require.NoError(t, err)
	v, err := c.FleetUC.CreateVehicle(ctx, dto.VehicleRequest{Model: "HR", Plate: "CCC0003"})
	require.NoError(t, err)

	_, err = c.FleetUC.Dispatch(ctx, dto.DispatchRequest{VehicleID: v.ID, SaleIDs: []int64{res.SaleID}})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, domain.Reason(err), "não tem frete")

	detail, err := c.HistoryUC.GetSale(ctx, res.SaleID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryPending, detail.DeliveryStatus)
	vs, err := c.FleetUC.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, entity.VehicleAvailable, vs[0].Status)
}
