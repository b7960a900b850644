package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/sys360/internal/application/analytics"
	"github.com/jhoicas/sys360/internal/application/auth"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/infrastructure/sqlite"
	"github.com/jhoicas/sys360/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDashboard_ConVentas(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	arroz := testutil.CreateProduct(t, c, "Arroz", 20, "10.00")
	feijao := testutil.CreateProduct(t, c, "Feijão", 3, "8.00")
	sess := auth.Session{UserID: testutil.AdminID(t, c)}

	_, err := c.CheckoutUC.Checkout(ctx, sess, dto.CheckoutRequest{Items: []dto.CartItem{
		{ProductID: arroz, Quantity: 4, UnitPrice: dec("10.00")},
		{ProductID: feijao, Quantity: 1, UnitPrice: dec("8.00")},
	}})
	require.NoError(t, err)

	d, err := c.DashboardUC.Dashboard(ctx)
	require.NoError(t, err)

	require.Len(t, d.SalesLastDays, 7)
	today := d.SalesLastDays[6]
	assert.Equal(t, time.Now().Format("2006-01-02"), today.Day)
	assert.Equal(t, 1, today.Count)
	assert.True(t, today.Total.Equal(dec("48")), "hoje = %s", today.Total)
	assert.True(t, d.SalesLastDays[0].Total.IsZero())

	require.Len(t, d.TopProducts, 2)
	assert.Equal(t, "Arroz", d.TopProducts[0].Name)
	assert.Equal(t, 4, d.TopProducts[0].Quantity)

	assert.True(t, d.Balance.Balance.Equal(dec("48")))

	require.Len(t, d.LowStock, 1)
	assert.Equal(t, "Feijão", d.LowStock[0].Name)
	assert.Equal(t, 5, d.Threshold)
}

type brokenAnalytics struct{}

func (brokenAnalytics) SalesByDay(context.Context, time.Time) ([]entity.DailySales, error) {
	return nil, errors.New("no such table: sales")
}

func (brokenAnalytics) TopProducts(context.Context, int) ([]entity.TopProduct, error) {
	return nil, errors.New("no such table: sale_items")
}

func TestDashboard_WidgetQueFallaQuedaVacio(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	testutil.CreateProduct(t, c, "Sal", 1, "2.00")
	uc := analytics.NewDashboardUseCase(brokenAnalytics{}, sqlite.NewLedgerRepository(c.DB), sqlite.NewProductRepository(c.DB), 5, nil)

	d, err := uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.NotNil(t, d.SalesLastDays)
	assert.Empty(t, d.SalesLastDays)
	assert.Empty(t, d.TopProducts)
	assert.Len(t, d.LowStock, 1)

	_, err = uc.SalesLastDays(ctx, 7)
	assert.Error(t, err)
}
