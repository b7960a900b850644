package fleet

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/finance"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/config"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/shopspring/decimal"
)

// FleetUseCase flota, mantenimientos y entregas.
type FleetUseCase struct {
	vehicleRepo repository.VehicleRepository
	saleRepo    repository.SaleRepository
	txRunner    TxRunner
	expenses    ExpenseRecorder
	freight     config.FreightConfig
	log         *logger.Logger
	now         func() time.Time
}

// NewFleetUseCase construye el caso de uso. expenses puede ser nil (mantenimiento sin movimiento de caja).
func NewFleetUseCase(
	vehicleRepo repository.VehicleRepository,
	saleRepo repository.SaleRepository,
	txRunner TxRunner,
	expenses ExpenseRecorder,
	freight config.FreightConfig,
	log *logger.Logger,
) *FleetUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &FleetUseCase{
		vehicleRepo: vehicleRepo,
		saleRepo:    saleRepo,
		txRunner:    txRunner,
		expenses:    expenses,
		freight:     freight,
		log:         log.Named("fleet"),
		now:         time.Now,
	}
}

func validVehicleStatus(s string) bool {
	return s == entity.VehicleAvailable || s == entity.VehicleOnRoute || s == entity.VehicleMaintenance
}

func (uc *FleetUseCase) toVehicle(in dto.VehicleRequest) (*entity.Vehicle, error) {
	model := strings.TrimSpace(in.Model)
	plate := strings.ToUpper(strings.TrimSpace(in.Plate))
	if model == "" || plate == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Modelo e Placa são obrigatórios")
	}
	if in.CapacityKg.IsNegative() {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Capacidade não pode ser negativa")
	}
	status := in.Status
	if status == "" {
		status = entity.VehicleAvailable
	}
	if !validVehicleStatus(status) {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Status de veículo inválido: %s", status)
	}
	return &entity.Vehicle{Model: model, Plate: plate, CapacityKg: in.CapacityKg, Status: status}, nil
}

// CreateVehicle cadastra un vehículo. Placa repetida devuelve ErrDuplicate.
func (uc *FleetUseCase) CreateVehicle(ctx context.Context, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	v, err := uc.toVehicle(in)
	if err != nil {
		return nil, err
	}
	if err := uc.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("vehicle_id", v.ID).Str("plate", v.Plate).Msg("veículo cadastrado")
	return toVehicleResponse(v), nil
}

// UpdateVehicle reemplaza datos del vehículo; devuelve filas afectadas.
func (uc *FleetUseCase) UpdateVehicle(ctx context.Context, id int64, in dto.VehicleRequest) (int64, error) {
	v, err := uc.toVehicle(in)
	if err != nil {
		return 0, err
	}
	v.ID = id
	return uc.vehicleRepo.Update(ctx, v)
}

// DeleteVehicle elimina un vehículo.
func (uc *FleetUseCase) DeleteVehicle(ctx context.Context, id int64) (int64, error) {
	return uc.vehicleRepo.Delete(ctx, id)
}

// ListVehicles vehículos. Falla del store degrada a lista vacía.
func (uc *FleetUseCase) ListVehicles(ctx context.Context) ([]dto.VehicleResponse, error) {
	list, err := uc.vehicleRepo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar veículos")
		return []dto.VehicleResponse{}, nil
	}
	out := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVehicleResponse(v))
	}
	return out, nil
}

// ReleaseVehicle devuelve el vehículo a disponivel (fin de ruta o de mantenimiento).
func (uc *FleetUseCase) ReleaseVehicle(ctx context.Context, id int64) error {
	n, err := uc.vehicleRepo.UpdateStatus(ctx, id, entity.VehicleAvailable)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RecordMaintenance registra el mantenimiento y la salida de caja en "Manutenção de Frota".
// Falla del movimiento no deshace el mantenimiento; se registra en el log.
func (uc *FleetUseCase) RecordMaintenance(ctx context.Context, userID, vehicleID int64, in dto.MaintenanceRequest) (*dto.MaintenanceResponse, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Descrição é obrigatória")
	}
	if in.Cost.IsNegative() {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Custo não pode ser negativo")
	}
	v, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	date := uc.now()
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	m := &entity.Maintenance{VehicleID: vehicleID, Date: date, Description: desc, Cost: in.Cost.Round(2)}
	if err := uc.vehicleRepo.CreateMaintenance(ctx, m); err != nil {
		return nil, err
	}
	if uc.expenses != nil && m.Cost.IsPositive() {
		var uid *int64
		if userID > 0 {
			uid = &userID
		}
		_, err := uc.expenses.RecordEntry(ctx, finance.EntryInput{
			Description: "Manutenção " + v.Plate + ": " + desc,
			Amount:      m.Cost,
			Direction:   entity.DirectionOut,
			UserID:      uid,
			CategoryID:  uc.expenses.CategoryID(ctx, entity.CategoryMaintenance),
		})
		if err != nil {
			uc.log.Error().Err(err).Int64("vehicle_id", vehicleID).Msg("falha ao lançar manutenção no financeiro")
		}
	}
	return &dto.MaintenanceResponse{ID: m.ID, VehicleID: m.VehicleID, Date: m.Date, Description: m.Description, Cost: m.Cost}, nil
}

// ListMaintenance historial de mantenimientos del vehículo.
func (uc *FleetUseCase) ListMaintenance(ctx context.Context, vehicleID int64) ([]dto.MaintenanceResponse, error) {
	list, err := uc.vehicleRepo.ListMaintenance(ctx, vehicleID)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar manutenções")
		return []dto.MaintenanceResponse{}, nil
	}
	out := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MaintenanceResponse{ID: m.ID, VehicleID: m.VehicleID, Date: m.Date, Description: m.Description, Cost: m.Cost})
	}
	return out, nil
}

// ListPendingDeliveries ventas pendientes con flete, más antiguas primero.
func (uc *FleetUseCase) ListPendingDeliveries(ctx context.Context) ([]dto.PendingDeliveryResponse, error) {
	list, err := uc.saleRepo.ListPendingDeliveries(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar entregas pendentes")
		return []dto.PendingDeliveryResponse{}, nil
	}
	out := make([]dto.PendingDeliveryResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PendingDeliveryResponse{
			SaleID:    p.SaleID,
			CreatedAt: p.CreatedAt,
			Client:    p.ClientName,
			Address:   p.Address,
			Freight:   p.Freight,
			Total:     p.Total,
		})
	}
	return out, nil
}

// Dispatch monta el manifesto en una transacción: cada venta pasa de pendente a em_rota con el vehículo,
// y el vehículo a em_rota. Si alguna venta no está pendente no se cambia nada.
func (uc *FleetUseCase) Dispatch(ctx context.Context, in dto.DispatchRequest) (*dto.ManifestResponse, error) {
	if in.VehicleID <= 0 || len(in.SaleIDs) == 0 {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Selecione um veículo e ao menos uma venda")
	}
	out := &dto.ManifestResponse{VehicleID: in.VehicleID, SaleIDs: in.SaleIDs}
	vehicleID := in.VehicleID

	err := uc.txRunner.RunDispatch(ctx, func(saleRepo repository.SaleRepository, vehicleRepo repository.VehicleRepository) error {
		v, err := vehicleRepo.GetByID(ctx, vehicleID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError(domain.ErrNotFound, "Veículo ID %d não encontrado", vehicleID)
		}
		if v.Status == entity.VehicleMaintenance {
			return domain.NewValidationError(domain.ErrConflict, "Veículo %s está em manutenção", v.Plate)
		}
		out.Plate = v.Plate

		seen := make(map[int64]bool, len(in.SaleIDs))
		for _, id := range in.SaleIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			d, err := saleRepo.GetDetail(ctx, id)
			if err != nil {
				return err
			}
			if d == nil {
				return domain.NewValidationError(domain.ErrNotFound, "Venda #%d não encontrada", id)
			}
			// sin flete no es entrega
			if !d.Sale.Freight.IsPositive() {
				return domain.NewValidationError(domain.ErrConflict, "Venda #%d não tem frete", id)
			}
			n, err := saleRepo.UpdateDelivery(ctx, id, entity.DeliveryPending, entity.DeliveryOnRoute, &vehicleID)
			if err != nil {
				return err
			}
			if n == 0 {
				return domain.NewValidationError(domain.ErrConflict, "Venda #%d não está pendente (%s)", id, d.DeliveryStatus)
			}
			out.Addresses = append(out.Addresses, d.ClientAddress)
		}
		if _, err := vehicleRepo.UpdateStatus(ctx, vehicleID, entity.VehicleOnRoute); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			uc.log.Error().Err(err).Int64("vehicle_id", vehicleID).Msg("falha no despacho")
		}
		return nil, err
	}
	out.RouteURL = RouteLink(out.Addresses)
	uc.log.Info().Int64("vehicle_id", vehicleID).Int("sales", len(in.SaleIDs)).Msg("romaneio criado")
	return out, nil
}

// MarkDelivered pasa la venta de em_rota a entregue. Otra transición devuelve ErrConflict.
func (uc *FleetUseCase) MarkDelivered(ctx context.Context, saleID int64) error {
	n, err := uc.saleRepo.UpdateDelivery(ctx, saleID, entity.DeliveryOnRoute, entity.DeliveryDelivered, nil)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	s, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return domain.NewValidationError(domain.ErrConflict, "Venda #%d não está em rota (%s)", saleID, s.DeliveryStatus)
}

// EstimateFreight estimativa con los parámetros configurados.
func (uc *FleetUseCase) EstimateFreight(distanceKm, weightKg decimal.Decimal) (decimal.Decimal, error) {
	return EstimateFreight(uc.freight, distanceKm, weightKg)
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{ID: v.ID, Model: v.Model, Plate: v.Plate, CapacityKg: v.CapacityKg, Status: v.Status}
}
