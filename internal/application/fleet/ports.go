package fleet

import (
	"context"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/finance"
	"github.com/jhoicas/sys360/internal/domain/repository"
)

// TxRunner ejecuta fn con repos de venta y vehículo atados a una transacción.
type TxRunner interface {
	RunDispatch(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		vehicleRepo repository.VehicleRepository,
	) error) error
}

// ExpenseRecorder registra salidas de caja (mantenimientos). Lo implementa *finance.LedgerUseCase.
type ExpenseRecorder interface {
	RecordEntry(ctx context.Context, in finance.EntryInput) (*dto.LedgerEntryResponse, error)
	CategoryID(ctx context.Context, name string) *int64
}
