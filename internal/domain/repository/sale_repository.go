package repository

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
)

// SaleRepository persistencia de ventas y sus líneas.
type SaleRepository interface {
	// CreateHeader inserta la cabecera y asigna sale.ID.
	CreateHeader(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	GetDetail(ctx context.Context, id int64) (*entity.SaleDetail, error)
	List(ctx context.Context) ([]entity.SaleSummary, error)
	Items(ctx context.Context, saleID int64) ([]entity.SaleLine, error)
	UpdateDelivery(ctx context.Context, saleID int64, fromStatus, toStatus string, vehicleID *int64) (int64, error)
	ListPendingDeliveries(ctx context.Context) ([]entity.PendingDelivery, error)
	Count(ctx context.Context) (int64, error)
}
