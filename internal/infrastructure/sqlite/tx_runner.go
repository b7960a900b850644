package sqlite

import (
	"context"

	"github.com/jhoicas/sys360/internal/application/fleet"
	"github.com/jhoicas/sys360/internal/application/sales"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"gorm.io/gorm"
)

// Ensure TxRunner implements sales.TxRunner y fleet.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ fleet.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
// El DSN usa _txlock=immediate: el bloqueo de escritura se toma al iniciar.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunSale ejecuta fn con repos de venta y producto atados a la tx; commit si fn no falla, rollback si falla.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSaleRepository(tx), NewProductRepository(tx))
	})
}

// RunDispatch ejecuta fn con repos de venta y vehículo atados a la tx (manifiesto de entrega).
func (r *TxRunner) RunDispatch(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	vehicleRepo repository.VehicleRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSaleRepository(tx), NewVehicleRepository(tx))
	})
}
