package repository

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LedgerRepository libro de caja y categorías.
type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	List(ctx context.Context) ([]*entity.LedgerEntry, error)
	ListBySale(ctx context.Context, saleID int64) ([]*entity.LedgerEntry, error)
	// Totals devuelve Σ entradas y Σ salidas.
	Totals(ctx context.Context) (in, out decimal.Decimal, err error)
	CreateCategory(ctx context.Context, cat *entity.LedgerCategory) error
	ListCategories(ctx context.Context) ([]*entity.LedgerCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*entity.LedgerCategory, error)
}
