package repository

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]*entity.Product, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	// DecrementStock descuenta qty solo si hay stock suficiente; devuelve filas afectadas (0 = sin stock).
	DecrementStock(ctx context.Context, id int64, qty int) (int64, error)
}
