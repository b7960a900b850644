package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre SQLite (usable con la conexión o con una tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador. Pasar la conexión o la tx.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un producto y asigna su ID. Nombre repetido devuelve domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	row := productToRow(product)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if e := translate(err); e != err {
			return e
		}
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = row.ID
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var row productRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// GetByIDs carga varios productos en una sola consulta.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	out := make(map[int64]*entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []productRow
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row.toEntity()
	}
	return out, nil
}

// Update reescribe todos los campos editables; devuelve filas afectadas.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	res := r.db.WithContext(ctx).Model(&productRow{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":       product.Name,
		"quantity":   product.Quantity,
		"sell_price": product.SellPrice,
		"cost_price": product.CostPrice,
		"category":   product.Category,
		"supplier":   product.Supplier,
	})
	if res.Error != nil {
		if e := translate(res.Error); e != res.Error {
			return 0, e
		}
		return 0, fmt.Errorf("update product: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete elimina por ID. Un producto con ventas devuelve domain.ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productRow{})
	if res.Error != nil {
		if e := translate(res.Error); e != res.Error {
			return 0, e
		}
		return 0, fmt.Errorf("delete product: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// List todos los productos por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("name COLLATE NOCASE").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return toProducts(rows), nil
}

// SearchByName productos cuyo nombre contiene term (sin distinguir mayúsculas).
func (r *ProductRepo) SearchByName(ctx context.Context, term string) ([]*entity.Product, error) {
	var rows []productRow
	err := r.db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, likePattern(term)).
		Order("name COLLATE NOCASE").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return toProducts(rows), nil
}

// ListLowStock productos con quantity < threshold, menor cantidad primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	var rows []productRow
	err := r.db.WithContext(ctx).
		Where("quantity < ?", threshold).
		Order("quantity ASC, name COLLATE NOCASE").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return toProducts(rows), nil
}

// DecrementStock UPDATE condicional: solo descuenta si quantity >= qty.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"UPDATE products SET quantity = quantity - ? WHERE id = ? AND quantity >= ?",
		qty, id, qty,
	)
	if res.Error != nil {
		return 0, fmt.Errorf("decrement stock: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func toProducts(rows []productRow) []*entity.Product {
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out
}
