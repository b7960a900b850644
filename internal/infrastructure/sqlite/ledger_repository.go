package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo libro de caja sobre SQLite.
type LedgerRepo struct {
	db *gorm.DB
}

// NewLedgerRepository construye el adaptador.
func NewLedgerRepository(db *gorm.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

func (r *LedgerRepo) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	row := ledgerRow{
		CreatedAt:   entry.CreatedAt,
		Description: entry.Description,
		Amount:      entry.Amount,
		Direction:   entry.Direction,
		CategoryID:  entry.CategoryID,
		SaleID:      entry.SaleID,
		UserID:      entry.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert ledger entry: %w", translate(err))
	}
	entry.ID = row.ID
	return nil
}

type ledgerListRow struct {
	ID          int64           `gorm:"column:id"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	Description string          `gorm:"column:description"`
	Amount      decimal.Decimal `gorm:"column:amount"`
	Direction   string          `gorm:"column:direction"`
	CategoryID  *int64          `gorm:"column:category_id"`
	SaleID      *int64          `gorm:"column:sale_id"`
	UserID      *int64          `gorm:"column:user_id"`
	UserName    string          `gorm:"column:user_name"`
	Category    string          `gorm:"column:category_name"`
}

const ledgerSelect = `
	SELECT e.id, e.created_at, e.description, e.amount, e.direction, e.category_id, e.sale_id, e.user_id,
	       COALESCE(u.name, '') AS user_name, COALESCE(c.name, '') AS category_name
	FROM ledger_entries e
	LEFT JOIN users u ON u.id = e.user_id
	LEFT JOIN ledger_categories c ON c.id = e.category_id`

// List movimientos más recientes primero, con el nombre de quien los registró.
func (r *LedgerRepo) List(ctx context.Context) ([]*entity.LedgerEntry, error) {
	var rows []ledgerListRow
	if err := r.db.WithContext(ctx).Raw(ledgerSelect + ` ORDER BY e.created_at DESC, e.id DESC`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	return toEntries(rows), nil
}

// ListBySale movimientos vinculados a una venta.
func (r *LedgerRepo) ListBySale(ctx context.Context, saleID int64) ([]*entity.LedgerEntry, error) {
	var rows []ledgerListRow
	if err := r.db.WithContext(ctx).Raw(ledgerSelect+` WHERE e.sale_id = ? ORDER BY e.id`, saleID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list ledger by sale: %w", err)
	}
	return toEntries(rows), nil
}

func toEntries(rows []ledgerListRow) []*entity.LedgerEntry {
	out := make([]*entity.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.LedgerEntry{
			ID:          row.ID,
			CreatedAt:   row.CreatedAt,
			Description: row.Description,
			Amount:      row.Amount.Round(2),
			Direction:   row.Direction,
			CategoryID:  row.CategoryID,
			SaleID:      row.SaleID,
			UserID:      row.UserID,
			UserName:    row.UserName,
			Category:    row.Category,
		})
	}
	return out
}

// Totals Σ entradas y Σ salidas.
func (r *LedgerRepo) Totals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var res struct {
		TotalIn  decimal.Decimal `gorm:"column:total_in"`
		TotalOut decimal.Decimal `gorm:"column:total_out"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN direction = 'entrada' THEN amount ELSE 0 END), 0) AS total_in,
		       COALESCE(SUM(CASE WHEN direction = 'saida' THEN amount ELSE 0 END), 0) AS total_out
		FROM ledger_entries`).Scan(&res).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("ledger totals: %w", err)
	}
	return res.TotalIn.Round(2), res.TotalOut.Round(2), nil
}

// CreateCategory inserta la categoría. Si el nombre ya existe carga el ID existente (seed idempotente).
func (r *LedgerRepo) CreateCategory(ctx context.Context, cat *entity.LedgerCategory) error {
	existing, err := r.GetCategoryByName(ctx, cat.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		cat.ID = existing.ID
		return nil
	}
	row := ledgerCategoryRow{Name: cat.Name, Kind: cat.Kind}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if e := translate(err); e != err {
			return e
		}
		return fmt.Errorf("insert ledger category: %w", err)
	}
	cat.ID = row.ID
	return nil
}

func (r *LedgerRepo) ListCategories(ctx context.Context) ([]*entity.LedgerCategory, error) {
	var rows []ledgerCategoryRow
	if err := r.db.WithContext(ctx).Order("kind DESC, name COLLATE NOCASE").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list ledger categories: %w", err)
	}
	out := make([]*entity.LedgerCategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.LedgerCategory{ID: row.ID, Name: row.Name, Kind: row.Kind})
	}
	return out, nil
}

// GetCategoryByName (nil, nil) si no existe.
func (r *LedgerRepo) GetCategoryByName(ctx context.Context, name string) (*entity.LedgerCategory, error) {
	var row ledgerCategoryRow
	err := r.db.WithContext(ctx).Where("name = ?", name).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger category: %w", err)
	}
	return &entity.LedgerCategory{ID: row.ID, Name: row.Name, Kind: row.Kind}, nil
}
