package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	db *gorm.DB
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// SalesByDay agrupa por la fecha local escrita en created_at (YYYY-MM-DD).
func (r *AnalyticsRepo) SalesByDay(ctx context.Context, since time.Time) ([]entity.DailySales, error) {
	var rows []struct {
		Day   string          `gorm:"column:day"`
		Total decimal.Decimal `gorm:"column:total"`
		Count int             `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT substr(created_at, 1, 10) AS day, SUM(total) AS total, COUNT(*) AS count
		FROM sales
		WHERE substr(created_at, 1, 10) >= ?
		GROUP BY day
		ORDER BY day`, since.Format("2006-01-02")).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	out := make([]entity.DailySales, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.DailySales{Day: row.Day, Total: row.Total.Round(2), Count: row.Count})
	}
	return out, nil
}

// TopProducts por unidades vendidas.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []struct {
		ProductID int64           `gorm:"column:product_id"`
		Name      string          `gorm:"column:name"`
		Quantity  int             `gorm:"column:quantity"`
		Revenue   decimal.Decimal `gorm:"column:revenue"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id AS product_id, p.name, SUM(si.quantity) AS quantity,
		       SUM(si.quantity * si.unit_price) AS revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		GROUP BY p.id, p.name
		ORDER BY quantity DESC, p.name
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	out := make([]entity.TopProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.TopProduct{ProductID: row.ProductID, Name: row.Name, Quantity: row.Quantity, Revenue: row.Revenue.Round(2)})
	}
	return out, nil
}
