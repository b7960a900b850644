package repository

import (
	"context"
	"time"

	"github.com/jhoicas/sys360/internal/domain/entity"
)

// AnalyticsRepository consultas de lectura para el dashboard. No modifica datos.
type AnalyticsRepository interface {
	// SalesByDay totales por día desde since (inclusive), ordenados por día.
	SalesByDay(ctx context.Context, since time.Time) ([]entity.DailySales, error)
	// TopProducts productos más vendidos por unidades.
	TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error)
}
