package repository

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
)

// CompanyRepository fila única de configuración de la empresa.
type CompanyRepository interface {
	// Get devuelve (nil, nil) si nunca se guardó.
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Save(ctx context.Context, s *entity.CompanySettings) error
}
