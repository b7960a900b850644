package repository

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
)

// VehicleRepository flota y mantenimientos.
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	Update(ctx context.Context, v *entity.Vehicle) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)
	CreateMaintenance(ctx context.Context, m *entity.Maintenance) error
	ListMaintenance(ctx context.Context, vehicleID int64) ([]*entity.Maintenance, error)
}
