package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo frota sobre SQLite.
type VehicleRepo struct {
	db *gorm.DB
}

// NewVehicleRepository construye el adaptador. Pasar la conexión o la tx.
func NewVehicleRepository(db *gorm.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// Create placa repetida devuelve domain.ErrDuplicate.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	row := vehicleRow{Model: v.Model, Plate: v.Plate, CapacityKg: v.CapacityKg, Status: v.Status}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if e := translate(err); e != err {
			return e
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	v.ID = row.ID
	return nil
}

func (r *VehicleRepo) GetByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	var row vehicleRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return row.toEntity(), nil
}

func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) (int64, error) {
	res := r.db.WithContext(ctx).Model(&vehicleRow{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"model":       v.Model,
		"plate":       v.Plate,
		"capacity_kg": v.CapacityKg,
		"status":      v.Status,
	})
	if res.Error != nil {
		if e := translate(res.Error); e != res.Error {
			return 0, e
		}
		return 0, fmt.Errorf("update vehicle: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *VehicleRepo) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&vehicleRow{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return 0, fmt.Errorf("update vehicle status: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete un vehículo referenciado por ventas devuelve domain.ErrConflict.
func (r *VehicleRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&vehicleRow{})
	if res.Error != nil {
		if e := translate(res.Error); e != res.Error {
			return 0, e
		}
		return 0, fmt.Errorf("delete vehicle: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *VehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	var rows []vehicleRow
	if err := r.db.WithContext(ctx).Order("model COLLATE NOCASE, plate").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	out := make([]*entity.Vehicle, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *VehicleRepo) CreateMaintenance(ctx context.Context, m *entity.Maintenance) error {
	row := maintenanceRow{VehicleID: m.VehicleID, Date: m.Date, Description: m.Description, Cost: m.Cost}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert maintenance: %w", translate(err))
	}
	m.ID = row.ID
	return nil
}

func (r *VehicleRepo) ListMaintenance(ctx context.Context, vehicleID int64) ([]*entity.Maintenance, error) {
	var rows []maintenanceRow
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	out := make([]*entity.Maintenance, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.Maintenance{
			ID: row.ID, VehicleID: row.VehicleID, Date: row.Date,
			Description: row.Description, Cost: row.Cost.Round(2),
		})
	}
	return out, nil
}
