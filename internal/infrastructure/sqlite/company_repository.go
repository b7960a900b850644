package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companySettingsID = 1

// CompanyRepo fila única company_settings.
type CompanyRepo struct {
	db *gorm.DB
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(db *gorm.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func (r *CompanyRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	var row companyRow
	err := r.db.WithContext(ctx).Where("id = ?", companySettingsID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company settings: %w", err)
	}
	return &entity.CompanySettings{
		Name: row.Name, Document: row.Document, Address: row.Address, Phone: row.Phone, UpdatedAt: row.UpdatedAt,
	}, nil
}

// Save upsert de la fila id=1.
func (r *CompanyRepo) Save(ctx context.Context, s *entity.CompanySettings) error {
	s.UpdatedAt = time.Now()
	row := companyRow{
		ID: companySettingsID, Name: s.Name, Document: s.Document,
		Address: s.Address, Phone: s.Phone, UpdatedAt: s.UpdatedAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "document", "address", "phone", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save company settings: %w", err)
	}
	return nil
}
