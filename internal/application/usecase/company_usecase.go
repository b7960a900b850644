package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/validator"
)

// CompanyUseCase datos de la empresa usados en el comprobante.
type CompanyUseCase struct {
	repo repository.CompanyRepository
	v    *validator.DefaultValidator
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, v: validator.MustNew()}
}

// Get devuelve la configuración guardada o valores vacíos si nunca se guardó.
func (uc *CompanyUseCase) Get(ctx context.Context) (*dto.CompanySettingsResponse, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &dto.CompanySettingsResponse{}, nil
	}
	return toCompanyResponse(c), nil
}

// Save guarda (upsert) los datos de la empresa.
func (uc *CompanyUseCase) Save(ctx context.Context, in dto.CompanySettingsRequest) (*dto.CompanySettingsResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.v.Validate(in); err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "%s", validator.Message(err))
	}
	c := &entity.CompanySettings{
		Name:      in.Name,
		Document:  strings.TrimSpace(in.Document),
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

func toCompanyResponse(c *entity.CompanySettings) *dto.CompanySettingsResponse {
	out := &dto.CompanySettingsResponse{Name: c.Name, Document: c.Document, Address: c.Address, Phone: c.Phone}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
