package sales

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/logger"
)

// ReceiptUseCase genera el comprobante PDF de una venta en <dir>/venda_<id>.pdf.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	companyRepo repository.CompanyRepository
	renderer    ReceiptRenderer
	dir         string
	log         *logger.Logger
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, companyRepo repository.CompanyRepository, renderer ReceiptRenderer, dir string, log *logger.Logger) *ReceiptUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReceiptUseCase{saleRepo: saleRepo, companyRepo: companyRepo, renderer: renderer, dir: dir, log: log.Named("receipt")}
}

// Path ruta del comprobante de saleID.
func (uc *ReceiptUseCase) Path(saleID int64) string {
	return filepath.Join(uc.dir, fmt.Sprintf("venda_%d.pdf", saleID))
}

// Render devuelve los bytes del PDF sin escribir a disco.
func (uc *ReceiptUseCase) Render(ctx context.Context, saleID int64) ([]byte, error) {
	detail, err := uc.saleRepo.GetDetail(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	var company entity.CompanySettings
	if uc.companyRepo != nil {
		c, err := uc.companyRepo.Get(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("dados da empresa indisponíveis; usando padrão")
		} else if c != nil {
			company = *c
		}
	}
	return uc.renderer.Render(detail, company)
}

// Generate escribe el comprobante y devuelve la ruta.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID int64) (string, error) {
	data, err := uc.Render(ctx, saleID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return "", fmt.Errorf("criar pasta de comprovantes: %w", err)
	}
	path := uc.Path(saleID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("gravar comprovante: %w", err)
	}
	uc.log.Info().Int64("sale_id", saleID).Str("path", path).Msg("comprovante gerado")
	return path, nil
}
