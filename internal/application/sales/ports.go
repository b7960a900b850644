package sales

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos de venta y producto atados a ella.
// Si fn devuelve error se hace rollback de todo.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// LedgerRecorder registra la entrada de caja de una venta confirmada.
// Lo implementa *finance.LedgerUseCase.
type LedgerRecorder interface {
	RecordSale(ctx context.Context, sale *entity.Sale) error
}

// ReceiptGenerator escribe el comprobante de una venta y devuelve la ruta del archivo.
type ReceiptGenerator interface {
	Generate(ctx context.Context, saleID int64) (string, error)
}

// ReceiptRenderer dibuja el PDF del comprobante.
type ReceiptRenderer interface {
	Render(detail *entity.SaleDetail, company entity.CompanySettings) ([]byte, error)
}
