package sales

import (
	"context"

	"github.com/jhoicas/sys360/internal/application/auth"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/jhoicas/sys360/pkg/metrics"
)

// CheckoutUseCase finaliza la venta del PDV: kernel + movimiento de caja + comprobante.
type CheckoutUseCase struct {
	kernel   *Kernel
	ledger   LedgerRecorder
	receipts ReceiptGenerator
	metrics  metrics.Recorder
	log      *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso. ledger y receipts pueden ser nil.
func NewCheckoutUseCase(kernel *Kernel, ledger LedgerRecorder, receipts ReceiptGenerator, rec metrics.Recorder, log *logger.Logger) *CheckoutUseCase {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutUseCase{kernel: kernel, ledger: ledger, receipts: receipts, metrics: rec, log: log.Named("checkout")}
}

// Checkout procesa la venta con el usuario de la sesión como operador.
// Los efectos posteriores corren fuera de la tx: si fallan la venta sigue confirmada y se devuelve un aviso.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, sess auth.Session, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	sale, err := uc.kernel.process(ctx, SaleInput{
		OperatorID:    sess.UserID,
		Items:         in.Items,
		ClientID:      in.ClientID,
		Freight:       in.Freight,
		PaymentMethod: in.PaymentMethod,
		AmountPaid:    in.AmountPaid,
		Change:        in.Change,
	})
	if err != nil {
		return nil, err
	}

	out := &dto.CheckoutResponse{SaleID: sale.ID, Total: sale.Total, Change: sale.ChangeDue}
	if uc.ledger != nil {
		if err := uc.ledger.RecordSale(ctx, sale); err != nil {
			uc.metrics.SideEffectFailed("ledger")
			uc.log.Error().Err(err).Int64("sale_id", sale.ID).Msg("falha ao lançar venda no financeiro")
			out.Warnings = append(out.Warnings, "Venda registrada, mas o lançamento financeiro falhou")
		}
	}
	if uc.receipts != nil {
		path, err := uc.receipts.Generate(ctx, sale.ID)
		if err != nil {
			uc.metrics.SideEffectFailed("receipt")
			uc.log.Error().Err(err).Int64("sale_id", sale.ID).Msg("falha ao gerar comprovante")
			out.Warnings = append(out.Warnings, "Venda registrada, mas o comprovante não foi gerado")
		} else {
			out.ReceiptPath = path
		}
	}
	return out, nil
}
