package sales

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/jhoicas/sys360/pkg/metrics"
	"github.com/shopspring/decimal"
)

// SaleInput datos de una venta a procesar.
type SaleInput struct {
	OperatorID    int64
	Items         []dto.CartItem
	ClientID      *int64
	Freight       decimal.Decimal
	PaymentMethod string
	AmountPaid    decimal.Decimal
	Change        decimal.Decimal
}

// Kernel motor transaccional de ventas: revalida stock y confirma cabecera, líneas y descuento de stock en una sola tx.
type Kernel struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	metrics     metrics.Recorder
	log         *logger.Logger
	now         func() time.Time
}

// NewKernel construye el motor. clientRepo puede ser nil (no se verifica el cliente antes de la tx).
func NewKernel(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	rec metrics.Recorder,
	log *logger.Logger,
) *Kernel {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Kernel{
		txRunner:    txRunner,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		metrics:     rec,
		log:         log.Named("sales"),
		now:         time.Now,
	}
}

// ProcessSale valida el carrinho, re-lee el stock y registra la venta. Devuelve el id de la venta.
func (k *Kernel) ProcessSale(ctx context.Context, in SaleInput) (int64, error) {
	sale, err := k.process(ctx, in)
	if err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// line item normalizado (subtotal calculado y redondeado).
type line struct {
	productID int64
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal
}

func (k *Kernel) process(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	lines, err := normalize(in)
	if err != nil {
		k.reject(err)
		return nil, err
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.subtotal)
	}
	total = total.Add(in.Freight).Round(2)

	change := in.Change
	if in.AmountPaid.IsPositive() {
		if in.AmountPaid.LessThan(total) {
			err := domain.NewValidationError(domain.ErrInvalidInput, "Valor pago (%s) menor que o total (%s)", in.AmountPaid.StringFixed(2), total.StringFixed(2))
			k.reject(err)
			return nil, err
		}
		if change.IsZero() {
			change = in.AmountPaid.Sub(total)
		}
	}

	requested := aggregate(lines)
	products, err := k.checkStock(ctx, requested)
	if err != nil {
		k.reject(err)
		return nil, err
	}
	if err := k.checkClient(ctx, in.ClientID); err != nil {
		k.reject(err)
		return nil, err
	}

	sale := &entity.Sale{
		CreatedAt:      k.now(),
		UserID:         in.OperatorID,
		ClientID:       in.ClientID,
		Total:          total,
		Freight:        in.Freight.Round(2),
		DeliveryStatus: entity.DeliveryPending,
		PaymentMethod:  in.PaymentMethod,
		AmountPaid:     in.AmountPaid.Round(2),
		ChangeDue:      change.Round(2),
	}

	err = k.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		if err := saleRepo.CreateHeader(ctx, sale); err != nil {
			return err
		}
		for _, l := range lines {
			item := &entity.SaleItem{SaleID: sale.ID, ProductID: l.productID, Quantity: l.quantity, UnitPrice: l.unitPrice}
			if err := saleRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		for _, id := range sortedIDs(requested) {
			qty := requested[id]
			n, err := productRepo.DecrementStock(ctx, id, qty)
			if err != nil {
				return err
			}
			if n == 0 {
				return domain.NewValidationError(domain.ErrInsufficientStock,
					"Estoque de '%s' insuficiente! Alterado durante a venda", products[id].Name)
			}
		}
		return nil
	})
	if err != nil {
		k.reject(err)
		if !errors.Is(err, domain.ErrValidation) {
			k.log.Error().Err(err).Int64("user_id", in.OperatorID).Msg("falha ao registrar venda")
		}
		return nil, err
	}

	items := 0
	for _, l := range lines {
		items += l.quantity
	}
	f, _ := total.Float64()
	k.metrics.SaleCommitted(f, items)
	k.log.Info().Int64("sale_id", sale.ID).Int64("user_id", in.OperatorID).Str("total", total.StringFixed(2)).Int("items", items).Msg("venda registrada")
	return sale, nil
}

// normalize aplica las reglas de entrada sin tocar el banco.
func normalize(in SaleInput) ([]line, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Carrinho vazio.")
	}
	if in.OperatorID <= 0 {
		return nil, domain.NewValidationError(domain.ErrUnauthorized, "Erro de sessão.")
	}
	if in.Freight.IsNegative() {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Frete não pode ser negativo")
	}
	if in.PaymentMethod != "" && !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Forma de pagamento inválida: %s", in.PaymentMethod)
	}
	if in.AmountPaid.IsNegative() || in.Change.IsNegative() {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Valores de pagamento não podem ser negativos")
	}

	out := make([]line, 0, len(in.Items))
	for i, it := range in.Items {
		n := i + 1
		if it.ProductID <= 0 {
			return nil, domain.NewValidationError(domain.ErrInvalidInput, "Item %d: produto inválido", n)
		}
		if it.Quantity <= 0 {
			return nil, domain.NewValidationError(domain.ErrInvalidInput, "Item %d: quantidade deve ser maior que zero", n)
		}
		if it.UnitPrice.IsNegative() || it.Subtotal.IsNegative() {
			return nil, domain.NewValidationError(domain.ErrInvalidInput, "Item %d: valores não podem ser negativos", n)
		}
		expected := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
		sub := it.Subtotal
		if sub.IsZero() {
			sub = expected
		} else if !sub.Round(2).Equal(expected) {
			return nil, domain.NewValidationError(domain.ErrInvalidInput,
				"Item %d: subtotal %s não confere com %d × %s", n, sub.StringFixed(2), it.Quantity, it.UnitPrice.StringFixed(2))
		}
		out = append(out, line{productID: it.ProductID, quantity: it.Quantity, unitPrice: it.UnitPrice, subtotal: sub.Round(2)})
	}
	return out, nil
}

// aggregate suma cantidades de ids repetidos.
func aggregate(lines []line) map[int64]int {
	out := make(map[int64]int, len(lines))
	for _, l := range lines {
		out[l.productID] += l.quantity
	}
	return out
}

func sortedIDs(m map[int64]int) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (k *Kernel) checkStock(ctx context.Context, requested map[int64]int) (map[int64]*entity.Product, error) {
	products, err := k.productRepo.GetByIDs(ctx, sortedIDs(requested))
	if err != nil {
		return nil, fmt.Errorf("ler estoque: %w", err)
	}
	for _, id := range sortedIDs(requested) {
		p, ok := products[id]
		if !ok || p == nil {
			return nil, domain.NewValidationError(domain.ErrNotFound, "Produto ID %d não encontrado no banco.", id)
		}
		if requested[id] > p.Quantity {
			return nil, domain.NewValidationError(domain.ErrInsufficientStock, "Estoque de '%s' insuficiente! Restam: %d", p.Name, p.Quantity)
		}
	}
	return products, nil
}

func (k *Kernel) checkClient(ctx context.Context, clientID *int64) error {
	if clientID == nil || k.clientRepo == nil {
		return nil
	}
	c, err := k.clientRepo.GetByID(ctx, *clientID)
	if err != nil {
		return fmt.Errorf("ler cliente: %w", err)
	}
	if c == nil {
		return domain.NewValidationError(domain.ErrNotFound, "Cliente ID %d não encontrado", *clientID)
	}
	return nil
}

func (k *Kernel) reject(err error) {
	reason := "internal"
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		reason = "stock"
	case errors.Is(err, domain.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrValidation):
		reason = "validation"
	}
	k.metrics.SaleRejected(reason)
	k.log.Warn().Str("reason", reason).Msg(domain.Reason(err))
}
