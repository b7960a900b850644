package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de entrega de una venta con flete.
const (
	DeliveryPending   = "pendente"
	DeliveryOnRoute   = "em_rota"
	DeliveryDelivered = "entregue"
)

// Formas de pagamento aceptadas en el checkout.
const (
	PaymentCash   = "dinheiro"
	PaymentPix    = "pix"
	PaymentCredit = "cartao_credito"
	PaymentDebit  = "cartao_debito"
)

// ValidPaymentMethod indica si m es una forma de pago soportada.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCredit, PaymentDebit:
		return true
	}
	return false
}

// CanTransition valida el ciclo pendente -> em_rota -> entregue.
func CanTransition(from, to string) bool {
	switch from {
	case DeliveryPending:
		return to == DeliveryOnRoute
	case DeliveryOnRoute:
		return to == DeliveryDelivered
	}
	return false
}

// Sale cabecera de venta. Inmutable después del checkout salvo DeliveryStatus y VehicleID.
type Sale struct {
	ID             int64
	CreatedAt      time.Time
	UserID         int64 // operador
	ClientID       *int64
	Total          decimal.Decimal // Σ subtotales + frete
	Freight        decimal.Decimal
	DeliveryStatus string
	PaymentMethod  string
	AmountPaid     decimal.Decimal
	ChangeDue      decimal.Decimal
	VehicleID      *int64
}

// SaleItem línea de venta; UnitPrice es una foto del precio en el momento de la venta.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal cantidad × precio unitario.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SaleSummary fila del historial de ventas.
type SaleSummary struct {
	ID             int64
	CreatedAt      time.Time
	SellerName     string
	ClientName     string // "Consumidor Final" sin cliente
	Total          decimal.Decimal
	Freight        decimal.Decimal
	PaymentMethod  string
	DeliveryStatus string
}

// SaleLine línea de venta con el nombre del producto (comprobante e histórico).
type SaleLine struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// SaleDetail venta completa para el comprobante.
type SaleDetail struct {
	Sale
	SellerName    string
	ClientName    string
	ClientDoc     string
	ClientAddress string
	Lines         []SaleLine
}
