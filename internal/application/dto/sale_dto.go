package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem línea del carrito. Subtotal cero se calcula como quantity × unit_price.
type CartItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CheckoutRequest entrada de finalización de venta (el operador sale de la sesión).
type CheckoutRequest struct {
	Items         []CartItem      `json:"items"`
	ClientID      *int64          `json:"client_id"`
	Freight       decimal.Decimal `json:"freight"`
	PaymentMethod string          `json:"payment_method"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Change        decimal.Decimal `json:"change"`
}

// CheckoutResponse venta confirmada. Warnings lista fallas del movimiento de caja o del comprobante.
type CheckoutResponse struct {
	SaleID      int64           `json:"sale_id"`
	Total       decimal.Decimal `json:"total"`
	Change      decimal.Decimal `json:"change"`
	ReceiptPath string          `json:"receipt_path,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// SaleSummaryResponse fila del histórico.
type SaleSummaryResponse struct {
	ID             int64           `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	Seller         string          `json:"seller"`
	Client         string          `json:"client"`
	Total          decimal.Decimal `json:"total"`
	Freight        decimal.Decimal `json:"freight"`
	PaymentMethod  string          `json:"payment_method"`
	DeliveryStatus string          `json:"delivery_status"`
}

// SaleLineResponse línea de venta.
type SaleLineResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse venta con líneas.
type SaleDetailResponse struct {
	SaleSummaryResponse
	AmountPaid decimal.Decimal    `json:"amount_paid"`
	Change     decimal.Decimal    `json:"change"`
	VehicleID  *int64             `json:"vehicle_id,omitempty"`
	Items      []SaleLineResponse `json:"items"`
}
