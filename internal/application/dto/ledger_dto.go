package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryRequest movimiento manual.
type LedgerEntryRequest struct {
	Description string          `json:"description" validate:"required,max=300"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction" validate:"required,oneof=entrada saida"`
	CategoryID  *int64          `json:"category_id"`
	SaleID      *int64          `json:"sale_id"`
}

// LedgerEntryResponse movimiento con nombre del usuario.
type LedgerEntryResponse struct {
	ID          int64           `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Category    string          `json:"category,omitempty"`
	SaleID      *int64          `json:"sale_id,omitempty"`
	UserName    string          `json:"user_name,omitempty"`
}

// BalanceResponse saldo de caja.
type BalanceResponse struct {
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Balance  decimal.Decimal `json:"balance"`
}

// CategoryRequest nueva categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Kind string `json:"kind" validate:"required,oneof=receita despesa"`
}

// CategoryResponse categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}
