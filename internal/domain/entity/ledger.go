package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de un movimiento financiero.
const (
	DirectionIn  = "entrada"
	DirectionOut = "saida"
)

// Tipos de categoría.
const (
	CategoryIncome  = "receita"
	CategoryExpense = "despesa"
)

// Nombres de categorías usadas por el sistema.
const (
	CategorySales       = "Venda de Produtos"
	CategoryFreight     = "Frete/Transporte"
	CategoryMaintenance = "Manutenção de Frota"
)

// LedgerEntry movimiento del libro de caja.
type LedgerEntry struct {
	ID          int64
	CreatedAt   time.Time
	Description string
	Amount      decimal.Decimal // siempre ≥ 0; el signo lo da Direction
	Direction   string
	SaleID      *int64
	UserID      *int64
	CategoryID  *int64
	UserName    string // solo lectura (join)
	Category    string // solo lectura (join)
}

// Signed devuelve el monto con signo según la dirección.
func (e LedgerEntry) Signed() decimal.Decimal {
	if e.Direction == DirectionOut {
		return e.Amount.Neg()
	}
	return e.Amount
}

// LedgerCategory categoría de ingreso o gasto.
type LedgerCategory struct {
	ID   int64
	Name string
	Kind string
}

// DefaultCategories conjunto inicial (seed idempotente).
func DefaultCategories() []LedgerCategory {
	return []LedgerCategory{
		{Name: CategorySales, Kind: CategoryIncome},
		{Name: "Pagamento de Fornecedor", Kind: CategoryExpense},
		{Name: "Conta de Energia", Kind: CategoryExpense},
		{Name: "Salário", Kind: CategoryExpense},
		{Name: CategoryFreight, Kind: CategoryExpense},
		{Name: CategoryMaintenance, Kind: CategoryExpense},
	}
}
