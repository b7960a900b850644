package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Quantity nunca queda negativa después de una venta confirmada.
type Product struct {
	ID        int64
	Name      string
	Quantity  int
	SellPrice decimal.Decimal // preço de venda
	CostPrice decimal.Decimal // preço de custo
	Category  string
	Supplier  string
}

// IsLowStock indica si la cantidad está por debajo del umbral configurado.
func (p Product) IsLowStock(threshold int) bool {
	return p.Quantity < threshold
}

// Margin ganancia bruta por unidad.
func (p Product) Margin() decimal.Decimal {
	return p.SellPrice.Sub(p.CostPrice)
}
