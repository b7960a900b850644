package entity

import "github.com/shopspring/decimal"

// DailySales total vendido en un día (YYYY-MM-DD).
type DailySales struct {
	Day   string
	Total decimal.Decimal
	Count int
}

// TopProduct producto más vendido por unidades.
type TopProduct struct {
	ProductID int64
	Name      string
	Quantity  int
	Revenue   decimal.Decimal
}
