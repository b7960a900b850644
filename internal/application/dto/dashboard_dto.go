package dto

import "github.com/shopspring/decimal"

// DailySalesItem total de un día.
type DailySalesItem struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// TopProductItem producto más vendido.
type TopProductItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardResponse resumen del painel.
type DashboardResponse struct {
	SalesLastDays []DailySalesItem  `json:"sales_last_days"`
	TopProducts   []TopProductItem  `json:"top_products"`
	Balance       BalanceResponse   `json:"balance"`
	LowStock      []ProductResponse `json:"low_stock"`
	Threshold     int               `json:"low_stock_threshold"`
}
