package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Quantity  int             `json:"quantity" validate:"gte=0"`
	SellPrice decimal.Decimal `json:"sell_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Category  string          `json:"category" validate:"required,max=100"`
	Supplier  string          `json:"supplier" validate:"required,max=200"`
}

// UpdateProductRequest entrada para actualizar un producto; campos nil no cambian.
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Quantity  *int             `json:"quantity" validate:"omitempty,gte=0"`
	SellPrice *decimal.Decimal `json:"sell_price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Category  *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Supplier  *string          `json:"supplier" validate:"omitempty,min=1,max=200"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	SellPrice decimal.Decimal `json:"sell_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
	LowStock  bool            `json:"low_stock"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ImportError error de una línea del CSV.
type ImportError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult resultado de la importación de catálogo.
type ImportResult struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors"`
}
