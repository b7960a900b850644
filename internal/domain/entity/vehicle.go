package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un vehículo.
const (
	VehicleAvailable   = "disponivel"
	VehicleOnRoute     = "em_rota"
	VehicleMaintenance = "manutencao"
)

// Vehicle vehículo de la flota.
type Vehicle struct {
	ID         int64
	Model      string
	Plate      string // única
	CapacityKg decimal.Decimal
	Status     string
}

// Maintenance registro de mantenimiento.
type Maintenance struct {
	ID          int64
	VehicleID   int64
	Date        time.Time
	Description string
	Cost        decimal.Decimal
}

// PendingDelivery venta con flete todavía no despachada.
type PendingDelivery struct {
	SaleID     int64
	CreatedAt  time.Time
	ClientName string
	Address    string
	Freight    decimal.Decimal
	Total      decimal.Decimal
}
