package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleRequest alta o edición de vehículo.
type VehicleRequest struct {
	Model      string          `json:"model" validate:"required,max=100"`
	Plate      string          `json:"plate" validate:"required,max=10"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	Status     string          `json:"status" validate:"omitempty,oneof=disponivel em_rota manutencao"`
}

// VehicleResponse vehículo.
type VehicleResponse struct {
	ID         int64           `json:"id"`
	Model      string          `json:"model"`
	Plate      string          `json:"plate"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	Status     string          `json:"status"`
}

// MaintenanceRequest registro de mantenimiento.
type MaintenanceRequest struct {
	Description string          `json:"description" validate:"required,max=300"`
	Cost        decimal.Decimal `json:"cost"`
	Date        *time.Time      `json:"date"`
}

// MaintenanceResponse mantenimiento registrado.
type MaintenanceResponse struct {
	ID          int64           `json:"id"`
	VehicleID   int64           `json:"vehicle_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
}

// PendingDeliveryResponse venta esperando despacho.
type PendingDeliveryResponse struct {
	SaleID    int64           `json:"sale_id"`
	CreatedAt time.Time       `json:"created_at"`
	Client    string          `json:"client"`
	Address   string          `json:"address"`
	Freight   decimal.Decimal `json:"freight"`
	Total     decimal.Decimal `json:"total"`
}

// DispatchRequest manifiesto: vehículo + ventas.
type DispatchRequest struct {
	VehicleID int64   `json:"vehicle_id" validate:"required,gt=0"`
	SaleIDs   []int64 `json:"sale_ids" validate:"required,min=1"`
}

// ManifestResponse resultado del despacho con el link de rota.
type ManifestResponse struct {
	VehicleID int64    `json:"vehicle_id"`
	Plate     string   `json:"plate"`
	SaleIDs   []int64  `json:"sale_ids"`
	Addresses []string `json:"addresses"`
	RouteURL  string   `json:"route_url"`
}

// FreightEstimateRequest distancia (km, ida) y peso.
type FreightEstimateRequest struct {
	DistanceKm decimal.Decimal `json:"distance_km"`
	WeightKg   decimal.Decimal `json:"weight_kg"`
}

// FreightEstimateResponse valor estimado.
type FreightEstimateResponse struct {
	Freight decimal.Decimal `json:"freight"`
}
