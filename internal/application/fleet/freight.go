package fleet

import (
	"net/url"
	"strings"

	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/pkg/config"
	"github.com/shopspring/decimal"
)

const (
	mapsHome = "https://www.google.com/maps"
	mapsDir  = "https://www.google.com/maps/dir/"
)

var two = decimal.NewFromInt(2)

// EstimateFreight costo de ida y vuelta: distancia×2 / km_por_litro × precio_combustible + tarifa_base + peso × por_kg.
func EstimateFreight(cfg config.FreightConfig, distanceKm, weightKg decimal.Decimal) (decimal.Decimal, error) {
	if distanceKm.IsNegative() || weightKg.IsNegative() {
		return decimal.Zero, domain.NewValidationError(domain.ErrInvalidInput, "Distância e peso não podem ser negativos")
	}
	if !cfg.KmPerLiter.IsPositive() {
		return decimal.Zero, domain.NewValidationError(domain.ErrInvalidInput, "Consumo (km/l) deve ser maior que zero")
	}
	fuel := distanceKm.Mul(two).Div(cfg.KmPerLiter).Mul(cfg.FuelPrice)
	return fuel.Add(cfg.BaseFee).Add(weightKg.Mul(cfg.PerKg)).Round(2), nil
}

// RouteLink link de ruta de Google Maps. Direcciones de hasta 3 caracteres se ignoran.
func RouteLink(addresses []string) string {
	parts := make([]string, 0, len(addresses))
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if len(a) > 3 {
			parts = append(parts, url.PathEscape(a))
		}
	}
	if len(parts) == 0 {
		return mapsHome
	}
	return mapsDir + strings.Join(parts, "/")
}
