package fleet

import (
	"testing"

	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEstimateFreight(t *testing.T) {
	cfg := config.FreightConfig{FuelPrice: dec("6.00"), KmPerLiter: dec("10"), BaseFee: dec("15"), PerKg: dec("0.10")}

	// 25 km ida: 50 km / 10 km/l × 6,00 = 30,00 + 15 + 200 kg × 0,10
	got, err := EstimateFreight(cfg, dec("25"), dec("200"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("65.00")), "frete = %s", got)

	got, err = EstimateFreight(cfg, dec("0"), dec("0"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("15")))

	_, err = EstimateFreight(cfg, dec("-1"), dec("0"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	cfg.KmPerLiter = decimal.Zero
	_, err = EstimateFreight(cfg, dec("10"), dec("0"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRouteLink(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps", RouteLink(nil))
	assert.Equal(t, "https://www.google.com/maps", RouteLink([]string{"", " ab ", "x"}))
	assert.Equal(t,
		"https://www.google.com/maps/dir/Rua%20A%2C%2010/Av.%20Brasil%20200",
		RouteLink([]string{" Rua A, 10 ", "s/n", "Av. Brasil 200"}))
}
