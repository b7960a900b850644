// Package testutil arma un contenedor sobre un SQLite temporal para los tests de integración.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/bootstrap"
	"github.com/jhoicas/sys360/pkg/config"
	"github.com/jhoicas/sys360/pkg/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// JWTSecret secreto usado por los contenedores de test.
const JWTSecret = "sys360-test-secret"

// Config devuelve una configuración apuntando a dir.
func Config(dir string) *config.Config {
	return &config.Config{
		App:      config.AppConfig{Env: "test", Name: "sys360-test"},
		DB:       config.DBConfig{Path: filepath.Join(dir, "sys360.db"), MaxOpenConns: 1},
		JWT:      config.JWTConfig{Secret: JWTSecret, Expiration: 60, Issuer: "sys360-test"},
		Receipts: config.ReceiptsConfig{Dir: filepath.Join(dir, "comprovantes")},
		Stock:    config.StockConfig{LowThreshold: 5},
		Freight: config.FreightConfig{
			FuelPrice:  decimal.RequireFromString("6.00"),
			KmPerLiter: decimal.RequireFromString("10"),
			BaseFee:    decimal.Zero,
			PerKg:      decimal.Zero,
		},
	}
}

// NewContainer abre un contenedor migrado y con seed (admin/admin y categorías).
func NewContainer(t *testing.T) *bootstrap.Container {
	t.Helper()
	ctx := context.Background()
	c, err := bootstrap.New(ctx, Config(t.TempDir()), metrics.New("test"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Seed(ctx))
	return c
}

// CreateProduct da de alta un producto con stock qty y precio de venta price.
func CreateProduct(t *testing.T, c *bootstrap.Container, name string, qty int, price string) int64 {
	t.Helper()
	p, err := c.ProductUC.Create(context.Background(), dto.CreateProductRequest{
		Name:      name,
		Quantity:  qty,
		SellPrice: decimal.RequireFromString(price),
		CostPrice: decimal.Zero,
		Category:  "Geral",
		Supplier:  "Fornecedor",
	})
	require.NoError(t, err)
	return p.ID
}

// AdminID id del admin creado por el seed.
func AdminID(t *testing.T, c *bootstrap.Container) int64 {
	t.Helper()
	sess, err := c.AuthUC.VerifyLogin(context.Background(), "admin", "admin")
	require.NoError(t, err)
	return sess.UserID
}
