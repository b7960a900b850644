package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func TestProductUseCase_CRUD(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	p, err := c.ProductUC.Create(ctx, dto.CreateProductRequest{
		Name: "  Café Torrado ", Quantity: 3, SellPrice: dec("15.999"), CostPrice: dec("9"), Category: "Mercearia", Supplier: "ACME",
	})
	require.NoError(t, err)
	assert.Equal(t, "Café Torrado", p.Name)
	assert.True(t, p.SellPrice.Equal(dec("16.00")))
	assert.True(t, p.LowStock)

	_, err = c.ProductUC.Create(ctx, dto.CreateProductRequest{Name: "café torrado", Quantity: 1, Category: "X", Supplier: "Y"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	n, err := c.ProductUC.Update(ctx, p.ID, dto.UpdateProductRequest{Quantity: ptr(20), SellPrice: ptr(dec("14.50"))})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := c.ProductUC.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Quantity)
	assert.True(t, got.SellPrice.Equal(dec("14.50")))
	assert.Equal(t, "Mercearia", got.Category)
	assert.False(t, got.LowStock)

	n, err = c.ProductUC.Update(ctx, 999, dto.UpdateProductRequest{Quantity: ptr(1)})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = c.ProductUC.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = c.ProductUC.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Validacao(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	cases := []dto.CreateProductRequest{
		{Name: "", Quantity: 1, Category: "A", Supplier: "B"},
		{Name: "X", Quantity: -1, Category: "A", Supplier: "B"},
		{Name: "X", Quantity: 1, Category: "", Supplier: "B"},
		{Name: "X", Quantity: 1, Category: "A", Supplier: ""},
		{Name: "X", Quantity: 1, SellPrice: dec("-1"), Category: "A", Supplier: "B"},
	}
	for _, in := range cases {
		_, err := c.ProductUC.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
	list, err := c.ProductUC.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestProductUseCase_SearchYLowStock(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	testutil.CreateProduct(t, c, "Arroz Branco", 50, "22.90")
	testutil.CreateProduct(t, c, "Arroz Integral", 2, "25.90")
	testutil.CreateProduct(t, c, "Feijão", 0, "8.00")

	all, err := c.ProductUC.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	found, err := c.ProductUC.Search(ctx, "arroz")
	require.NoError(t, err)
	require.Equal(t, 2, found.Total)
	assert.Equal(t, "Arroz Branco", found.Items[0].Name)

	_, err = c.ProductUC.Search(ctx, "macarrão")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	low, err := c.ProductUC.LowStock(ctx, 0)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Feijão", low[0].Name)

	low, err = c.ProductUC.LowStock(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, low, 3)
}
