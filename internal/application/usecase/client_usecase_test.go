package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUseCase_CRUD(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	cl, err := c.ClientUC.Create(ctx, dto.ClientRequest{Name: "Padaria Sol", CPFCNPJ: "11.222.333/0001-81", Email: "contato@sol.com.br", Address: "Rua A, 1"})
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", cl.CPFCNPJ)
	assert.Equal(t, "CNPJ", cl.DocumentKind)

	_, err = c.ClientUC.Create(ctx, dto.ClientRequest{Name: "Outro", CPFCNPJ: "11222333000181"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	n, err := c.ClientUC.Update(ctx, cl.ID, dto.ClientRequest{Name: "Padaria Sol Ltda", CPFCNPJ: "11222333000181", Phone: "(11) 99999-0000"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := c.ClientUC.GetByID(ctx, cl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Padaria Sol Ltda", got.Name)

	_, err = c.ClientUC.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err = c.ClientUC.Delete(ctx, cl.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClientUseCase_Validacao(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	cases := []dto.ClientRequest{
		{Name: "", CPFCNPJ: "52998224725"},
		{Name: "Ana", CPFCNPJ: "123"},
		{Name: "Ana", CPFCNPJ: "52998224725", Email: "sem-arroba"},
	}
	for _, in := range cases {
		_, err := c.ClientUC.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
}

func TestClientUseCase_ListYSearch(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	for _, in := range []dto.ClientRequest{
		{Name: "Bruno", CPFCNPJ: "52998224725"},
		{Name: "Ana", CPFCNPJ: "11144477735"},
	} {
		_, err := c.ClientUC.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := c.ClientUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "CPF", list[0].DocumentKind)

	found, err := c.ClientUC.Search(ctx, "bru")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bruno", found[0].Name)

	_, err = c.ClientUC.Search(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUseCase(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	empty, err := c.CompanyUC.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Name)
	assert.Nil(t, empty.UpdatedAt)

	_, err = c.CompanyUC.Save(ctx, dto.CompanySettingsRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = c.CompanyUC.Save(ctx, dto.CompanySettingsRequest{Name: "Mercadinho 360", Document: "11222333000181"})
	require.NoError(t, err)
	_, err = c.CompanyUC.Save(ctx, dto.CompanySettingsRequest{Name: "Mercadinho 360 Ltda", Phone: "1133334444"})
	require.NoError(t, err)

	got, err := c.CompanyUC.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mercadinho 360 Ltda", got.Name)
	assert.Equal(t, "1133334444", got.Phone)
	assert.NotNil(t, got.UpdatedAt)
}
