package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestImport_PontoEVirgulaComCabecalho(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	csv := "\xef\xbb\xbfnome;quantidade;venda;custo;categoria;fornecedor\n" +
		"Arroz 5kg;10;22,90;18,00;Mercearia;Camil\n" +
		"Feijão 1kg;abc;8,00;6,00;Mercearia;Kicaldo\n" +
		"\n" +
		"Óleo;5;7,49;5,10;Mercearia\n" +
		"Sabão;4;3,50;2,00;Limpeza;Ypê\n"

	res, err := c.ImportUC.Import(ctx, strings.NewReader(csv), "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0].Message, "quantidade")
	assert.Contains(t, res.Errors[1].Message, "colunas")

	list, err := c.ProductUC.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Arroz 5kg", list.Items[0].Name)
	assert.True(t, list.Items[0].SellPrice.Equal(dec("22.90")))
	assert.Equal(t, "Sabão", list.Items[1].Name)
}

func TestImport_Windows1252(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	encoded, err := charmap.Windows1252.NewEncoder().String("Pão de Açúcar;3;4,50;2,00;Padaria;Padaria São João\n")
	require.NoError(t, err)

	// sin charset: no es UTF-8 válido, se decodifica como windows-1252
	res, err := c.ImportUC.Import(ctx, bytes.NewReader([]byte(encoded)), "")
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported, "%+v", res.Errors)

	found, err := c.ProductUC.Search(ctx, "Pão")
	require.NoError(t, err)
	require.Equal(t, 1, found.Total)
	assert.Equal(t, "Padaria São João", found.Items[0].Supplier)
}

func TestImport_VirgulaEDuplicado(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	testutil.CreateProduct(t, c, "Café", 1, "10")

	res, err := c.ImportUC.Import(ctx, strings.NewReader("Café,2,12.00,8.00,Mercearia,ACME\nChá,2,6.00,3.00,Mercearia,ACME\n"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 1, res.Errors[0].Line)
}

func TestImport_CharsetDesconhecido(t *testing.T) {
	c := testutil.NewContainer(t)

	_, err := c.ImportUC.Import(context.Background(), strings.NewReader("x;1;1;1;a;b\n"), "ebcdic")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
