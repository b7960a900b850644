package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jhoicas/sys360/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run ejecuta rootCmd con args contra la base dbFile y devuelve la salida.
func run(t *testing.T, dbFile string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", dbFile}, args...))
	t.Cleanup(func() {
		dbPath, importCharset = "", ""
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_MigrateImportYSearch(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RECEIPTS_DIR", filepath.Join(dir, "comprovantes"))
	dbFile := filepath.Join(dir, "cli.db")

	out, err := run(t, dbFile, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Esquema na versão")

	csvFile := filepath.Join(dir, "produtos.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte(
		"nome;quantidade;venda;custo;categoria;fornecedor\n"+
			"Arroz 5kg;10;22,90;18,00;Mercearia;Camil\n"+
			"Sabão;2;3,50;2,00;Limpeza;Ypê\n"), 0o644))

	out, err = run(t, dbFile, "product", "import", csvFile)
	require.NoError(t, err)
	assert.Contains(t, out, "2 produto(s) importado(s)")

	out, err = run(t, dbFile, "product", "search", "arroz")
	require.NoError(t, err)
	assert.Contains(t, out, "Arroz 5kg")
	assert.Contains(t, out, "Mercearia")
	assert.NotContains(t, out, "Sabão")
	assert.Contains(t, out, "1 produto(s)")

	out, err = run(t, dbFile, "product", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Sabão")
	assert.Contains(t, out, "2 produto(s)")

	_, err = run(t, dbFile, "product", "search", "cimento")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCLI_SeedECriarUsuario(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RECEIPTS_DIR", filepath.Join(dir, "comprovantes"))
	dbFile := filepath.Join(dir, "cli.db")

	out, err := run(t, dbFile, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed aplicado.")

	out, err = run(t, dbFile, "user", "create", "--name", "Caixa 1", "--login", "caixa1", "--password", "1234")
	require.NoError(t, err)
	assert.Contains(t, out, "Usuário caixa1 criado")
	assert.Contains(t, out, "perfil funcionario")

	_, err = run(t, dbFile, "user", "create", "--name", "Outro", "--login", "caixa1", "--password", "1234")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
