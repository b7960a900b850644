package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWriter_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := FromWriter(&buf, "warn")

	l.Info().Msg("no aparece")
	l.Warn().Str("sale_id", "7").Msg("aviso")

	out := buf.String()
	assert.NotContains(t, out, "no aparece")
	assert.Contains(t, out, `"sale_id":"7"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNew_EscribeArchivoDiario(t *testing.T) {
	dir := t.TempDir()
	l := New(Config{Env: "production", Level: "info", Dir: dir})
	l.Info().Msg("arranque")
	require.NoError(t, l.Close())

	name := filepath.Join(dir, "sys360_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "arranque")
}

func TestPrintf_AdaptadorGoose(t *testing.T) {
	var buf bytes.Buffer
	l := FromWriter(&buf, "info")
	l.Printf("OK   %s (%s)\n", "00001_init.sql", "1ms")
	assert.Contains(t, buf.String(), "00001_init.sql")
}

func TestParseLevel_Desconocido(t *testing.T) {
	assert.Equal(t, "info", parseLevel("verbose").String())
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
}
