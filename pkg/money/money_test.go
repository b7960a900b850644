package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	out := Format(decimal.RequireFromString("25"))
	assert.True(t, strings.HasPrefix(out, "R$ "))
	assert.True(t, strings.HasSuffix(out, "25,00"), out)

	out = Format(decimal.RequireFromString("1234.5"))
	assert.True(t, strings.HasSuffix(out, ",50"), out)
}

func TestParse(t *testing.T) {
	cases := map[string]string{
		"12,50":    "12.5",
		"12.50":    "12.5",
		"1.234,50": "1234.5",
		"R$ 10":    "10",
		"":         "0",
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s => %s", in, got)
	}

	_, err := Parse("abc")
	assert.Error(t, err)
}
