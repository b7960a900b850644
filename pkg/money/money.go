// Package money formatea y parsea valores en reales (pt-BR).
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format devuelve "R$ 1.234,50".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "R$ " + printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// Round2 redondea a centavos.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Parse acepta "12,50", "12.50", "1.234,50" y "R$ 10".
func Parse(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if raw == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor monetário inválido %q: %w", s, err)
	}
	return d, nil
}
