// Package pricing computes the derived money values of a nota and converts
// them to and from the text typed into the entry form.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Remaining is value minus deposit. It is not clamped: a deposit above the
// value yields a negative balance.
func Remaining(value, deposit decimal.Decimal) decimal.Decimal {
	return value.Sub(deposit)
}

// RemainingFromText recomputes the balance from raw entry text.
func RemainingFromText(value, deposit string) decimal.Decimal {
	return Remaining(ParseAmount(value), ParseAmount(deposit))
}

// ParseAmount reads an amount typed in either pt-BR ("1.234,56") or plain
// ("1234.56") notation. Anything unparsable is zero.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatBRL renders "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + FormatAmount(d)
}

// FormatAmount renders "1.234,56" with two decimals. The amount is rounded
// before the sign is decided, so -0.001 prints as "0,00".
func FormatAmount(d decimal.Decimal) string {
	return brPrinter.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}
