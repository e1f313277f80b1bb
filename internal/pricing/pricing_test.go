package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		deposit string
		want    string
	}{
		{name: "partial deposit", value: "350", deposit: "100", want: "250"},
		{name: "fully paid", value: "200.50", deposit: "200.50", want: "0"},
		{name: "deposit above value is negative", value: "100", deposit: "150", want: "-50"},
		{name: "cents are exact", value: "0.3", deposit: "0.1", want: "0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.deposit))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "150", want: "150"},
		{raw: "150.5", want: "150.5"},
		{raw: "150,50", want: "150.5"},
		{raw: "1.234,56", want: "1234.56"},
		{raw: "R$ 1.234,56", want: "1234.56"},
		{raw: "1.234.567", want: "1234567"},
		{raw: "  80 ", want: "80"},
		{raw: "", want: "0"},
		{raw: "abc", want: "0"},
		{raw: "12,3,4", want: "0"},
		{raw: "1e3", want: "0"},
		{raw: "2,5E2", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestRemainingFromText(t *testing.T) {
	got := RemainingFromText("500,00", "abc")
	assert.True(t, got.Equal(decimal.NewFromInt(500)))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 150,50", FormatBRL(decimal.RequireFromString("150.5")))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(decimal.NewFromInt(1000000)))
	assert.Equal(t, "R$ -50,00", FormatBRL(decimal.NewFromInt(-50)))
	assert.Equal(t, "R$ -1.234,57", FormatBRL(decimal.RequireFromString("-1234.567")))
	assert.Equal(t, "R$ 0,01", FormatBRL(decimal.RequireFromString("0.005")))
}

func TestFormatBRLRoundsBeforeSign(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.RequireFromString("-0.001")))
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.RequireFromString("-0.004")))
}
