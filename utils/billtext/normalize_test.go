package billtext

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1/15/2025", "2025-01-15"},
		{"01/15/2025", "2025-01-15"},
		{"1-5-2025", "2025-01-05"},
		{"12.31.2024", "2024-12-31"},
		{"2/9/2025", "2025-02-09"},
		// unrecognized shapes come back unchanged
		{"2025-01-15", "2025-01-15"},
		{"15 January 2025", "15 January 2025"},
		{"1/15/25", "1/15/25"},
		{"not a date", "not a date"},
		{"", ""},
		// out-of-range components are not a calendar date
		{"13/1/2025", "13/1/2025"},
		{"1/32/2025", "1/32/2025"},
		// mixed separators are not a recognized shape
		{"1/15-2025", "1/15-2025"},
		{"1-15.2025", "1-15.2025"},
		{"12.31/2024", "12.31/2024"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), "input %q", tt.in)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PHP1,000.00", "1000.00"},
		{"PHP100.00", "100.00"},
		{"1,234,567.89", "1234567.89"},
		{"PHP 2,500.50", "2500.50"},
		{"0.00", "0.00"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.in)
		require.NotNil(t, got, "input %q", tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "input %q got %s", tt.in, got)
	}
}

func TestParseAmountRejectsNonNumeric(t *testing.T) {
	for _, in := range []string{"", "PHP", "PHPabc.de", "1,000", "1000.0", "1000.000", "USD100.00", "N/A"} {
		assert.Nil(t, ParseAmount(in), "input %q", in)
	}
}

func TestParseAmountZeroIsNotAbsent(t *testing.T) {
	got := ParseAmount("PHP0.00")
	require.NotNil(t, got)
	assert.True(t, got.IsZero())
}

func TestNormalizeViews(t *testing.T) {
	raw, flattened := normalizeViews("Vendor: Acme\r\nBill # 42\r  Due Date:  1/2/2025 ")

	assert.Equal(t, "Vendor: Acme\nBill # 42\n  Due Date:  1/2/2025 ", raw)
	assert.Equal(t, "Vendor: Acme Bill # 42 Due Date: 1/2/2025", flattened)
}
