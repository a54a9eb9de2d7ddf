package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of fractional digits every amount is kept at.
const CentPlaces = 2

// RoundCents rounds d half-up to two fractional digits.
// shopspring rounds half away from zero, which is half-up for the
// non-negative amounts the ledger handles.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}

// ParseAmount parses a decimal string without rounding it.
// Both "12.34" and "12,34" are accepted. A comma is only read as the
// decimal separator when it is the sole separator and at most two digits
// follow it; "1,234" and "1,234.50" are rejected rather than guessed.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		frac := s[i+1:]
		if strings.ContainsAny(frac, ",.") || strings.Contains(s[:i], ".") || frac == "" || len(frac) > CentPlaces {
			return decimal.Zero, fmt.Errorf("invalid amount %q: ambiguous decimal comma", s)
		}
		s = s[:i] + "." + frac
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// FormatCents renders d with exactly two fractional digits.
func FormatCents(d decimal.Decimal) string {
	return d.StringFixed(CentPlaces)
}
