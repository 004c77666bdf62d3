// Package moneyutil provides shared helpers for dollar-denominated decimals.
// All engine amounts are decimals carrying cents precision; these helpers fix
// the rounding and display conventions in one place.
package moneyutil

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundCents rounds to whole cents using banker's rounding.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Ratio returns num/den, or zero when den is zero. The engine prefers a zero
// policy over a division panic for empty denominators (zero income, zero
// withdrawal rate).
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// ClampFloor returns d, floored at min.
func ClampFloor(d, min decimal.Decimal) decimal.Decimal {
	if d.LessThan(min) {
		return min
	}
	return d
}

// FormatUSD renders an amount as $1,234,567.89 (sign leading the symbol).
func FormatUSD(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(frac)
	return b.String()
}

// FormatCompact renders an amount as $1.2M / $450K / $120 for insight text.
func FormatCompact(d decimal.Decimal) string {
	abs := d.Abs()
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	switch {
	case abs.GreaterThanOrEqual(million):
		return sign + "$" + abs.Div(million).Round(1).String() + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign + "$" + abs.Div(thousand).Round(0).String() + "K"
	default:
		return sign + "$" + abs.Round(0).String()
	}
}
