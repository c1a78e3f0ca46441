package calendar

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount the way Turkish locales print numbers: dot grouping,
// comma decimals, at most three fraction digits. Nil and zero amounts render empty.
func FormatAmount(amount *decimal.Decimal) string {
	if amount == nil || amount.IsZero() {
		return ""
	}

	d := amount.Round(3)
	intPart, fracPart, _ := strings.Cut(d.Abs().String(), ".")

	var b strings.Builder

	if d.IsNegative() {
		b.WriteByte('-')
	}

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}

		b.WriteRune(r)
	}

	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}

	return b.String()
}
