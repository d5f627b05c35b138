package common

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders an amount stored in integer cents as a display
// string, e.g. 123456789 -> "$1,234,567.89".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	dollars := cents / 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(dollars), cents%100)
}

// AmountToCents converts a decimal amount into integer cents, rounding to
// the nearest cent. Amounts are stored in cents to avoid floating-point
// currency error.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentsToAmount is the inverse of AmountToCents, used when pre-populating
// edit forms.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
