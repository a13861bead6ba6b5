package service

import (
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"
)

// randomItem возвращает случайный элемент непустого среза.
func randomItem[T any](items []T) T {
	return items[rand.IntN(len(items))] // nolint:gosec
}

// formatAmount форматирует сумму с разделителями тысяч: 1500 -> "1,500", 150.5 -> "150.5".
func formatAmount(d decimal.Decimal) string {
	intPart, frac, _ := strings.Cut(d.Round(2).Abs().String(), ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// progressPercent доля от цели в процентах, не больше 100.
func progressPercent(total decimal.Decimal, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	hundred := decimal.NewFromInt(100) //nolint:mnd
	percent := total.Div(decimal.NewFromInt(goal)).Mul(hundred)
	if percent.GreaterThan(hundred) {
		percent = hundred
	}
	return percent.InexactFloat64()
}
