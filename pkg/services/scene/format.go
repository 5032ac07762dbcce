package scene

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatMoney renders "$1,234" (places=0) or "$1,234.56" (places=2).
func formatMoney(v decimal.Decimal, places int32) string {
	return "$" + formatNumber(v, places)
}

// formatNumber renders a number with thousands separators, rounded half away from zero.
func formatNumber(v decimal.Decimal, places int32) string {
	rounded := v.Round(places)
	fixed := rounded.Abs().StringFixed(places)

	whole, frac, _ := strings.Cut(fixed, ".")
	out := groupThousands(whole)
	if frac != "" {
		out += "." + frac
	}
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// groupThousands inserts commas into a run of digits. Working on the digit string keeps
// values beyond int64 exact.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// formatPercent renders a 0..1 ratio as "15.62%".
func formatPercent(v decimal.Decimal) string {
	return v.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
