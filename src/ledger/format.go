package ledger

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders n as rupees with two decimals and Indian digit grouping:
// the last three digits, then pairs (₹12,34,567.50).
func FormatINR(n float64) string {
	switch {
	case math.IsNaN(n):
		return "₹NaN"
	case math.IsInf(n, 1):
		return "₹∞"
	case math.IsInf(n, -1):
		return "-₹∞"
	}
	d := decimal.NewFromFloat(n).Round(2)
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	dot := strings.IndexByte(s, '.')
	out := "₹" + groupIndian(s[:dot]) + s[dot:]
	if neg {
		return "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
