package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
)

// FormatINR formats a rupee amount with Indian digit grouping, e.g. ₹12,34,567
func FormatINR(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "₹" + groupIndian(d.String())
}

// FormatCompact abbreviates large amounts into lakhs and crores, e.g. ₹1.25 Cr
func FormatCompact(amount float64) string {
	d := decimal.NewFromFloat(amount)
	abs := d.Abs()
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + "₹" + abs.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + "₹" + abs.Div(lakh).StringFixed(2) + " L"
	default:
		return FormatINR(amount)
	}
}

// groupIndian inserts separators as 3 trailing digits then groups of 2
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
