package service

import (
	"fmt"
	"math"
	"strconv"
)

const (
	crore = 10000000
	lakh  = 100000
)

// FormatINR renders an amount in rupees using crore and lakh suffixes:
// ≥ 1 Cr as "₹x.xx Cr", ≥ 1 L as "₹x.xx L", otherwise an Indian-grouped
// integer such as "₹99,999". Negative amounts are always grouped.
// Thresholds apply to the amount rounded to whole rupees, so 99,999.6
// reads "₹1.00 L" rather than a grouped "₹1,00,000".
func FormatINR(amount float64) string {
	whole := math.Round(amount)
	switch {
	case whole >= crore:
		return fmt.Sprintf("₹%.2f Cr", amount/crore)
	case whole >= lakh:
		return fmt.Sprintf("₹%.2f L", amount/lakh)
	default:
		return "₹" + GroupIndian(int64(whole))
	}
}

// GroupIndian groups digits the Indian way: the last three, then pairs.
// 1234567 becomes "12,34,567".
func GroupIndian(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	out := make([]byte, 0, len(digits)+len(digits)/2)
	lead := len(head) % 2
	if lead == 1 {
		out = append(out, head[0])
	}
	for i := lead; i < len(head); i += 2 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, head[i:i+2]...)
	}
	out = append(out, ',')
	out = append(out, tail...)
	return sign + string(out)
}
