package price

import (
	"strconv"
	"strings"
)

// Parse coerces raw user input to a non-negative price.
// Invalid or empty input becomes 0, it never fails.
func Parse(raw string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || parsed < 0 {
		return 0
	}

	return parsed
}

// Format renders a price the way it is shown on receipts: no
// trailing zeros, no currency sign.
func Format(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
