package geometry

import (
	"strconv"
	"strings"
)

// numberPrecision is the number of decimals kept when serialising coordinates.
const numberPrecision = 4

// FormatNumber renders v with at most four decimals and no trailing zeros,
// so that identical inputs always serialise to identical bytes.
func FormatNumber(v float64) string {
	return FormatFixed(v, numberPrecision)
}

// FormatFixed renders v with at most decimals digits after the point and no
// trailing zeros. Negative zero renders as "0".
func FormatFixed(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// formatPair renders "x,y".
func formatPair(p Point) string {
	return FormatNumber(p.X) + "," + FormatNumber(p.Y)
}
