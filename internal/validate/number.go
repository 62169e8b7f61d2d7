package validate

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses s as a finite decimal number after trimming spaces.
// Empty, non-numeric, NaN and infinite inputs report ok=false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// NumberOrZero returns the parsed value of s, or 0 when s is not a number.
func NumberOrZero(s string) float64 {
	v, _ := ParseNumber(s)
	return v
}

// FormatNumber renders v without a trailing ".0" for whole numbers.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
