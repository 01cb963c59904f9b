// Package money handles VND amounts: decimal strings on the wire,
// float64 in memory, whole-dong display with Vietnamese grouping.
package money

import (
	"math"
	"strconv"
	"strings"
)

const suffix = " ₫"

// Round keeps two decimal places for stored amounts.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseDecimal reads a wire decimal string. Unparsable, NaN or infinite
// input yields 0 so formatting downstream never blows up.
func ParseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatDecimal renders an amount as the wire decimal string.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', 2, 64)
}

// FormatVND renders an amount for display: rounded to whole dong,
// dot-grouped thousands, fixed currency suffix. Negative values get a
// plain "-" prefix on the formatted magnitude.
func FormatVND(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	out := b.String() + suffix
	if neg {
		return "-" + out
	}
	return out
}

// ParseVND recovers the signed whole-dong magnitude from a FormatVND
// string, ignoring grouping and the currency suffix.
func ParseVND(s string) int64 {
	neg := strings.HasPrefix(strings.TrimSpace(s), "-")
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
