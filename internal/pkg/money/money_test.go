package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND_Grouping(t *testing.T) {
	assert.Equal(t, "0 ₫", FormatVND(0))
	assert.Equal(t, "500 ₫", FormatVND(500))
	assert.Equal(t, "2.400.000 ₫", FormatVND(2400000))
	assert.Equal(t, "1.234.567 ₫", FormatVND(1234567.4))
}

func TestFormatVND_Negative(t *testing.T) {
	assert.Equal(t, "-2.400.000 ₫", FormatVND(-2400000))
}

func TestFormatVND_ZeroDiscountIsNotBlank(t *testing.T) {
	// A zero discount renders as the zero-formatted string, never blank
	// and never negative.
	s := FormatVND(0)
	assert.NotEmpty(t, s)
	assert.Equal(t, "0 ₫", s)
}

func TestParseVND_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 999, 1000, 2400000, 123456789, 500000.49} {
		rounded := int64(v + 0.5)
		assert.Equal(t, rounded, ParseVND(FormatVND(v)), "value %v", v)
	}
	assert.Equal(t, int64(-1234567), ParseVND(FormatVND(-1234567)))
}

func TestParseDecimal_Fallbacks(t *testing.T) {
	assert.Equal(t, 500000.0, ParseDecimal("500000.00"))
	assert.Equal(t, 0.0, ParseDecimal("not-a-number"))
	assert.Equal(t, 0.0, ParseDecimal(""))
	assert.Equal(t, 0.0, ParseDecimal("NaN"))
	assert.Equal(t, 0.0, ParseDecimal("+Inf"))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "500000.00", FormatDecimal(500000))
	assert.Equal(t, "99.99", FormatDecimal(99.994))
}
