package measure

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Round rounds x half away from zero to precision decimal places.
// The value is taken from its shortest decimal representation, so 1.005 rounds to 1.01.
// Infinite and NaN values are returned unchanged.
func Round(x float64, precision int) float64 {
	if !IsFinite(x) {
		return x
	}
	if precision < 0 {
		precision = 0
	}
	f, _ := decimal.NewFromFloat(x).Round(int32(precision)).Float64()
	return f
}

// Format renders qty with its unit for display. A value that rounds to a whole
// number is printed without decimals ("250 g"), anything else with exactly
// precision decimals ("1.50 cup").
func Format(qty float64, unit string, precision int) string {
	if !IsFinite(qty) {
		return fmt.Sprintf("%s %s", strconv.FormatFloat(qty, 'g', -1, 64), unit)
	}
	if precision < 0 {
		precision = 0
	}

	rounded := decimal.NewFromFloat(qty).Round(int32(precision))

	var text string
	if rounded.IsInteger() {
		text = rounded.StringFixed(0)
	} else {
		text = rounded.StringFixed(int32(precision))
	}

	return fmt.Sprintf("%s %s", text, unit)
}
