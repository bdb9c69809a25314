package conversion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SignificantDigits bounds displayed precision so float noise such as
// 0.30000000000000004 never reaches the UI.
const SignificantDigits = 10

// Round rounds v to SignificantDigits significant digits.
func Round(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', SignificantDigits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Format renders v rounded to SignificantDigits without padding zeros.
// Magnitudes outside [1e-6, 1e21) use exponent notation ("1.5e+21", "1e-7").
// Non-finite values render as the empty string.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	r := Round(v)
	if r == 0 {
		return "0"
	}

	abs := math.Abs(r)
	if abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(r, 'e', -1, 64), "e")
		n, _ := strconv.Atoi(exp)
		return fmt.Sprintf("%se%+d", mant, n)
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
