package prefix

import (
	"math"
	"strconv"
	"strings"
)

// Sigfigs formats value with exactly figures significant digits.
//
// Fixed notation is used when the value's integer digits fit entirely
// within the significant figure budget, that is when 0 <= floor(log10|v|) <
// figures. Everything else renders in exponential notation with a compact
// exponent ("1e-1", not "1.0e-01"). Zero renders as "0" followed by
// figures-1 zeros after the decimal point. A figures below 1 is treated as
// 1. Never fails, including for NaN and infinities.
func Sigfigs(value float64, figures int) string {
	if figures < 1 {
		figures = 1
	}
	if value == 0 {
		return strconv.FormatFloat(0, 'f', figures-1, 64)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	log := int(math.Floor(math.Log10(math.Abs(value))))
	if log < 0 || log >= figures {
		return exponential(value, figures-1)
	}
	return strconv.FormatFloat(value, 'f', figures-(log+1), 64)
}

// exponential formats value in exponential notation with prec fractional
// digits in the mantissa, stripping the exponent's sign padding and leading
// zeros.
func exponential(value float64, prec int) string {
	s := strconv.FormatFloat(value, 'e', prec, 64)
	i := strings.IndexByte(s, 'e')
	mantissa, exp := s[:i], s[i+1:]
	neg := exp[0] == '-'
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		return mantissa + "e-" + exp
	}
	return mantissa + "e" + exp
}
