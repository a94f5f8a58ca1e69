package prefix

import "strconv"

// SigFigs wraps a value so it formats with a fixed number of significant
// figures, for embedding in larger formatted output.
type SigFigs struct {
	Value   float64
	Figures int
}

func (s SigFigs) String() string {
	return Sigfigs(s.Value, s.Figures)
}

// FormatBinary renders x compactly with a binary unit prefix, for example
// 12345 as "12.1 Ki". The caller appends the unit itself ("B/s" etc). For
// zero or values in [1e-2, 1e28) the result is at most 7 ASCII characters.
//
// Values in [1e-2, 1) render with two decimals rather than an exponent;
// scaled values keep three significant figures, or four when the mantissa
// reaches 1000 (1047552 is "1023 Ki", not "1.02e3 Ki").
func FormatBinary(x float64) string {
	if x < 1 && x >= 1e-2 {
		return strconv.FormatFloat(x, 'f', 2, 64) + " "
	}
	value, p := Binary(x)
	figures := 3
	if value >= 1000 {
		figures = 4
	}
	return Sigfigs(value, figures) + " " + p
}

// FormatSI renders x compactly with an SI unit prefix and three significant
// figures, for example 0.01 as "10.0 m". For values in [1e-24, 1e28) the
// result is at most 6 ASCII characters.
func FormatSI(x float64) string {
	value, p := SI(x)
	return Sigfigs(value, 3) + " " + p
}
