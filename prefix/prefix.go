// Package prefix renders real numbers compactly using binary or SI
// magnitude prefixes and exact significant figure control.
//
// All functions are pure and total over their input domain; extreme
// magnitudes clamp to the largest or smallest tabulated prefix rather than
// fail.
package prefix

// Prefix tables, ordered by increasing magnitude. Never mutated.
var (
	binaryPrefixes = []string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}
	siLarge        = []string{"k", "M", "G", "T", "P", "E", "Z", "Y"}
	siSmall        = []string{"m", "µ", "n", "p", "f", "a", "z", "y"}
)

// Binary scales x to the nearest lesser binary prefix and returns the scaled
// value with the prefix. Values below 1024 are returned unscaled with an
// empty prefix; values beyond the Yi range clamp to Yi.
func Binary(x float64) (float64, string) {
	divisor := 1024.0
	if x < divisor {
		return x, ""
	}
	last := len(binaryPrefixes) - 1
	for _, p := range binaryPrefixes[:last] {
		next := divisor * 1024
		if next > x {
			return x / divisor, p
		}
		divisor = next
	}
	return x / divisor, binaryPrefixes[last]
}

// SI scales x to the nearest lesser SI prefix and returns the scaled value
// with the prefix. Magnitudes in [1, 1000) are returned unscaled with an
// empty prefix; larger magnitudes scale down through k..Y and smaller ones
// up through m..y, clamping at either end. The sign of x only affects the
// returned value, never the prefix selection.
func SI(x float64) (float64, string) {
	abs := x
	if abs < 0 {
		abs = -abs
	}
	if abs < 1 {
		divisor := 1e-3
		last := len(siSmall) - 1
		for _, p := range siSmall[:last] {
			if divisor <= abs {
				return x / divisor, p
			}
			divisor *= 1e-3
		}
		return x / divisor, siSmall[last]
	}
	if abs < 1e3 {
		return x, ""
	}
	divisor := 1e3
	last := len(siLarge) - 1
	for _, p := range siLarge[:last] {
		next := divisor * 1e3
		if next > abs {
			return x / divisor, p
		}
		divisor = next
	}
	return x / divisor, siLarge[last]
}
