package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the number of visible cells the given string
// occupies. ANSI escape codes do not contribute to the width.
func StringWidth(str string) int {
	w := 0
	esc := false
	for _, r := range str {
		if r == escStart {
			esc = true
			continue
		}
		if esc {
			if escEnds(r) {
				esc = false
			}
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Truncate cuts a string that exceeds the given number of visible columns,
// placing tail at the end so the result still fits within cols. ANSI escape
// codes do not count towards the width; if the string is cut and contained
// escape codes, styles are reset so they cannot leak past the cut.
func Truncate(str string, cols int, tail string) string {
	runes := []rune(str)
	cut := -1
	width := 0
	esc := false
	styled := false
	for i, r := range runes {
		if r == escStart {
			esc = true
			styled = true
			continue
		}
		if esc {
			if escEnds(r) {
				esc = false
			}
			continue
		}
		if width+runewidth.RuneWidth(r) > cols {
			cut = i - StringWidth(tail)
			break
		}
		width += runewidth.RuneWidth(r)
	}
	if cut <= 0 {
		return str
	}
	out := string(runes[:cut])
	if styled {
		out += "\x1b[0m"
	}
	return out + tail
}

// PadLeft prepends spaces so the string is cols columns wide, not counting
// ANSI escape codes.
func PadLeft(str string, cols int) string {
	return strings.Repeat(" ", pad(str, cols)) + str
}

// PadRight appends spaces so the string is cols columns wide, not counting
// ANSI escape codes.
func PadRight(str string, cols int) string {
	return str + strings.Repeat(" ", pad(str, cols))
}

func pad(str string, cols int) int {
	n := cols - StringWidth(str)
	if n < 0 {
		return 0
	}
	return n
}

const escStart = '\x1b'

func escEnds(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}
