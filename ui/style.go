package ui

import "strconv"

// A Style is an ANSI style attribute to set when formatting text.
type Style uint8

// Modifiers:
const (
	Bold      Style = 1
	Dim       Style = 2 // Faint
	Italic    Style = 3
	Underline Style = 4
)

// Foreground colors:
const (
	Black Style = 30 + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Bright foreground colors:
const (
	HiBlack Style = 90 + iota
	HiRed
	HiGreen
	HiYellow
	HiBlue
	HiMagenta
	HiCyan
	HiWhite
)

// resetCode returns the code that resets the given style.
//
// Bold and Dim share a reset code (22), so resetting one also resets the
// other.
func (s Style) resetCode() int {
	switch s {
	case Bold, Dim:
		return 22
	case Italic:
		return 23
	case Underline:
		return 24
	}
	return 39 // default foreground
}

// Format wraps the given string in ANSI escape sequences that enable the
// styles and reset them afterwards. Only the attributes that were set are
// reset, so styled text can be nested inside other styled text. If the
// input string is empty or no styles are given, the string is returned
// unchanged.
func Format(str string, styles ...Style) string {
	if str == "" || len(styles) == 0 {
		return str
	}
	return sequence(styles, Style.code) + str + sequence(styles, Style.resetCode)
}

func (s Style) code() int { return int(s) }

func sequence(styles []Style, code func(Style) int) string {
	out := "\x1b["
	for i, s := range styles {
		if i > 0 {
			out += ";"
		}
		out += strconv.Itoa(code(s))
	}
	return out + "m"
}
