package ui

import "strings"

// Rows joins all non-empty rows with a new line.
func Rows(rows ...string) string {
	return join(rows, "\n")
}

// Cols joins all non-empty columns with a space.
func Cols(cols ...string) string {
	return join(cols, " ")
}

func join(values []string, sep string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if len(v) > 0 {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
}
