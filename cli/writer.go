package cli

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer with a writer that prefixes every line
// with the given prefix.
type PrefixWriter struct {
	Output io.Writer
	Prefix []byte

	buf bytes.Buffer
}

// Write writes the given p to the underlying writer, prefixing every line
// separated by \n with the prefix. The output never ends with a bare
// prefix: the prefix for a line is only written once the line has content.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	n := 0
	for _, line := range bytes.SplitAfter(p, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		if _, err := pw.buf.Write(pw.Prefix); err != nil {
			return n, err
		}
		m, err := pw.buf.Write(line)
		n += m
		if err != nil {
			return n, err
		}
	}
	if _, err := pw.buf.WriteTo(pw.Output); err != nil {
		return 0, err
	}
	pw.buf.Reset()
	return n, nil
}
