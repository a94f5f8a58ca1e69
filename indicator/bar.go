package indicator

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// A Bar is a high resolution progress bar using block elements.
//
// Progress is a fraction in [0, 1]. Out of range values may be stored but
// are clamped when rendering, so feeding a bar an overshooting estimate is
// harmless. Width and fill character are render time parameters, not state:
// the same bar can be rendered at any number of widths.
type Bar struct {
	progress float64
}

// Partial column glyphs, eighths from 1/8 to 7/8. A full column uses
// fullBlock and an empty one the fill character.
var eighths = [...]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'}

const fullBlock = '█'

// NewBar returns a bar at zero progress.
func NewBar() *Bar {
	return &Bar{}
}

// Set assigns the progress fraction. Values outside [0, 1] are accepted and
// clamped at render time.
func (b *Bar) Set(progress float64) {
	b.progress = progress
}

// Progress returns the stored progress fraction, unclamped.
func (b *Bar) Progress() float64 {
	return b.progress
}

// Render writes the bar to w at the given width using fill for empty
// columns. Exactly width characters are written; a width <= 0 writes
// nothing. The only possible error is a write error from w.
func (b *Bar) Render(w io.Writer, width int, fill rune) error {
	p := b.progress
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	count := float64(width) * p
	whole := int(count)
	for i := 0; i < whole; i++ {
		if err := writeRune(w, fullBlock); err != nil {
			return err
		}
	}
	if whole >= width {
		return nil
	}
	// Partial column: eighths of a full block, or the fill character when
	// the remainder rounds down to nothing.
	partial := fill
	if frac := int((count - float64(whole)) * 8); frac > 0 {
		partial = eighths[frac-1]
	}
	if err := writeRune(w, partial); err != nil {
		return err
	}
	for i := whole + 1; i < width; i++ {
		if err := writeRune(w, fill); err != nil {
			return err
		}
	}
	return nil
}

// Format implements fmt.Formatter. The format width sets the bar width,
// defaulting to 80; empty columns use a space. The bar always occupies
// exactly its width, so no additional padding is ever applied.
func (b *Bar) Format(f fmt.State, verb rune) {
	width, ok := f.Width()
	if !ok {
		width = 80
	}
	// fmt surfaces write errors through the formatter state.
	_ = b.Render(f, width, ' ')
}

func writeRune(w io.Writer, r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	_, err := w.Write(buf[:n])
	return err
}
