// Package indicator renders small stateful progress indicators as Unicode
// glyphs.
//
// The package performs no IO and keeps no global state. Callers own the
// indicator state, mutate it with Set or Step, and render it whenever they
// choose; writing the result to a terminal, log or widget is left entirely
// to the caller. Rendering the same unmutated indicator twice produces
// identical output.
//
// Single glyph indicators (Spinner, Counter256, Snake) implement
// fmt.Stringer so they compose directly into larger formatted lines. The
// multi column Bar implements fmt.Formatter and honors the format width, so
//
//   fmt.Fprintf(w, "[%10v]", bar)
//
// renders the bar at 10 columns without any intermediate string.
package indicator
