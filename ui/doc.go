// Package ui provides minimal in-place terminal output for indicator
// driver programs.
//
// A target renderer produces the entire desired output every frame; the
// screen reprints those lines in place using ANSI cursor movement. The
// terminal size is tracked and passed to the renderer through the frame,
// and a resize triggers a fresh render at the new size.
//
// The indicator and prefix packages never depend on this package; it exists
// for programs that poll indicator state and need somewhere to draw it.
package ui
