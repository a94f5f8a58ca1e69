package ui

import (
	"bytes"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/crypto/ssh/terminal"
)

// A Renderer generates the output to print to the terminal as a string,
// possibly containing ANSI escape codes for styling. It must always render
// the entire output; the screen takes care of only repainting what is on
// screen.
type Renderer interface {
	Render(frame Frame) string
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(frame Frame) string

// Render implements Renderer.
func (fn RenderFunc) Render(frame Frame) string { return fn(frame) }

// A Frame carries per-render context to a Renderer.
type Frame struct {
	// Number increments by one for every flushed frame.
	Number int

	// Width is the number of columns the rendered content should attempt
	// to fit within.
	Width int

	// Terminal dimensions.
	Cols int
	Rows int
}

// Indent returns a copy of the frame with a width reduced by cols, to be
// passed to a sub renderer.
func (f Frame) Indent(cols int) Frame {
	f.Width -= cols
	return f
}

// A Screen repaints a renderer's output in place on a terminal.
//
// All exported methods are safe for concurrent use.
type Screen struct {
	// KeepCursor disables hiding the cursor while a frame is painted.
	// Hiding avoids cursor flicker but is unhelpful in tests.
	KeepCursor bool

	target Renderer

	mu    sync.Mutex
	out   io.Writer
	buf   bytes.Buffer
	lines int // lines currently on screen
	cols  int
	rows  int
	frame int
}

// NewScreen creates a screen that paints target to output.
//
// The terminal size is read from stdin; if unavailable (tests, pipes) a
// 80x25 terminal is assumed. The size is refreshed on SIGWINCH.
func NewScreen(output io.Writer, target Renderer) *Screen {
	s := &Screen{
		out:    output,
		target: target,
	}
	s.resize()
	s.watchResize()
	return s
}

func (s *Screen) watchResize() {
	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	go func() {
		for range sigwinch {
			s.resize()
			s.Paint()
		}
	}()
}

func (s *Screen) resize() {
	cols, rows, err := terminal.GetSize(0)
	if err != nil {
		cols, rows = 80, 25
	}
	s.mu.Lock()
	s.cols = cols
	s.rows = rows
	s.mu.Unlock()
}

// Paint renders the target and repaints the terminal in place. Lines that
// exceed the terminal width are truncated. Returns any write error from the
// output.
func (s *Screen) Paint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := Frame{
		Number: s.frame,
		Width:  s.cols,
		Cols:   s.cols,
		Rows:   s.rows,
	}
	lines := strings.Split(s.target.Render(frame), "\n")

	s.buf.Reset()
	if !s.KeepCursor {
		s.buf.WriteString(hideCursor)
	}
	if s.lines > 0 {
		// Back up over the previous frame.
		s.buf.WriteString("\x1b[" + strconv.Itoa(s.lines) + "A")
	}
	for _, line := range lines {
		s.buf.WriteByte('\r')
		s.buf.WriteString(Truncate(line, s.cols, ">"))
		s.buf.WriteString(clearRight)
		s.buf.WriteByte('\n')
	}
	if s.lines > len(lines) {
		s.buf.WriteString(clearDown)
	}
	if !s.KeepCursor {
		s.buf.WriteString(showCursor)
	}

	if _, err := s.buf.WriteTo(s.out); err != nil {
		return err
	}
	s.lines = len(lines)
	s.frame++
	return nil
}

const (
	clearRight = "\x1b[K"
	clearDown  = "\x1b[J"
	showCursor = "\x1b[?25h"
	hideCursor = "\x1b[?25l"
)
