package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// A Logger prints leveled log output with a delta timestamp since start.
//
// A nil logger discards everything, so callers never need to check.
type Logger struct {
	Level LogLevel
	start time.Time

	mu  sync.Mutex
	out io.Writer
}

// A LogLevel filters log output; messages above the logger's level are
// discarded.
type LogLevel int

// Levels, least to most verbose:
const (
	Error LogLevel = iota
	Info
	Verbose
	Trace
)

// NewLogger returns a logger writing to stderr.
func NewLogger(level int) *Logger {
	return &Logger{
		Level: LogLevel(level),
		start: time.Now(),
		out:   os.Stderr,
	}
}

// SetOutput redirects log output, for example through a PrefixWriter.
func (l *Logger) SetOutput(w io.Writer) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

func (l *Logger) printDeltaTime() {
	d := time.Since(l.start)
	sec := int(d.Seconds())
	ms := int(d.Milliseconds()) % 1000
	fmt.Fprintf(l.out, "%d.%03d ", sec, ms)
}

// Logln logs the arguments with a trailing newline if the level is enabled.
func (l *Logger) Logln(level LogLevel, a ...interface{}) {
	if l == nil || l.out == nil || level > l.Level {
		return
	}
	l.mu.Lock()
	l.printDeltaTime()
	fmt.Fprintln(l.out, a...)
	l.mu.Unlock()
}

// Logf logs a formatted message if the level is enabled.
func (l *Logger) Logf(level LogLevel, format string, a ...interface{}) {
	if l == nil || l.out == nil || level > l.Level {
		return
	}
	l.mu.Lock()
	l.printDeltaTime()
	fmt.Fprintf(l.out, format, a...)
	l.mu.Unlock()
}

// Errorln logs at the Error level.
func (l *Logger) Errorln(a ...interface{}) { l.Logln(Error, a...) }

// Errorf logs a formatted message at the Error level.
func (l *Logger) Errorf(format string, a ...interface{}) { l.Logf(Error, format, a...) }

// Infoln logs at the Info level.
func (l *Logger) Infoln(a ...interface{}) { l.Logln(Info, a...) }

// Infof logs a formatted message at the Info level.
func (l *Logger) Infof(format string, a ...interface{}) { l.Logf(Info, format, a...) }

// Verboseln logs at the Verbose level.
func (l *Logger) Verboseln(a ...interface{}) { l.Logln(Verbose, a...) }

// Verbosef logs a formatted message at the Verbose level.
func (l *Logger) Verbosef(format string, a ...interface{}) { l.Logf(Verbose, format, a...) }

// Traceln logs at the Trace level.
func (l *Logger) Traceln(a ...interface{}) { l.Logln(Trace, a...) }

// Tracef logs a formatted message at the Trace level.
func (l *Logger) Tracef(format string, a ...interface{}) { l.Logf(Trace, format, a...) }
