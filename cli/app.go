package cli

import (
	"context"
	"io"
	"os"
)

// App holds the pieces shared by all commands.
type App struct {
	Logger *Logger
}

// NewApp creates an app with logging at the given verbosity. Log lines are
// prefixed so they stand apart from rendered indicator output.
func NewApp(verbosity int) *App {
	log := NewLogger(verbosity)
	log.SetOutput(&PrefixWriter{Output: os.Stderr, Prefix: []byte("glint: ")})
	return &App{
		Logger: log,
	}
}

// Demo runs the indicator demo with the given config, rendering to out.
// Returns the process exit code.
func (a *App) Demo(ctx context.Context, cfg DemoConfig, out io.Writer) int {
	demo := NewDemo(cfg, a.Logger)
	if err := demo.Run(ctx, out); err != nil {
		a.Logger.Errorln(err)
		return 1
	}
	return 0
}
