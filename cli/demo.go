package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/glint/glint/indicator"
	"github.com/glint/glint/prefix"
	"github.com/glint/glint/ui"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/sync/errgroup"
)

// labelWidth is the column where indicator glyphs start.
const labelWidth = 12

// A Demo drives one of every indicator against a synthetic workload and
// renders them as rows. It implements ui.Renderer.
type Demo struct {
	Config DemoConfig
	Logger *Logger

	mu       sync.Mutex
	tick     uint32
	spinner4 *indicator.Spinner
	spinner8 *indicator.Spinner
	count16  *indicator.Spinner
	count256 *indicator.Counter256
	snake    *indicator.Snake
	bar      *indicator.Bar
	rate     *indicator.MovingAverage
}

// NewDemo creates a demo with all indicators at their initial state.
func NewDemo(cfg DemoConfig, log *Logger) *Demo {
	return &Demo{
		Config:   cfg,
		Logger:   log,
		spinner4: indicator.NewSpinner4(),
		spinner8: indicator.NewSpinner8(),
		count16:  indicator.NewCounter16(),
		count256: indicator.NewCounter256(),
		snake:    indicator.NewSnake(),
		bar:      indicator.NewBar(),
		rate:     indicator.NewMovingAverage(cfg.Alpha),
	}
}

// Sentinel results that stop the run group without being reported.
var (
	errDone        = errors.New("done")
	errInterrupted = errors.New("interrupted")
)

// Run renders the demo to out every interval until the frame budget is
// exhausted, the context is cancelled or an interrupt is received.
func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	screen := ui.NewScreen(out, d)
	d.Logger.Verbosef("Rendering every %s\n", d.Config.Interval)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		defer signal.Stop(sig)
		select {
		case <-sig:
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		ticker := time.NewTicker(d.Config.Interval)
		defer ticker.Stop()
		for {
			done := d.advance()
			if err := screen.Paint(); err != nil {
				return err
			}
			if done {
				return errDone
			}
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})
	err := g.Wait()
	if err == errDone || err == errInterrupted {
		d.Logger.Traceln("Stopped:", err)
		return nil
	}
	return err
}

// advance steps every indicator one frame. Reports whether the configured
// frame budget has been reached.
func (d *Demo) advance() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tick++
	i := d.tick
	d.spinner4.Set(i >> 2)
	d.spinner8.Set(i >> 1)
	d.count16.Set(i >> 2)
	d.count256.Set(i >> 1)
	d.snake.Set(i)

	if d.Config.Frames > 0 {
		// Finite run: fill the bar over the whole budget.
		d.bar.Set(float64(i) / float64(d.Config.Frames))
	} else {
		d.bar.Set(float64(i%1000) / 1000)
	}

	// Synthetic per-frame byte count, converted to a rate and smoothed
	// before display.
	sample := (1 + math.Sin(float64(i)/8)) * 64 * 1024
	if s := d.Config.Interval.Seconds(); s > 0 {
		sample /= s
	}
	d.rate.Update(sample)

	return d.Config.Frames > 0 && i >= uint32(d.Config.Frames)
}

// Render renders all configured indicator rows. Implements ui.Renderer.
func (d *Demo) Render(f ui.Frame) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := d.Config.Indicators
	if len(names) == 0 {
		names = indicatorNames
	}
	rows := make([]string, 0, len(names)+2)
	for _, name := range names {
		rows = append(rows, d.row(name, f))
	}
	rows = append(rows, label("rate")+prefix.FormatBinary(d.rate.Value())+"B/s")
	rows = append(rows, ui.Format(wordwrap.WrapString(
		"Press Ctrl-C to exit.", uint(max(f.Width-1, 1))), ui.Dim))
	return ui.Rows(rows...)
}

func (d *Demo) row(name string, f ui.Frame) string {
	switch name {
	case "spinner4":
		return label(name) + d.spinner4.String()
	case "spinner8":
		return label(name) + d.spinner8.String()
	case "counter16":
		return label(name) + d.count16.String()
	case "counter256":
		return label(name) + d.count256.String()
	case "snake":
		return label(name) + d.snake.String()
	case "bar":
		width := d.Config.Width
		if avail := f.Width - labelWidth - 2; width == 0 || width > avail {
			width = avail
		}
		if width < 1 {
			width = 1
		}
		return label(name) + "[" + fmt.Sprintf("%*v", width, d.bar) + "]"
	}
	// Unknown names are caught by config validation.
	return label(name) + "?"
}

func label(name string) string {
	return ui.PadRight(ui.Format(name, ui.Dim), labelWidth)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
