package cli

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/agext/levenshtein"
	"github.com/ghodss/yaml"
)

// DemoConfig configures the indicator demo.
type DemoConfig struct {
	// Interval between frames.
	Interval time.Duration `json:"-"`

	// IntervalMS is the frame interval in milliseconds as read from file.
	IntervalMS int `json:"interval_ms"`

	// Width is the bar width in columns; 0 sizes it to the terminal.
	Width int `json:"width"`

	// Frames is the number of frames to render; 0 runs until cancelled.
	Frames int `json:"frames"`

	// Indicators selects which indicators to show, in order. An empty
	// list shows all of them.
	Indicators []string `json:"indicators"`

	// Alpha is the smoothing factor for the throughput average.
	Alpha float64 `json:"alpha"`
}

// Known indicator names, in display order.
var indicatorNames = []string{
	"spinner4",
	"spinner8",
	"counter16",
	"counter256",
	"snake",
	"bar",
}

// DefaultDemoConfig returns the configuration used when no file or flags
// are given.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Interval:   50 * time.Millisecond,
		IntervalMS: 50,
		Alpha:      0.1,
	}
}

// LoadDemoConfig reads a YAML config file and validates it.
func LoadDemoConfig(path string) (DemoConfig, error) {
	cfg := DefaultDemoConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %v", path, err)
	}
	if cfg.IntervalMS > 0 {
		cfg.Interval = time.Duration(cfg.IntervalMS) * time.Millisecond
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %v", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the demo cannot run with.
func (c DemoConfig) Validate() error {
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	for _, name := range c.Indicators {
		if !knownIndicator(name) {
			if s, ok := suggest(indicatorNames, name); ok {
				return fmt.Errorf("unknown indicator %q, did you mean %q?", name, s)
			}
			return fmt.Errorf("unknown indicator %q", name)
		}
	}
	return nil
}

func knownIndicator(name string) bool {
	for _, n := range indicatorNames {
		if n == name {
			return true
		}
	}
	return false
}

func suggest(options []string, want string) (string, bool) {
	for _, suggestion := range options {
		dist := levenshtein.Distance(want, suggestion, nil)
		if dist < 3 { // threshold determined experimentally
			return suggestion, true
		}
	}
	return "", false
}
