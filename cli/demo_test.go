package cli

import (
	"strings"
	"testing"

	"github.com/glint/glint/ui"
)

func demoConfig() DemoConfig {
	cfg := DefaultDemoConfig()
	cfg.Width = 10
	return cfg
}

func TestDemo_RenderRows(t *testing.T) {
	d := NewDemo(demoConfig(), nil)
	out := d.Render(ui.Frame{Width: 60})
	lines := strings.Split(out, "\n")

	// One row per indicator, plus the rate row and the footer.
	if want := len(indicatorNames) + 2; len(lines) != want {
		t.Fatalf("Rendered %d rows, want %d", len(lines), want)
	}
	for i, name := range indicatorNames {
		if !strings.Contains(lines[i], name) {
			t.Errorf("Row %d = %q, want label %q", i, lines[i], name)
		}
	}
	if !strings.Contains(lines[len(indicatorNames)], "B/s") {
		t.Errorf("Rate row = %q, want a B/s value", lines[len(indicatorNames)])
	}
}

func TestDemo_RenderSelection(t *testing.T) {
	cfg := demoConfig()
	cfg.Indicators = []string{"snake"}
	d := NewDemo(cfg, nil)
	out := d.Render(ui.Frame{Width: 60})
	if strings.Contains(out, "spinner4") {
		t.Errorf("Render included unselected indicator:\n%s", out)
	}
	if !strings.Contains(out, "snake") {
		t.Errorf("Render missing selected indicator:\n%s", out)
	}
}

func TestDemo_BarWidth(t *testing.T) {
	d := NewDemo(demoConfig(), nil)
	row := d.row("bar", ui.Frame{Width: 60})
	// Label, bracket, 10 bar columns, bracket.
	if got, want := ui.StringWidth(row), labelWidth+1+10+1; got != want {
		t.Errorf("Bar row width = %d, want %d", got, want)
	}
}

func TestDemo_RenderDeterministic(t *testing.T) {
	a := NewDemo(demoConfig(), nil)
	b := NewDemo(demoConfig(), nil)
	for i := 0; i < 17; i++ {
		a.advance()
		b.advance()
	}
	f := ui.Frame{Width: 60}
	if got, want := a.Render(f), b.Render(f); got != want {
		t.Errorf("Equal state rendered differently:\n%q\n%q", got, want)
	}
}

func TestDemo_FrameBudget(t *testing.T) {
	cfg := demoConfig()
	cfg.Frames = 3
	d := NewDemo(cfg, nil)
	for i := 0; i < 2; i++ {
		if d.advance() {
			t.Fatalf("advance() done after %d frames, budget 3", i+1)
		}
	}
	if !d.advance() {
		t.Error("advance() not done after 3 frames, budget 3")
	}
}
