package indicator_test

import (
	"testing"

	"github.com/glint/glint/indicator"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		name  string
		state uint32
		want  string
	}{
		{name: "Start", state: 0, want: "⣧"},
		{name: "Shrinking", state: 1, want: "⣇"},
		{name: "Shortest", state: 5, want: "⠁"},
		{name: "Growing", state: 6, want: "⠉"},
		{name: "SecondPeriod", state: 10, want: "⣹"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := indicator.NewSnake()
			s.Set(tc.state)
			if got := s.String(); got != tc.want {
				t.Errorf("State %d = %q, want %q", tc.state, got, tc.want)
			}
		})
	}
}

func TestSnake_StepMatchesSet(t *testing.T) {
	for _, count := range []uint32{0, 1, 7, 10, 1<<32 - 1} {
		stepped := indicator.NewSnake()
		stepped.Set(41)
		stepped.Step(count)
		set := indicator.NewSnake()
		set.Set(41 + count) // wrapping
		if got, want := stepped.String(), set.String(); got != want {
			t.Errorf("Step(%d) = %q, Set = %q", count, got, want)
		}
	}
}

func TestSnake_Total(t *testing.T) {
	// The run must stay 1-6 dots long for any state; a longer run would
	// mean the wobble arithmetic overflowed.
	s := indicator.NewSnake()
	for _, state := range []uint32{0, 1, 9, 10, 79, 80, 1000, 1<<32 - 1} {
		s.Set(state)
		g := []rune(s.String())
		if len(g) != 1 {
			t.Fatalf("State %d rendered %d runes", state, len(g))
		}
		dots := 0
		for bits := uint32(g[0]) - 0x2800; bits != 0; bits >>= 1 {
			dots += int(bits & 1)
		}
		if dots < 1 || dots > 6 {
			t.Errorf("State %d lit %d dots, want 1-6", state, dots)
		}
	}
}

func TestSnake_RenderIdempotent(t *testing.T) {
	s := indicator.NewSnake()
	s.Set(123)
	if first, second := s.String(), s.String(); first != second {
		t.Errorf("Renders differ: %q vs %q", first, second)
	}
}
