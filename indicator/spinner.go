package indicator

import "fmt"

// An Indicator is a counter backed activity indicator.
//
// Set assigns an absolute state and Step advances the state by count. Both
// wrap around the indicator's state domain rather than fail; spinners are
// expected to cycle indefinitely under continuous stepping. Neither method
// can fail and rendering is defined for every reachable state.
type Indicator interface {
	Set(value uint32)
	Step(count uint32)
	fmt.Stringer
}

// Frame tables for the fixed cycle spinners. Never mutated.
var (
	spinner4Frames  = []rune("▖▘▝▗")
	spinner8Frames  = []rune("⡀⠄⠂⠁⠈⠐⠠⢀")
	counter16Frames = []rune(" ▘▖▌▝▀▞▛▗▚▄▙▐▜▟█")
)

// A Spinner cycles through a fixed table of frames.
//
// The zero value is not usable; construct with NewSpinner4, NewSpinner8 or
// NewCounter16, which bind the frame table and start at the first frame.
type Spinner struct {
	frames []rune
	state  uint32
}

// NewSpinner4 returns a 4 state spinner with a single rotating quadrant
// block.
func NewSpinner4() *Spinner {
	return &Spinner{frames: spinner4Frames}
}

// NewSpinner8 returns an 8 state spinner with a single rotating braille dot.
func NewSpinner8() *Spinner {
	return &Spinner{frames: spinner8Frames}
}

// NewCounter16 returns a 16 state spinner that counts in binary using
// quadrant block elements.
func NewCounter16() *Spinner {
	return &Spinner{frames: counter16Frames}
}

// Cycle returns the number of states the spinner cycles through.
func (s *Spinner) Cycle() uint32 { return uint32(len(s.frames)) }

// Set assigns the state, modulo the cycle length.
func (s *Spinner) Set(value uint32) {
	s.state = value % s.Cycle()
}

// Step advances the state by count, wrapping around the cycle.
func (s *Spinner) Step(count uint32) {
	// Wrapping add; the cycle lengths divide 2^32 so overflow agrees with
	// the modulo.
	s.state = (s.state + count) % s.Cycle()
}

// String returns the frame for the current state.
func (s *Spinner) String() string {
	return string(s.frames[s.state])
}
