package indicator

import "math/bits"

// A Snake cycles through many states with a run of 1-6 braille dots that
// appears to travel back and forth along the cell, growing and shrinking at
// the turnarounds.
type Snake struct {
	state uint32
}

// wobble is half the period over which the run length grows then shrinks.
const wobble = 5

// NewSnake returns a snake at state 0.
func NewSnake() *Snake {
	return &Snake{}
}

// Set assigns the state.
func (s *Snake) Set(value uint32) {
	s.state = value
}

// Step advances the state by count with wrapping 32-bit addition.
func (s *Snake) Step(count uint32) {
	s.state += count
}

// String returns the braille cell for the current state.
func (s *Snake) String() string {
	phase := s.state % (2 * wobble)
	length := phase - wobble
	if phase < wobble {
		length = wobble - phase
	}
	length++

	bits8 := ^(uint8(0xFF) << length)

	// The base travel distance advances every full period; the remainder
	// only contributes during the shrinking half of the phase.
	position := wobble * (s.state / (2 * wobble))
	if phase > wobble {
		position += phase - wobble
	}
	snake := bits.RotateLeft8(bits8, -int(position%8))

	// The upper half of the cell orders its dots opposite to the lower
	// half; reverse the most significant nibble before encoding.
	value := snake&0x0F |
		snake&0x80>>3 |
		snake&0x40>>1 |
		snake&0x20<<1 |
		snake&0x10<<3
	return string(Braille(value))
}
