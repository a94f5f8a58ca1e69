package indicator

// A Counter256 cycles through 256 states by counting in binary using the
// dots of a single braille cell. Each of the 8 dots represents one bit of
// the state.
type Counter256 struct {
	state uint8
}

// NewCounter256 returns a counter at state 0, the empty braille cell.
func NewCounter256() *Counter256 {
	return &Counter256{}
}

// Set assigns the state, truncated to 8 bits.
func (c *Counter256) Set(value uint32) {
	c.state = uint8(value)
}

// Step advances the state by count with wrapping 8-bit addition.
func (c *Counter256) Step(count uint32) {
	c.state += uint8(count)
}

// String returns the braille cell for the current state.
func (c *Counter256) String() string {
	return string(Braille(c.state))
}
