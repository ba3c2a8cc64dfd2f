package core

// Cadence gates work to every Nth tick of a fixed-rate loop.
type Cadence struct {
	every int
	ticks int
}

// NewCadence returns a Cadence that fires once every n ticks.
func NewCadence(n int) *Cadence {
	c := &Cadence{}
	c.SetEvery(n)
	return c
}

// SetEvery changes the interval. Values below one are clamped to one.
func (c *Cadence) SetEvery(n int) {
	if n < 1 {
		n = 1
	}
	c.every = n
}

// Every returns the current interval in ticks.
func (c *Cadence) Every() int { return c.every }

// Tick counts one tick and reports whether this tick is a multiple of the interval.
func (c *Cadence) Tick() bool {
	c.ticks++
	return c.ticks%c.every == 0
}
