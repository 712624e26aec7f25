// Package clock holds the single time source of the animation.
package clock

// DefaultStep is the logical time added per frame.
const DefaultStep = 0.02

// Clock is a monotonic phase accumulator. It advances by a fixed step per
// tick and never looks at wall time, so a given tick count always maps to
// the same simulation time.
type Clock struct {
	step  float64
	ticks uint64
}

func New(step float64) *Clock {
	if !(step > 0) {
		step = DefaultStep
	}
	return &Clock{step: step}
}

// Tick advances the clock by one step and returns the new time.
func (c *Clock) Tick() float64 {
	c.ticks++
	return c.Now()
}

// Now returns the current time without advancing.
//
// Time is derived from the integer tick count instead of summed steps so
// long runs do not accumulate rounding drift.
func (c *Clock) Now() float64 {
	return float64(c.ticks) * c.step
}

func (c *Clock) Ticks() uint64 { return c.ticks }

func (c *Clock) Step() float64 { return c.step }
