// Package clock keeps simulation time: a monotonic frame counter, the real
// time those frames represent, and accumulator-based schedulers for anything
// that has to fire on a fixed period.
package clock

import "time"

// slack absorbs the rounding of fixed ticks that do not divide a second
// evenly (1s/60 is 16666666ns), so 60 such ticks still make one second.
const slack = time.Microsecond

// Cadence fires every period of accumulated time.
type Cadence struct {
	period time.Duration
	acc    time.Duration
}

// NewCadence creates a cadence that fires once per period.
func NewCadence(period time.Duration) Cadence {
	return Cadence{period: period}
}

// Advance adds dt to the accumulator and returns how many periods elapsed.
// A non-positive period never fires.
func (c *Cadence) Advance(dt time.Duration) int {
	if c.period <= 0 {
		return 0
	}
	c.acc += dt
	fired := 0
	for c.acc >= c.period-slack {
		c.acc -= c.period
		fired++
	}
	return fired
}

// Reset clears the accumulated time.
func (c *Cadence) Reset() {
	c.acc = 0
}

// Period returns the configured period.
func (c *Cadence) Period() time.Duration {
	return c.period
}

// Clock counts frames and whole seconds of play.
type Clock struct {
	frame   uint64
	elapsed time.Duration
	seconds int
	second  Cadence
}

// New creates a zeroed clock.
func New() *Clock {
	return &Clock{second: NewCadence(time.Second)}
}

// Tick advances the clock by one frame lasting dt.
func (c *Clock) Tick(dt time.Duration) {
	c.frame++
	c.elapsed += dt
	c.seconds += c.second.Advance(dt)
}

// Reset zeroes the frame counter and all accumulated time.
func (c *Clock) Reset() {
	c.frame = 0
	c.elapsed = 0
	c.seconds = 0
	c.second.Reset()
}

// Frame returns the number of frames ticked since the last reset.
func (c *Clock) Frame() uint64 {
	return c.frame
}

// Elapsed returns the summed frame durations since the last reset.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Seconds returns the whole seconds of play since the last reset.
func (c *Clock) Seconds() int {
	return c.seconds
}
