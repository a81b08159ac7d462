package ember

// TimeSource supplies the raw, monotonically increasing time values an
// animator clock is derived from. Both are measured in ticks and include
// the fractional progress toward the next tick.
type TimeSource interface {
	// ScreenTime keeps advancing while the host is paused.
	ScreenTime() float64
	// WorldTime freezes while the host is paused.
	WorldTime() float64
}

// TickCounters counts logical ticks and tracks the partial progress into
// the current tick. It implements TimeSource.
type TickCounters struct {
	screenTicks   int
	worldTicks    int
	partial       float64
	pausedPartial float64
	worldBias     float64 // absorbs partial-tick jumps across pauses
	paused        bool
}

var _ TimeSource = (*TickCounters)(nil)

// Tick advances the screen tick count, and the world tick count unless
// paused.
func (c *TickCounters) Tick() {
	if !c.paused {
		c.worldTicks++
	}
	c.screenTicks++
}

// SetPartial sets the fraction of the current tick that has elapsed,
// normally in [0, 1).
func (c *TickCounters) SetPartial(f float64) {
	c.partial = f
}

// SetPaused pauses or resumes world time. While paused, WorldTime holds the
// value it had at the moment of pausing, and resumes from that value.
func (c *TickCounters) SetPaused(paused bool) {
	switch {
	case paused && !c.paused:
		c.pausedPartial = c.partial
	case !paused && c.paused:
		c.worldBias += c.pausedPartial - c.partial
	}
	c.paused = paused
}

// Paused reports whether world time is paused.
func (c *TickCounters) Paused() bool {
	return c.paused
}

// ScreenTicks returns the number of ticks counted so far.
func (c *TickCounters) ScreenTicks() int {
	return c.screenTicks
}

// WorldTicks returns the number of unpaused ticks counted so far.
func (c *TickCounters) WorldTicks() int {
	return c.worldTicks
}

// ScreenTime returns screen ticks plus the current partial tick.
func (c *TickCounters) ScreenTime() float64 {
	return float64(c.screenTicks) + c.partial
}

// WorldTime returns world ticks plus the partial tick, frozen while paused.
// Resuming never moves it backwards: the partial-tick difference between
// pausing and resuming is carried forward.
func (c *TickCounters) WorldTime() float64 {
	if c.paused {
		return float64(c.worldTicks) + c.worldBias + c.pausedPartial
	}
	return float64(c.worldTicks) + c.worldBias + c.partial
}

// Clock is a continuous virtual clock derived from a TimeSource:
//
//	time = raw*speed - offset
//
// The clock is held as an anchor point so that reading Time immediately
// after SetTime or SetSpeed returns exactly the value set or kept.
type Clock struct {
	source   TimeSource
	useWorld bool
	speed    float64
	base     float64 // virtual time at anchor
	anchor   float64 // raw time at the last re-anchor
}

// NewClock creates a clock reading from source, starting at time 0 with
// speed 1.
func NewClock(source TimeSource) *Clock {
	c := &Clock{source: source, speed: 1}
	c.anchor = c.raw()
	return c
}

func (c *Clock) raw() float64 {
	if c.useWorld {
		return c.source.WorldTime()
	}
	return c.source.ScreenTime()
}

// Time returns the current virtual time.
func (c *Clock) Time() float64 {
	return c.base + (c.raw()-c.anchor)*c.speed
}

// SetTime moves the clock to v without changing its speed.
func (c *Clock) SetTime(v float64) {
	c.anchor = c.raw()
	c.base = v
}

// Speed returns the current speed multiplier.
func (c *Clock) Speed() float64 {
	return c.speed
}

// SetSpeed changes the speed multiplier. The current time is kept, so the
// change never causes a jump.
func (c *Clock) SetSpeed(v float64) {
	now := c.Time()
	c.anchor = c.raw()
	c.base = now
	c.speed = v
}

// UseWorldTime reports whether the clock follows the pausable world time.
func (c *Clock) UseWorldTime() bool {
	return c.useWorld
}

// SetUseWorldTime switches the raw source between world and screen time.
// The current time is kept across the switch.
func (c *Clock) SetUseWorldTime(world bool) {
	if world == c.useWorld {
		return
	}
	now := c.Time()
	c.useWorld = world
	c.anchor = c.raw()
	c.base = now
}

// Offset returns the additive offset in time = raw*speed - offset.
func (c *Clock) Offset() float64 {
	return c.anchor*c.speed - c.base
}
