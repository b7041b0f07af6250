package stage

import "time"

// Clock tracks animation time for the stage. Time is derived from the wall
// clock on every Update, so dropped frames never slow the animation down.
type Clock struct {
	StartTime time.Time

	now      func() time.Time
	elapsed  float64 // seconds, as of the last Update
	pausedAt time.Time
	idle     time.Duration // total time spent paused
}

// NewClock creates a clock starting now.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock that reads time from now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{
		StartTime: now(),
		now:       now,
	}
}

// Update recomputes the elapsed animation time. It is a no-op while paused.
func (c *Clock) Update() {
	if c.Paused() {
		return
	}
	c.elapsed = c.now().Sub(c.StartTime).Seconds() - c.idle.Seconds()
}

// Seconds returns the animation time as of the last Update.
func (c *Clock) Seconds() float64 {
	return c.elapsed
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return !c.pausedAt.IsZero()
}

// Pause freezes animation time.
func (c *Clock) Pause() {
	if c.Paused() {
		return
	}
	c.Update()
	c.pausedAt = c.now()
}

// Resume continues from where Pause stopped, excluding the paused interval.
func (c *Clock) Resume() {
	if !c.Paused() {
		return
	}
	c.idle += c.now().Sub(c.pausedAt)
	c.pausedAt = time.Time{}
	c.Update()
}

// Toggle flips between paused and running and returns the new paused state.
func (c *Clock) Toggle() bool {
	if c.Paused() {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.Paused()
}
