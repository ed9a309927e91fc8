package world

import "time"

// FrameClock turns wall time between frames into a tick delta in milliseconds.
// Long frames (window drags, breakpoints) are clamped to maxMS so the
// simulation does not jump.
type FrameClock struct {
	now   func() time.Time
	last  time.Time
	maxMS uint64
}

// NewFrameClock starts a clock at now(). A nil now uses time.Now.
func NewFrameClock(maxMS uint64, now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{
		now:   now,
		last:  now(),
		maxMS: maxMS,
	}
}

// Delta returns the whole milliseconds since the previous call, never
// negative. The sub-millisecond remainder carries into the next call.
func (c *FrameClock) Delta() uint64 {
	t := c.now()
	elapsed := t.Sub(c.last)
	if elapsed < 0 {
		c.last = t
		return 0
	}

	ms := uint64(elapsed / time.Millisecond)
	if c.maxMS > 0 && ms > c.maxMS {
		c.last = t
		return c.maxMS
	}

	c.last = c.last.Add(time.Duration(ms) * time.Millisecond)
	return ms
}

// Reset restarts the clock so the next Delta ignores any paused time
func (c *FrameClock) Reset() {
	c.last = c.now()
}
