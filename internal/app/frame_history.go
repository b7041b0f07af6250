package app

import "time"

// FrameRing is a circular buffer of recent frame intervals.
type FrameRing struct {
	buf   []time.Duration
	pos   int
	count int
}

// NewFrameRing creates a new circular buffer with the given capacity.
func NewFrameRing(capacity int) *FrameRing {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameRing{
		buf: make([]time.Duration, capacity),
	}
}

// Push adds an interval to the ring buffer.
func (r *FrameRing) Push(d time.Duration) {
	r.buf[r.pos] = d
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored intervals in chronological order.
func (r *FrameRing) Values() []time.Duration {
	if r.count == 0 {
		return nil
	}
	result := make([]time.Duration, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Len returns the number of stored intervals.
func (r *FrameRing) Len() int {
	return r.count
}

// FPS returns the mean frame rate over the stored intervals, or 0 if empty.
func (r *FrameRing) FPS() float64 {
	var total time.Duration
	for _, d := range r.buf[:min(r.count, len(r.buf))] {
		total += d
	}
	if r.count == 0 || total <= 0 {
		return 0
	}
	return float64(r.count) / total.Seconds()
}
