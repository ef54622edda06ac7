package engine

import "time"

// Clock provides the current time. Layers take a Clock instead of calling
// time.Now so time-driven choreography is deterministic under test
type Clock interface {
	Now() time.Time
}

// MonotonicClock provides the real system time with monotonic readings
type MonotonicClock struct{}

// NewMonotonicClock creates a real-time clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}
