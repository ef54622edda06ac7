package engine

import (
	"sort"
	"time"
)

// Timer is a deferred one-shot callback advanced by the frame tick.
// Unlike a goroutine-based time.AfterFunc it cannot fire after the owning
// layer is disposed: Cancel (or TimerSet.CancelAll) makes firing impossible
type Timer struct {
	deadline  time.Time
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel prevents the timer from firing. Safe after firing or disposal
func (t *Timer) Cancel() {
	t.cancelled = true
}

// Fired reports whether the callback has run
func (t *Timer) Fired() bool {
	return t.fired
}

// TimerSet owns pending deferred calls for one layer or controller.
// Tick and After must be called from the frame-tick call chain
type TimerSet struct {
	clock  Clock
	timers []*Timer
}

// NewTimerSet creates a timer set driven by the given clock
func NewTimerSet(clock Clock) *TimerSet {
	return &TimerSet{clock: clock}
}

// After schedules fn to run once d has elapsed, on a future Tick
func (s *TimerSet) After(d time.Duration, fn func()) *Timer {
	t := &Timer{
		deadline: s.clock.Now().Add(d),
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Tick fires all due, uncancelled timers in deadline order and drops
// finished entries. Callbacks may schedule further timers
func (s *TimerSet) Tick() {
	now := s.clock.Now()

	var due []*Timer
	remaining := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.cancelled:
			// drop
		case !t.deadline.After(now):
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.timers = remaining

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.fired = true
		t.fn()
	}
}

// Pending returns the number of scheduled, uncancelled timers
func (s *TimerSet) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll cancels every pending timer. Called on layer disposal so no
// callback can touch freed resources
func (s *TimerSet) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
}
