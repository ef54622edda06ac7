package engine

import "time"

// FPSEstimator samples frame rate over a fixed window
type FPSEstimator struct {
	clock       Clock
	window      time.Duration
	windowStart time.Time
	frames      int
	fps         float64
}

// NewFPSEstimator creates an estimator with the given averaging window
func NewFPSEstimator(clock Clock, window time.Duration) *FPSEstimator {
	return &FPSEstimator{
		clock:       clock,
		window:      window,
		windowStart: clock.Now(),
	}
}

// Frame records one frame. It returns (fps, true) when a window closes,
// otherwise (0, false)
func (e *FPSEstimator) Frame() (float64, bool) {
	e.frames++
	now := e.clock.Now()
	elapsed := now.Sub(e.windowStart)
	if elapsed < e.window {
		return 0, false
	}
	e.fps = float64(e.frames) / elapsed.Seconds()
	e.frames = 0
	e.windowStart = now
	return e.fps, true
}

// FPS returns the most recent completed-window estimate
func (e *FPSEstimator) FPS() float64 {
	return e.fps
}
