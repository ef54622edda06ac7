package parameter

import "time"

// Frame timing
const (
	// TargetFPS is the frame scheduling rate
	TargetFPS = 30

	// FrameInterval is the tick period derived from TargetFPS
	FrameInterval = time.Second / TargetFPS

	// FPSSampleWindow is the averaging window for the FPS estimate
	FPSSampleWindow = time.Second
)
