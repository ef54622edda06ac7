package parameter

import "time"

// Color cube
const (
	// CubeSize is the cube edge length in world units
	CubeSize = 10.0

	// CubeGrowthDuration spans growth progress 0→1
	CubeGrowthDuration = 2 * time.Second

	// CubeMaxScale is the uniform scale at full growth
	CubeMaxScale = 1.0

	// CubePickRadius is the screen-cell radius for pointer picking
	CubePickRadius = 2.0

	// CubeRepulsionScale derives the swarm keep-out radius from the
	// cube's current scaled half-extent
	CubeRepulsionScale = 1.4
)

// GrowthStartDelay is the pause between formation completing and the
// cube growth sequence starting
const GrowthStartDelay = 3 * time.Second
