package parameter

// Swarm particle layer
const (
	// SwarmParticleCount is the number of 2D particles created at init
	SwarmParticleCount = 180

	// SwarmEaseFactor is the per-frame fraction of the remaining distance
	// a particle covers toward its target position
	SwarmEaseFactor = 0.08

	// SwarmRadiusEase is the per-frame fraction the displayed radius moves
	// toward the target radius (prevents visual popping)
	SwarmRadiusEase = 0.15

	// SwarmBaseRadiusMin/Max bound the per-particle base radius in cells
	SwarmBaseRadiusMin = 0.6
	SwarmBaseRadiusMax = 1.8
)

// Pointer influence
const (
	// MouseInfluenceRadius is the pointer influence radius in cells
	MouseInfluenceRadius = 9.0

	// MouseScaleMultiplier is the max radius multiplier at zero distance
	MouseScaleMultiplier = 2.5

	// MouseRepulsionForce is the per-frame push in cells at full influence
	MouseRepulsionForce = 1.6

	// GlowInfluenceScale maps influence to glow intensity
	GlowInfluenceScale = 0.8

	// GlowDecayRate is the per-frame geometric glow decay outside influence
	GlowDecayRate = 0.9
)

// Layouts
const (
	// WheelRadiusFraction scales the wheel layout radius relative to the
	// smaller screen dimension
	WheelRadiusFraction = 0.38

	// RingRadiusFraction scales the fixed ring layout radius
	RingRadiusFraction = 0.3

	// SyncRadiusMin/Max bound the pointer-centered sync orbit radii in cells
	SyncRadiusMin = 3.0
	SyncRadiusMax = 12.0
)
