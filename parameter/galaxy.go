package parameter

// Galaxy point cloud
const (
	// GalaxyPointCount is the fixed number of cloud points, allocated once
	GalaxyPointCount = 4000

	// GalaxySpiralArms is the number of arms of the target spiral
	GalaxySpiralArms = 3

	// GalaxySpiralRadius is the outer radius of the spiral manifold (world units)
	GalaxySpiralRadius = 24.0

	// GalaxySpiralTwist is radians of arm rotation per unit radius
	GalaxySpiralTwist = 0.35

	// GalaxyThickness is the vertical half-extent of the disc (world units)
	GalaxyThickness = 1.2
)

// Big Bang choreography. The phase boundaries and blend formulas are exact;
// the renderer depends on visual continuity across them
const (
	// ExplosionDrag is the deceleration factor in pos = v*t*(1 - drag*t)
	ExplosionDrag = 0.1

	// FormationBlendStartSec is when the ballistic→spiral blend begins
	FormationBlendStartSec = 2.0

	// FormationBlendDurationSec spans blend fraction 0→1
	FormationBlendDurationSec = 4.0

	// ExplosionSpeedMin/Max bound the per-point radial launch speed (units/sec)
	ExplosionSpeedMin = 2.0
	ExplosionSpeedMax = 9.0

	// ColorApproachRate is the per-frame fraction moved toward the accent mix
	ColorApproachRate = 0.05

	// SingularityPulseHz is the idle core pulse frequency
	SingularityPulseHz = 1.2

	// SingularityBaseRadius is the idle core radius in cells
	SingularityBaseRadius = 2.0
)

// Steady state (after formation)
const (
	// SettlePullRate is the per-frame XZ pull back toward the spiral target
	SettlePullRate = 0.05

	// FloatAmplitude is the vertical sine amplitude (world units)
	FloatAmplitude = 0.4

	// FloatSpeed scales the per-point sine phase velocity (rad/sec)
	FloatSpeed = 1.5

	// PointerRepelRadius is the world-space pointer keep-out radius
	PointerRepelRadius = 4.0

	// PointerRepelStrength scales push per unit of (radius-dist)/radius
	PointerRepelStrength = 0.6

	// GalaxyPickRadius is the max screen-cell distance for color sampling
	GalaxyPickRadius = 2.0
)

// Camera
const (
	// CameraNearDistance is the camera distance at ignition
	CameraNearDistance = 6.0

	// CameraFarDistance is the resting distance after pull-back
	CameraFarDistance = 42.0

	// CameraPullbackSec is the linear near→far interpolation window
	CameraPullbackSec = 6.0

	// CameraFocalLength controls the perspective projection strength
	CameraFocalLength = 18.0
)

// Bloom
const (
	// BloomBase is the resting bloom intensity
	BloomBase = 0.35

	// BloomClickSpike is the target intensity set on click
	BloomClickSpike = 1.0

	// BloomSmoothRate is the per-frame exponential approach toward target
	BloomSmoothRate = 0.08

	// BloomDecayRate is the per-frame geometric decay of the spike target
	BloomDecayRate = 0.97
)
