package galaxy

import (
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// Phase is the Big Bang choreography state. Transitions run strictly
// forward and never revert:
//
//	PhaseSingularity --Ignite()--> PhaseExplosion --blend=1--> PhaseComplete
type Phase int

const (
	// PhaseSingularity is the initial idle state: a single pulsing core,
	// no cloud update
	PhaseSingularity Phase = iota

	// PhaseExplosion runs the ballistic expansion and the spiral blend
	PhaseExplosion

	// PhaseComplete is terminal: steady-state float, pointer repulsion,
	// bloom smoothing
	PhaseComplete
)

// String returns the phase name for the HUD and logs
func (p Phase) String() string {
	switch p {
	case PhaseSingularity:
		return "Singularity"
	case PhaseExplosion:
		return "Explosion"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// BlendFraction maps explosion elapsed seconds to the ballistic→spiral
// blend weight. Zero until the blend start, then an ease-out cubic over
// the blend window; exactly 1 at and after start+duration. Non-decreasing
// in t
func BlendFraction(t float64) float64 {
	if t <= parameter.FormationBlendStartSec {
		return 0
	}
	raw := (t - parameter.FormationBlendStartSec) / parameter.FormationBlendDurationSec
	return vmath.EaseOutCubic(vmath.Clamp01(raw))
}

// BallisticPosition is the decelerating explosion path v*t*(1 - drag*t)
func BallisticPosition(vel vmath.Vec3, t float64) vmath.Vec3 {
	return vmath.V3Scale(vel, t*(1.0-parameter.ExplosionDrag*t))
}

// CameraDistance lerps near→far linearly over the pull-back window
func CameraDistance(t float64) float64 {
	frac := vmath.Clamp01(t / parameter.CameraPullbackSec)
	return vmath.Lerp(parameter.CameraNearDistance, parameter.CameraFarDistance, frac)
}
