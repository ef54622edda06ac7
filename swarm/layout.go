package swarm

import (
	"math"

	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// LayoutMode selects the function mapping a particle's intrinsic HSL to
// its screen target
type LayoutMode int

const (
	// ModeSpectrum maps hue to x and lightness to y linearly
	ModeSpectrum LayoutMode = iota

	// ModeWheel maps hue to angle and saturation to radius
	ModeWheel

	// ModeRing places all particles on a fixed-radius ring by hue
	ModeRing

	// ModeSync orbits particles around the pointer
	ModeSync

	// ModeCount bounds the enum for cycling
	ModeCount
)

// String returns the mode name for the HUD
func (m LayoutMode) String() string {
	switch m {
	case ModeSpectrum:
		return "Spectrum"
	case ModeWheel:
		return "Wheel"
	case ModeRing:
		return "Ring"
	case ModeSync:
		return "Sync"
	default:
		return "Unknown"
	}
}

// layoutTarget computes one particle's target under the given mode.
// pointer is only consulted in ModeSync
func layoutTarget(p *Particle, mode LayoutMode, width, height int, pointer vmath.Vec2) vmath.Vec2 {
	w := float64(width)
	h := float64(height)
	cx := w / 2
	cy := h / 2
	minDim := math.Min(w, h)
	angle := p.H / 360.0 * 2 * math.Pi

	switch mode {
	case ModeWheel:
		r := p.S * minDim * parameter.WheelRadiusFraction
		return vmath.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}

	case ModeRing:
		r := minDim * parameter.RingRadiusFraction
		return vmath.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}

	case ModeSync:
		r := parameter.SyncRadiusMin + p.S*(parameter.SyncRadiusMax-parameter.SyncRadiusMin)
		return vmath.Vec2{X: pointer.X + r*math.Cos(angle), Y: pointer.Y + r*math.Sin(angle)}

	default: // ModeSpectrum
		return vmath.Vec2{X: p.H / 360.0 * w, Y: (1.0 - p.L) * h}
	}
}
