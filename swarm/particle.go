package swarm

import (
	"math/rand"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// Particle is one 2D swarm point. Position is in screen cell space.
// Color is intrinsic (HSL) and drives the layout mapping
type Particle struct {
	H float64 // degrees [0,360)
	S float64 // [0,1]
	L float64 // [0,1]

	Pos    vmath.Vec2
	Target vmath.Vec2

	BaseRadius   float64
	Radius       float64
	TargetRadius float64

	Glow float64 // [0,1]
}

// newParticle seeds a particle with a random vibrant color and a random
// position inside the screen
func newParticle(rng *rand.Rand, width, height int) Particle {
	c := colorspace.RandomVibrant(rng)
	h, s, l := colorspace.RGBToHSL(c)
	base := parameter.SwarmBaseRadiusMin +
		rng.Float64()*(parameter.SwarmBaseRadiusMax-parameter.SwarmBaseRadiusMin)

	pos := vmath.Vec2{
		X: rng.Float64() * float64(width),
		Y: rng.Float64() * float64(height),
	}
	return Particle{
		H:            h,
		S:            s,
		L:            l,
		Pos:          pos,
		Target:       pos,
		BaseRadius:   base,
		Radius:       base,
		TargetRadius: base,
	}
}

// Color returns the particle's intrinsic color as 8-bit RGB
func (p *Particle) Color() colorspace.RGB {
	return colorspace.HSLToRGB(p.H, p.S, p.L)
}
