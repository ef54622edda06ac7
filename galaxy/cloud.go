package galaxy

import (
	"math"
	"math/rand"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// Cloud is the galaxy point buffer, structure-of-arrays. It is allocated
// once at layer construction and never resized. Pos and Color are mutated
// by the per-frame update; Target and Vel are immutable after construction.
// The renderer receives the cloud read-only
type Cloud struct {
	N int

	Pos    []vmath.Vec3 // current position
	Target []vmath.Vec3 // final spiral position, fixed
	Vel    []vmath.Vec3 // explosion velocity, fixed

	Color []colorspace.RGB // current color, mutated toward accent mix
	Size  []float64        // display size, fixed
	Seed  []float64        // per-point sine phase offset, fixed
}

// NewCloud builds N points with spiral targets and ballistic launch
// velocities. All points start at the origin (the singularity)
func NewCloud(n int, rng *rand.Rand) *Cloud {
	c := &Cloud{
		N:      n,
		Pos:    make([]vmath.Vec3, n),
		Target: make([]vmath.Vec3, n),
		Vel:    make([]vmath.Vec3, n),
		Color:  make([]colorspace.RGB, n),
		Size:   make([]float64, n),
		Seed:   make([]float64, n),
	}

	for i := 0; i < n; i++ {
		c.Target[i] = spiralPoint(i, rng)
		c.Vel[i] = launchVelocity(rng)
		c.Size[i] = 0.5 + rng.Float64()
		c.Seed[i] = rng.Float64() * 2 * math.Pi
		c.Color[i] = colorspace.RGBWhite
	}
	return c
}

// spiralPoint places point i on one of the spiral arms. sqrt of a uniform
// keeps area density even; vertical spread thins toward the rim
func spiralPoint(i int, rng *rand.Rand) vmath.Vec3 {
	arm := i % parameter.GalaxySpiralArms
	r := parameter.GalaxySpiralRadius * math.Sqrt(rng.Float64())

	angle := float64(arm)*(2*math.Pi/parameter.GalaxySpiralArms) +
		r*parameter.GalaxySpiralTwist +
		(rng.Float64()-0.5)*0.4

	spread := parameter.GalaxyThickness * (1.0 - r/parameter.GalaxySpiralRadius)
	return vmath.Vec3{
		X: r * math.Cos(angle),
		Y: (rng.Float64() - 0.5) * 2 * spread,
		Z: r * math.Sin(angle),
	}
}

// launchVelocity is a random outward direction, flattened toward the disc
// plane, at a random speed
func launchVelocity(rng *rand.Rand) vmath.Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	dir := vmath.V3Normalize(vmath.Vec3{
		X: math.Cos(theta),
		Y: (rng.Float64() - 0.5) * 0.6,
		Z: math.Sin(theta),
	})
	speed := parameter.ExplosionSpeedMin +
		rng.Float64()*(parameter.ExplosionSpeedMax-parameter.ExplosionSpeedMin)
	return vmath.V3Scale(dir, speed)
}

// TargetRadius returns the XZ distance of a point's spiral target from
// the galactic center, used to mix the accent colors
func (c *Cloud) TargetRadius(i int) float64 {
	t := c.Target[i]
	return math.Sqrt(t.X*t.X + t.Z*t.Z)
}
