package galaxy

import (
	"math"
	"math/rand"
	"time"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/engine"
	"github.com/ylc3000/galaxy/events"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// Layer owns the galaxy point cloud and its phase choreography. All
// methods run on the frame-tick call chain
type Layer struct {
	clock engine.Clock
	bus   *events.Bus
	cloud *Cloud

	phase      Phase
	phaseStart time.Time

	accentA colorspace.RGB
	accentB colorspace.RGB

	pointer       vmath.Vec2 // pointer on the disc plane (X,Z)
	pointerActive bool

	bloom       float64
	bloomTarget float64
	cameraDist  float64
	coreRadius  float64

	disposed bool
}

// New creates a galaxy layer with n cloud points. The rng seeds spiral
// targets and launch velocities; inject a fixed seed for determinism
func New(clock engine.Clock, bus *events.Bus, n int, rng *rand.Rand) *Layer {
	l := &Layer{
		clock:       clock,
		bus:         bus,
		cloud:       NewCloud(n, rng),
		phase:       PhaseSingularity,
		phaseStart:  clock.Now(),
		accentA:     colorspace.RGB{R: 255, G: 170, B: 60}, // warm core
		accentB:     colorspace.RGB{R: 90, G: 140, B: 255}, // cool rim
		bloom:       parameter.BloomBase,
		bloomTarget: parameter.BloomBase,
		cameraDist:  parameter.CameraNearDistance,
		coreRadius:  parameter.SingularityBaseRadius,
	}
	return l
}

// Cloud exposes the point buffer read-only for rendering
func (l *Layer) Cloud() *Cloud {
	return l.cloud
}

// Phase returns the current choreography phase
func (l *Layer) Phase() Phase {
	return l.phase
}

// CameraDist returns the current camera distance for projection
func (l *Layer) CameraDist() float64 {
	return l.cameraDist
}

// Bloom returns the current smoothed bloom intensity
func (l *Layer) Bloom() float64 {
	return l.bloom
}

// CoreRadius returns the singularity core radius in cells
func (l *Layer) CoreRadius() float64 {
	return l.coreRadius
}

// SetAccents overrides the two accent colors the cloud converges toward
func (l *Layer) SetAccents(a, b colorspace.RGB) {
	l.accentA = a
	l.accentB = b
}

// SetPointer positions the pointer on the disc plane for repulsion
func (l *Layer) SetPointer(x, z float64) {
	l.pointer = vmath.Vec2{X: x, Y: z}
	l.pointerActive = true
}

// ClearPointer disables pointer repulsion
func (l *Layer) ClearPointer() {
	l.pointerActive = false
}

// Ignite triggers the explosion. Only valid from the singularity; later
// calls are no-ops so the phase machine never runs backward
func (l *Layer) Ignite() {
	if l.phase != PhaseSingularity {
		return
	}
	l.phase = PhaseExplosion
	l.phaseStart = l.clock.Now()
}

// PulseBloom spikes the bloom target; it decays back over later frames
func (l *Layer) PulseBloom(strength float64) {
	if strength > l.bloomTarget {
		l.bloomTarget = strength
	}
}

// Sample returns the color observation for cloud point i
func (l *Layer) Sample(i int) colorspace.Sample {
	return colorspace.NewSample(l.cloud.Color[i])
}

// Update advances the choreography one frame
func (l *Layer) Update() {
	if l.disposed {
		return
	}
	now := l.clock.Now()
	elapsed := now.Sub(l.phaseStart).Seconds()

	switch l.phase {
	case PhaseSingularity:
		l.updateSingularity(elapsed)
	case PhaseExplosion:
		l.updateExplosion(elapsed)
	case PhaseComplete:
		l.updateSteadyState(elapsed)
	}
}

func (l *Layer) updateSingularity(elapsed float64) {
	pulse := math.Sin(2 * math.Pi * parameter.SingularityPulseHz * elapsed)
	l.coreRadius = parameter.SingularityBaseRadius * (1.0 + 0.25*pulse)
}

func (l *Layer) updateExplosion(t float64) {
	blend := BlendFraction(t)
	c := l.cloud

	for i := 0; i < c.N; i++ {
		ballistic := BallisticPosition(c.Vel[i], t)
		c.Pos[i] = vmath.V3Lerp(ballistic, c.Target[i], blend)
		l.approachAccent(i)
	}

	l.cameraDist = CameraDistance(t)

	if blend >= 1.0 {
		// All points share t, so every blend hits 1 in the same frame.
		// Terminal transition, entered exactly once
		l.phase = PhaseComplete
		l.phaseStart = l.clock.Now()
		l.bus.Publish(events.Event{
			Type:    events.EventFormationComplete,
			Payload: &events.FormationCompletePayload{Elapsed: time.Duration(t * float64(time.Second))},
		})
	}
}

func (l *Layer) updateSteadyState(t float64) {
	c := l.cloud

	for i := 0; i < c.N; i++ {
		target := c.Target[i]
		pos := c.Pos[i]

		pos.Y = target.Y + parameter.FloatAmplitude*math.Sin(parameter.FloatSpeed*t+c.Seed[i])

		repelled := false
		if l.pointerActive {
			dx := pos.X - l.pointer.X
			dz := pos.Z - l.pointer.Y
			dist := math.Sqrt(dx*dx + dz*dz)
			if dist < parameter.PointerRepelRadius && dist > 0 {
				push := (parameter.PointerRepelRadius - dist) / parameter.PointerRepelRadius *
					parameter.PointerRepelStrength
				pos.X += dx / dist * push
				pos.Z += dz / dist * push
				repelled = true
			}
		}
		if !repelled {
			pos.X = vmath.ExpApproach(pos.X, target.X, parameter.SettlePullRate)
			pos.Z = vmath.ExpApproach(pos.Z, target.Z, parameter.SettlePullRate)
		}

		c.Pos[i] = pos
		l.approachAccent(i)
	}

	l.bloomTarget = parameter.BloomBase + (l.bloomTarget-parameter.BloomBase)*parameter.BloomDecayRate
	l.bloom = vmath.ExpApproach(l.bloom, l.bloomTarget, parameter.BloomSmoothRate)
}

// approachAccent moves a point's color a fixed fraction per frame toward
// a radius-dependent mix of the two accent colors
func (l *Layer) approachAccent(i int) {
	c := l.cloud
	mix := vmath.Clamp01(c.TargetRadius(i) / parameter.GalaxySpiralRadius)
	goal := l.accentA.Blend(l.accentB, mix)

	cur := c.Color[i]
	c.Color[i] = colorspace.RGB{
		R: stepChannel(cur.R, goal.R),
		G: stepChannel(cur.G, goal.G),
		B: stepChannel(cur.B, goal.B),
	}
}

// stepChannel moves one 8-bit channel ColorApproachRate of the way to
// goal, always at least one step so it terminates at the goal exactly
func stepChannel(cur, goal uint8) uint8 {
	diff := float64(goal) - float64(cur)
	if diff == 0 {
		return cur
	}
	step := diff * parameter.ColorApproachRate
	if step > 0 && step < 1 {
		step = 1
	} else if step < 0 && step > -1 {
		step = -1
	}
	return uint8(float64(cur) + step)
}

// Dispose releases the cloud buffers. Double-dispose is a no-op
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.cloud = nil
}
