package swarm

import (
	"math"
	"math/rand"

	"github.com/ylc3000/galaxy/events"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// Layer owns the 2D particle swarm. All methods run on the frame-tick
// call chain
type Layer struct {
	bus       *events.Bus
	particles []Particle
	mode      LayoutMode

	width  int
	height int

	pointer       vmath.Vec2
	pointerActive bool

	// keep-out zone around the screen center, driven by cube growth
	cubeRepelRadius float64
	growthSub       events.Subscription

	disposed bool
}

// New creates a swarm layer with n particles scattered across the screen.
// The layer subscribes to cube growth so particles clear the cube's area
func New(bus *events.Bus, n, width, height int, rng *rand.Rand) *Layer {
	l := &Layer{
		bus:       bus,
		particles: make([]Particle, n),
		mode:      ModeSpectrum,
		width:     width,
		height:    height,
	}
	for i := range l.particles {
		l.particles[i] = newParticle(rng, width, height)
	}
	l.retarget()

	l.growthSub = bus.Subscribe(events.EventCubeGrowth, func(ev events.Event) {
		p := ev.Payload.(*events.CubeGrowthPayload)
		l.cubeRepelRadius = p.RepulsionRadius
	})
	return l
}

// Particles exposes the particle buffer read-only for rendering
func (l *Layer) Particles() []Particle {
	return l.particles
}

// Mode returns the active layout mode
func (l *Layer) Mode() LayoutMode {
	return l.mode
}

// SetPointer positions the pointer in screen cell space
func (l *Layer) SetPointer(x, y float64) {
	l.pointer = vmath.Vec2{X: x, Y: y}
	l.pointerActive = true
	if l.mode == ModeSync {
		l.retarget()
	}
}

// ClearPointer disables pointer influence
func (l *Layer) ClearPointer() {
	l.pointerActive = false
}

// SetMode switches the layout and recomputes all targets immediately.
// Leaving Sync snaps every particle straight onto its new target so none
// are stranded around the last pointer position
func (l *Layer) SetMode(mode LayoutMode) {
	if mode == l.mode {
		return
	}
	leavingSync := l.mode == ModeSync
	l.mode = mode
	l.retarget()
	if leavingSync {
		for i := range l.particles {
			l.particles[i].Pos = l.particles[i].Target
		}
	}
}

// CycleMode advances to the next layout mode and returns it
func (l *Layer) CycleMode() LayoutMode {
	l.SetMode((l.mode + 1) % ModeCount)
	return l.mode
}

// Resize updates screen dimensions and recomputes targets
func (l *Layer) Resize(width, height int) {
	l.width = width
	l.height = height
	l.retarget()
}

func (l *Layer) retarget() {
	for i := range l.particles {
		p := &l.particles[i]
		p.Target = layoutTarget(p, l.mode, l.width, l.height, l.pointer)
	}
}

// Update advances every particle one frame
func (l *Layer) Update() {
	if l.disposed {
		return
	}
	for i := range l.particles {
		l.updateParticle(&l.particles[i])
	}
}

func (l *Layer) updateParticle(p *Particle) {
	// Exponential approach toward the layout target
	p.Pos.X = vmath.ExpApproach(p.Pos.X, p.Target.X, parameter.SwarmEaseFactor)
	p.Pos.Y = vmath.ExpApproach(p.Pos.Y, p.Target.Y, parameter.SwarmEaseFactor)

	influenced := false
	if l.pointerActive {
		dx := p.Pos.X - l.pointer.X
		dy := p.Pos.Y - l.pointer.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < parameter.MouseInfluenceRadius {
			influence := 1.0 - dist/parameter.MouseInfluenceRadius
			p.TargetRadius = p.BaseRadius * (1.0 + influence*(parameter.MouseScaleMultiplier-1.0))
			if g := influence * parameter.GlowInfluenceScale; g > p.Glow {
				p.Glow = g
			}
			if dist > 0 {
				push := parameter.MouseRepulsionForce * influence
				p.Pos.X += dx / dist * push
				p.Pos.Y += dy / dist * push
			}
			influenced = true
		}
	}
	if !influenced {
		p.TargetRadius = p.BaseRadius
		p.Glow *= parameter.GlowDecayRate
	}

	// The grown cube claims the screen center; keep particles outside it
	if l.cubeRepelRadius > 0 {
		cx := float64(l.width) / 2
		cy := float64(l.height) / 2
		dx := p.Pos.X - cx
		dy := p.Pos.Y - cy
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 0 && dist < l.cubeRepelRadius {
			p.Pos.X = cx + dx/dist*l.cubeRepelRadius
			p.Pos.Y = cy + dy/dist*l.cubeRepelRadius
		}
	}

	p.Radius = vmath.ExpApproach(p.Radius, p.TargetRadius, parameter.SwarmRadiusEase)
}

// Dispose releases the particle buffer and bus subscription. Double
// dispose is a no-op
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.bus.Unsubscribe(l.growthSub)
	l.particles = nil
}
