package cube

import (
	"time"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/engine"
	"github.com/ylc3000/galaxy/events"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// Layer owns the color cube visualization: the sample set, the per-space
// layout positions, and the growth animation. All methods run on the
// frame-tick call chain
type Layer struct {
	clock engine.Clock
	bus   *events.Bus

	active bool
	space  ColorSpace

	samples   []colorspace.Sample
	positions []vmath.Vec3

	growing     bool
	growthStart time.Time
	progress    float64 // eased, [0,1]
	scale       float64
	done        bool

	sampleSub events.Subscription
	disposed  bool
}

// New creates a hidden, ungrown cube layer. It accumulates every color
// sampled from the galaxy
func New(clock engine.Clock, bus *events.Bus) *Layer {
	l := &Layer{
		clock: clock,
		bus:   bus,
		space: SpaceRGB,
	}
	l.sampleSub = bus.Subscribe(events.EventColorSampled, func(ev events.Event) {
		p := ev.Payload.(*events.ColorSampledPayload)
		l.AddSample(p.Sample)
	})
	return l
}

// Active reports whether the cube is shown
func (l *Layer) Active() bool {
	return l.active
}

// Space returns the current layout color space
func (l *Layer) Space() ColorSpace {
	return l.space
}

// Progress returns the eased growth progress in [0,1]
func (l *Layer) Progress() float64 {
	return l.progress
}

// Scale returns the current uniform scale
func (l *Layer) Scale() float64 {
	return l.scale
}

// Samples exposes the displayed sample set read-only
func (l *Layer) Samples() []colorspace.Sample {
	return l.samples
}

// Positions exposes the laid-out cube positions read-only; index-aligned
// with Samples
func (l *Layer) Positions() []vmath.Vec3 {
	return l.positions
}

// Show makes the cube visible and starts the growth animation from zero
func (l *Layer) Show() {
	if l.active {
		return
	}
	l.active = true
	l.growing = true
	l.growthStart = l.clock.Now()
	l.progress = 0
	l.scale = 0
	l.done = false
}

// Hide collapses the cube; a later Show restarts growth
func (l *Layer) Hide() {
	l.active = false
	l.growing = false
	l.progress = 0
	l.scale = 0
}

// SetSpace switches the layout model and recomputes every position
func (l *Layer) SetSpace(space ColorSpace) {
	if space == l.space {
		return
	}
	l.space = space
	l.relayout()
}

// CycleSpace advances to the next color space and returns it
func (l *Layer) CycleSpace() ColorSpace {
	l.SetSpace((l.space + 1) % SpaceCount)
	return l.space
}

// SetSamples replaces the displayed color set and lays it out
func (l *Layer) SetSamples(samples []colorspace.Sample) {
	l.samples = append(l.samples[:0], samples...)
	l.relayout()
}

// AddSample appends one color and lays it out under the current space
func (l *Layer) AddSample(s colorspace.Sample) {
	l.samples = append(l.samples, s)
	l.positions = append(l.positions, Position(l.space, s))
}

func (l *Layer) relayout() {
	l.positions = l.positions[:0]
	for _, s := range l.samples {
		l.positions = append(l.positions, Position(l.space, s))
	}
}

// Update advances the growth animation one frame. Publishes growth state
// on every animating tick and the completion notification exactly once
func (l *Layer) Update() {
	if l.disposed || !l.growing {
		return
	}

	elapsed := l.clock.Now().Sub(l.growthStart)
	raw := vmath.Clamp01(elapsed.Seconds() / parameter.CubeGrowthDuration.Seconds())
	l.progress = vmath.EaseInOutQuartic(raw)
	l.scale = l.progress * parameter.CubeMaxScale

	l.bus.Publish(events.Event{
		Type: events.EventCubeGrowth,
		Payload: &events.CubeGrowthPayload{
			Progress:        l.progress,
			Scale:           l.scale,
			RepulsionRadius: l.RepulsionRadius(),
		},
	})

	if raw >= 1.0 && !l.done {
		l.done = true
		l.growing = false
		l.bus.Publish(events.Event{Type: events.EventCubeGrowthComplete})
	}
}

// RepulsionRadius derives the swarm keep-out radius from the current
// scaled half-extent
func (l *Layer) RepulsionRadius() float64 {
	return l.scale * parameter.CubeSize / 2 * parameter.CubeRepulsionScale
}

// Pick returns the index of the sample nearest the pointer within the
// pick radius, using the caller's projection to screen space. Returns
// (-1, false) when nothing is close enough or the cube is hidden
func (l *Layer) Pick(px, py float64, project func(vmath.Vec3) (float64, float64, bool)) (int, bool) {
	if !l.active {
		return -1, false
	}
	best := -1
	bestDist := parameter.CubePickRadius
	for i, pos := range l.positions {
		sx, sy, visible := project(vmath.V3Scale(pos, l.scale))
		if !visible {
			continue
		}
		d := vmath.V2Dist(vmath.Vec2{X: sx, Y: sy}, vmath.Vec2{X: px, Y: py})
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// Dispose releases buffers and the bus subscription. Double dispose is a
// no-op
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.bus.Unsubscribe(l.sampleSub)
	l.samples = nil
	l.positions = nil
}
