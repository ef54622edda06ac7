package swarm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ylc3000/galaxy/events"
	"github.com/ylc3000/galaxy/parameter"
)

func newTestLayer(n int) (*Layer, *events.Bus) {
	bus := events.NewBus()
	rng := rand.New(rand.NewSource(3))
	return New(bus, n, 120, 40, rng), bus
}

func dist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

func TestConvergenceWithoutPointer(t *testing.T) {
	l, _ := newTestLayer(30)

	prev := make([]float64, len(l.Particles()))
	for i, p := range l.Particles() {
		prev[i] = dist(p.Pos.X, p.Pos.Y, p.Target.X, p.Target.Y)
	}

	for frame := 0; frame < 120; frame++ {
		l.Update()
		for i, p := range l.Particles() {
			d := dist(p.Pos.X, p.Pos.Y, p.Target.X, p.Target.Y)
			if prev[i] > 1e-12 && d >= prev[i] {
				t.Fatalf("particle %d distance did not strictly decrease at frame %d: %v >= %v",
					i, frame, d, prev[i])
			}
			prev[i] = d
		}
	}
}

func TestRadiusConvergesToBase(t *testing.T) {
	l, _ := newTestLayer(10)

	// Inflate radii via pointer influence, then remove the pointer
	p0 := &l.particles[0]
	l.SetPointer(p0.Pos.X+1, p0.Pos.Y)
	for i := 0; i < 5; i++ {
		l.Update()
	}
	l.ClearPointer()
	for i := 0; i < 300; i++ {
		l.Update()
	}

	for i, p := range l.Particles() {
		if math.Abs(p.Radius-p.BaseRadius) > 0.01 {
			t.Errorf("particle %d radius %v did not converge to base %v", i, p.Radius, p.BaseRadius)
		}
		if p.Glow > 0.01 {
			t.Errorf("particle %d glow %v did not decay", i, p.Glow)
		}
	}
}

func TestPointerInfluenceGrowsAndGlows(t *testing.T) {
	l, _ := newTestLayer(10)
	for i := 0; i < 200; i++ {
		l.Update()
	}

	p := &l.particles[0]
	l.SetPointer(p.Pos.X+2, p.Pos.Y)
	l.Update()

	if p.TargetRadius <= p.BaseRadius {
		t.Errorf("target radius %v did not grow above base %v under influence", p.TargetRadius, p.BaseRadius)
	}
	if p.Glow <= 0 {
		t.Errorf("glow %v did not rise under influence", p.Glow)
	}
}

func TestPointerRepulsionPushesAway(t *testing.T) {
	l, _ := newTestLayer(10)
	for i := 0; i < 200; i++ {
		l.Update()
	}

	p := &l.particles[0]
	px := p.Pos.X + 1.0
	py := p.Pos.Y
	l.SetPointer(px, py)

	before := dist(p.Pos.X, p.Pos.Y, px, py)
	l.Update()
	after := dist(p.Pos.X, p.Pos.Y, px, py)

	if after <= before {
		t.Errorf("pointer repulsion did not push particle away: %v -> %v", before, after)
	}
}

func TestSyncExitSnapsToNewTargets(t *testing.T) {
	l, _ := newTestLayer(25)
	l.SetPointer(10, 10)
	l.SetMode(ModeSync)
	for i := 0; i < 30; i++ {
		l.Update()
	}

	l.SetMode(ModeWheel)
	for i, p := range l.Particles() {
		if p.Pos != p.Target {
			t.Fatalf("particle %d not snapped on sync exit: pos %+v target %+v", i, p.Pos, p.Target)
		}
	}
}

func TestNonSyncModeSwitchKeepsPosition(t *testing.T) {
	l, _ := newTestLayer(25)
	for i := 0; i < 30; i++ {
		l.Update()
	}

	before := make([]Particle, len(l.particles))
	copy(before, l.particles)

	l.SetMode(ModeRing)
	for i, p := range l.Particles() {
		if p.Pos != before[i].Pos {
			t.Fatalf("particle %d position jumped on spectrum→ring switch", i)
		}
	}
}

func TestSetModeRecomputesTargets(t *testing.T) {
	l, _ := newTestLayer(25)
	l.SetMode(ModeRing)

	cx := 120.0 / 2
	cy := 40.0 / 2
	wantR := math.Min(120, 40) * parameter.RingRadiusFraction
	for i, p := range l.Particles() {
		r := dist(p.Target.X, p.Target.Y, cx, cy)
		if math.Abs(r-wantR) > 1e-9 {
			t.Errorf("particle %d ring target radius %v, want %v", i, r, wantR)
		}
	}
}

func TestCycleModeWraps(t *testing.T) {
	l, _ := newTestLayer(5)
	seen := map[LayoutMode]bool{l.Mode(): true}
	for i := 0; i < int(ModeCount); i++ {
		seen[l.CycleMode()] = true
	}
	if len(seen) != int(ModeCount) {
		t.Errorf("cycling visited %d modes, want %d", len(seen), ModeCount)
	}
	if l.Mode() != ModeSpectrum {
		t.Errorf("full cycle ended at %v, want Spectrum", l.Mode())
	}
}

func TestCubeGrowthKeepOut(t *testing.T) {
	l, bus := newTestLayer(40)
	for i := 0; i < 200; i++ {
		l.Update()
	}

	bus.Publish(events.Event{
		Type:    events.EventCubeGrowth,
		Payload: &events.CubeGrowthPayload{Progress: 1, Scale: 1, RepulsionRadius: 8},
	})
	for i := 0; i < 60; i++ {
		l.Update()
	}

	cx := 120.0 / 2
	cy := 40.0 / 2
	for i, p := range l.Particles() {
		if d := dist(p.Pos.X, p.Pos.Y, cx, cy); d < 8-1e-9 {
			t.Errorf("particle %d inside cube keep-out: %v < 8", i, d)
		}
	}
}

func TestDisposeUnsubscribes(t *testing.T) {
	l, bus := newTestLayer(5)
	if bus.SubscriberCount(events.EventCubeGrowth) != 1 {
		t.Fatalf("expected growth subscription")
	}
	l.Dispose()
	l.Dispose()
	if bus.SubscriberCount(events.EventCubeGrowth) != 0 {
		t.Errorf("subscription leaked after dispose")
	}
	l.Update() // must not panic
}
