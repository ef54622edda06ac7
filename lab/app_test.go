package lab

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ylc3000/galaxy/engine"
	"github.com/ylc3000/galaxy/events"
	"github.com/ylc3000/galaxy/galaxy"
	"github.com/ylc3000/galaxy/palette"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/swarm"
)

func newTestApp(t *testing.T) (*App, *engine.MockClock) {
	t.Helper()
	clk := engine.NewMockClock(time.Unix(1000, 0))
	a := New(Config{
		Width:        120,
		Height:       40,
		GalaxyPoints: 300,
		SwarmCount:   40,
		CachePath:    filepath.Join(t.TempDir(), "palette.json"),
		Source:       clk,
		Rand:         rand.New(rand.NewSource(7)),
	})
	t.Cleanup(a.Dispose)
	return a, clk
}

// advanceFrames steps demo time and ticks once per frame interval
func advanceFrames(a *App, clk *engine.MockClock, n int) {
	for i := 0; i < n; i++ {
		clk.Advance(parameter.FrameInterval)
		a.Tick()
	}
}

func framesFor(d time.Duration) int {
	return int(d/parameter.FrameInterval) + 2
}

func TestFirstClickIgnites(t *testing.T) {
	a, _ := newTestApp(t)

	if a.Galaxy().Phase() != galaxy.PhaseSingularity {
		t.Fatalf("initial phase = %v", a.Galaxy().Phase())
	}
	a.Click(60, 20)
	if a.Galaxy().Phase() != galaxy.PhaseExplosion {
		t.Errorf("phase after click = %v, want explosion", a.Galaxy().Phase())
	}
	if a.Palette().Len() != 0 {
		t.Errorf("ignition click sampled a color")
	}
}

func TestFormationSchedulesCubeGrowth(t *testing.T) {
	a, clk := newTestApp(t)
	a.Click(60, 20)

	formSec := parameter.FormationBlendStartSec + parameter.FormationBlendDurationSec
	advanceFrames(a, clk, framesFor(time.Duration(formSec*float64(time.Second))))

	if a.Galaxy().Phase() != galaxy.PhaseComplete {
		t.Fatalf("phase = %v, want complete", a.Galaxy().Phase())
	}
	if a.Cube().Active() {
		t.Fatal("cube shown before the growth delay elapsed")
	}

	advanceFrames(a, clk, framesFor(parameter.GrowthStartDelay))
	if !a.Cube().Active() {
		t.Fatal("cube not shown after the growth delay")
	}

	advanceFrames(a, clk, framesFor(parameter.CubeGrowthDuration))
	if a.Cube().Progress() != 1.0 {
		t.Errorf("cube growth progress = %v, want 1", a.Cube().Progress())
	}
}

func TestClickSamplesColorIntoPaletteAndCube(t *testing.T) {
	a, clk := newTestApp(t)
	a.Click(60, 20)
	advanceFrames(a, clk, framesFor(6*time.Second))

	// Aim exactly at a known cloud point so the pick cannot miss
	a.Camera().Distance = a.Galaxy().CameraDist()
	sx, sy, _, ok := a.Camera().Project(a.Galaxy().Cloud().Pos[0])
	if !ok {
		t.Fatal("cloud point 0 not visible")
	}

	var sampled int
	a.Bus().Subscribe(events.EventColorSampled, func(events.Event) { sampled++ })

	a.Click(int(sx), int(sy))

	if sampled != 1 {
		t.Fatalf("color sampled %d times, want 1", sampled)
	}
	if a.Palette().Len() != 1 {
		t.Errorf("palette length = %d, want 1", a.Palette().Len())
	}
	if len(a.Cube().Samples()) != 1 {
		t.Errorf("cube sample count = %d, want 1", len(a.Cube().Samples()))
	}
	if a.Galaxy().Bloom() <= parameter.BloomBase {
		advanceFrames(a, clk, 3)
		if a.Galaxy().Bloom() <= parameter.BloomBase {
			t.Error("click did not pulse the bloom")
		}
	}
}

func TestPaletteChangePersistsToDisk(t *testing.T) {
	a, _ := newTestApp(t)

	a.ApplyNamedColors([]palette.NamedColor{{Name: "Supernova", Hex: "#ffaa00"}})

	if _, err := os.Stat(a.cache.Path()); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	b := New(Config{
		Width:     120,
		Height:    40,
		CachePath: a.cache.Path(),
		Source:    engine.NewMockClock(time.Unix(1000, 0)),
		Rand:      rand.New(rand.NewSource(7)),
	})
	defer b.Dispose()

	b.LoadPalette()
	samples := b.Palette().Samples()
	if len(samples) != 1 || samples[0].Hex != "#ffaa00" {
		t.Errorf("restored palette = %+v", samples)
	}
}

func TestApplyNamedColorsSkipsMalformedHex(t *testing.T) {
	a, _ := newTestApp(t)
	a.ApplyNamedColors([]palette.NamedColor{
		{Name: "Good", Hex: "#336699"},
		{Name: "Bad", Hex: "not-a-color"},
	})
	if a.Palette().Len() != 1 {
		t.Errorf("palette length = %d, want only the valid color", a.Palette().Len())
	}
}

func TestCycleSwarmModePublishes(t *testing.T) {
	a, _ := newTestApp(t)

	var got *events.ModeChangedPayload
	a.Bus().Subscribe(events.EventModeChanged, func(ev events.Event) {
		got = ev.Payload.(*events.ModeChangedPayload)
	})

	mode := a.CycleSwarmMode()
	if mode != swarm.ModeWheel {
		t.Errorf("mode after cycle = %v", mode)
	}
	if got == nil || got.Mode != int(swarm.ModeWheel) || got.Name != swarm.ModeWheel.String() {
		t.Errorf("mode change payload = %+v", got)
	}
}

func TestPauseFreezesChoreography(t *testing.T) {
	a, clk := newTestApp(t)
	a.Click(60, 20)
	advanceFrames(a, clk, 30)

	if !a.TogglePause() {
		t.Fatal("TogglePause did not pause")
	}
	before := a.Galaxy().Cloud().Pos[0]
	advanceFrames(a, clk, 30)
	after := a.Galaxy().Cloud().Pos[0]
	if before != after {
		t.Error("cloud moved while paused")
	}

	if a.TogglePause() {
		t.Fatal("TogglePause did not resume")
	}
	advanceFrames(a, clk, 30)
	if a.Galaxy().Cloud().Pos[0] == after {
		t.Error("cloud frozen after resume")
	}
}

func TestFPSSamplePublishedPerWindow(t *testing.T) {
	a, clk := newTestApp(t)

	var fps float64
	a.Bus().Subscribe(events.EventFPSSample, func(ev events.Event) {
		fps = ev.Payload.(*events.FPSSamplePayload).FPS
	})

	advanceFrames(a, clk, framesFor(parameter.FPSSampleWindow))
	if fps < float64(parameter.TargetFPS)-1 || fps > float64(parameter.TargetFPS)+1 {
		t.Errorf("fps estimate = %v, want about %d", fps, parameter.TargetFPS)
	}
}

func TestDisposeCancelsPendingGrowth(t *testing.T) {
	a, clk := newTestApp(t)
	a.Click(60, 20)
	advanceFrames(a, clk, framesFor(6*time.Second))

	a.Dispose()
	a.Dispose() // idempotent

	// The growth timer is cancelled with the session; a later tick must
	// not show the cube or panic on disposed layers
	clk.Advance(parameter.GrowthStartDelay + time.Second)
	a.Tick()
	if a.Cube().Active() {
		t.Error("cube shown after dispose")
	}
}

func TestPointerMovedReachesBothLayers(t *testing.T) {
	a, _ := newTestApp(t)

	var moves int
	a.Bus().Subscribe(events.EventPointerMoved, func(events.Event) { moves++ })

	a.PointerMoved(30, 10)
	if moves != 1 {
		t.Errorf("pointer event published %d times", moves)
	}
	a.PointerLeft()
}
