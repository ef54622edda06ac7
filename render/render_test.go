package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/vmath"
)

func TestBufferSetAndClip(t *testing.T) {
	b := NewBuffer(10, 5)

	b.Set(3, 2, 'x', colorspace.RGB{R: 10, G: 20, B: 30})
	if c := b.Cell(3, 2); c.Ch != 'x' || c.Fg != (colorspace.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("cell = %+v", c)
	}

	// Out-of-bounds writes are dropped, reads are zero
	b.Set(-1, 0, 'y', colorspace.RGBWhite)
	b.Set(10, 0, 'y', colorspace.RGBWhite)
	b.Set(0, 5, 'y', colorspace.RGBWhite)
	if c := b.Cell(-1, 0); c.Ch != 0 {
		t.Errorf("out-of-bounds read = %+v", c)
	}
}

func TestBufferAddLightAccumulates(t *testing.T) {
	b := NewBuffer(4, 4)
	b.AddLight(1, 1, '*', colorspace.RGB{R: 100, G: 0, B: 0})
	b.AddLight(1, 1, 'o', colorspace.RGB{R: 200, G: 50, B: 0})

	c := b.Cell(1, 1)
	if c.Fg != (colorspace.RGB{R: 255, G: 50, B: 0}) {
		t.Errorf("accumulated light = %+v, want clamped sum", c.Fg)
	}
	if c.Ch != '*' {
		t.Errorf("rune overwritten by later light: %c", c.Ch)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(0, 0, 'x', colorspace.RGBWhite)
	b.Clear()
	if c := b.Cell(0, 0); c.Ch != ' ' || c.Fg != colorspace.RGBBlack {
		t.Errorf("cell after clear = %+v", c)
	}
}

func TestWriteStringClips(t *testing.T) {
	b := NewBuffer(5, 1)
	b.WriteString(3, 0, "abcdef", hudTextColor)
	if b.Cell(3, 0).Ch != 'a' || b.Cell(4, 0).Ch != 'b' {
		t.Errorf("string not written")
	}
	// Rest silently clipped; nothing to assert beyond no panic
}

func TestCameraProjectsCenter(t *testing.T) {
	c := NewCamera(80, 24)
	c.Distance = 20

	sx, sy, depth, ok := c.Project(vmath.Vec3{})
	if !ok {
		t.Fatal("origin not visible")
	}
	if math.Abs(sx-40) > 1e-9 || math.Abs(sy-12) > 1e-9 {
		t.Errorf("origin projects to (%v,%v), want screen center", sx, sy)
	}
	if math.Abs(depth-20) > 1e-9 {
		t.Errorf("origin depth = %v, want camera distance", depth)
	}
}

func TestCameraRejectsBehind(t *testing.T) {
	c := NewCamera(80, 24)
	c.Distance = 2
	if _, _, _, ok := c.Project(vmath.Vec3{Y: -100, Z: -100}); ok {
		t.Error("point behind camera projected")
	}
}

func TestCameraDepthOrdering(t *testing.T) {
	c := NewCamera(80, 24)
	c.Distance = 30

	_, _, near, _ := c.Project(vmath.Vec3{Z: -5})
	_, _, far, _ := c.Project(vmath.Vec3{Z: 5})
	if near >= far {
		t.Errorf("depth ordering wrong: near %v >= far %v", near, far)
	}
}

func TestUnprojectRoundTripOnDisc(t *testing.T) {
	c := NewCamera(120, 40)
	c.Distance = 30

	// The inverse is approximate (it ignores per-point depth), so allow
	// a loose tolerance away from the screen center
	for _, p := range []vmath.Vec3{{X: 3, Z: 2}, {X: -4, Z: -1}, {X: 0, Z: 5}} {
		sx, sy, _, ok := c.Project(p)
		if !ok {
			t.Fatalf("disc point %+v not visible", p)
		}
		x, z := c.UnprojectToDisc(sx, sy)
		if math.Abs(x-p.X) > 2.0 || math.Abs(z-p.Z) > 2.0 {
			t.Errorf("unproject of %+v = (%v,%v)", p, x, z)
		}
	}
}

type fakeRenderer struct {
	order *[]int
	id    int
}

func (f *fakeRenderer) Render(*Buffer) {
	*f.order = append(*f.order, f.id)
}

type hiddenRenderer struct {
	fakeRenderer
}

func (h *hiddenRenderer) IsVisible() bool { return false }

func newSimScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("sim screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	o := NewOrchestrator(screen, 20, 10)

	var order []int
	o.Register(&fakeRenderer{order: &order, id: 3}, PriorityHUD)
	o.Register(&fakeRenderer{order: &order, id: 1}, PriorityGalaxy)
	o.Register(&fakeRenderer{order: &order, id: 2}, PrioritySwarm)

	o.RenderFrame()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("render order = %v, want [1 2 3]", order)
	}
}

func TestOrchestratorSkipsHidden(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	o := NewOrchestrator(screen, 20, 10)

	var order []int
	o.Register(&hiddenRenderer{fakeRenderer{order: &order, id: 1}}, PriorityCube)
	o.Register(&fakeRenderer{order: &order, id: 2}, PriorityHUD)

	o.RenderFrame()
	if len(order) != 1 || order[0] != 2 {
		t.Errorf("render order = %v, want only visible renderer", order)
	}
}

func TestOrchestratorEqualPriorityKeepsRegistrationOrder(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	o := NewOrchestrator(screen, 20, 10)

	var order []int
	o.Register(&fakeRenderer{order: &order, id: 1}, PrioritySwarm)
	o.Register(&fakeRenderer{order: &order, id: 2}, PrioritySwarm)

	o.RenderFrame()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("render order = %v, want [1 2]", order)
	}
}
