package render

import (
	"fmt"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/cube"
	"github.com/ylc3000/galaxy/events"
	"github.com/ylc3000/galaxy/galaxy"
	"github.com/ylc3000/galaxy/swarm"
)

var hudTextColor = colorspace.RGB{R: 180, G: 180, B: 200}

// HUDRenderer draws the status line and palette swatches along the
// bottom row. It tracks FPS and palette state through bus subscriptions
type HUDRenderer struct {
	bus        *events.Bus
	galaxyL    *galaxy.Layer
	swarmL     *swarm.Layer
	cubeL      *cube.Layer
	fps        float64
	palette    []colorspace.Sample
	fpsSub     events.Subscription
	paletteSub events.Subscription
}

// NewHUDRenderer creates the HUD and subscribes to its feed events
func NewHUDRenderer(bus *events.Bus, g *galaxy.Layer, s *swarm.Layer, c *cube.Layer) *HUDRenderer {
	h := &HUDRenderer{
		bus:     bus,
		galaxyL: g,
		swarmL:  s,
		cubeL:   c,
	}
	h.fpsSub = bus.Subscribe(events.EventFPSSample, func(ev events.Event) {
		h.fps = ev.Payload.(*events.FPSSamplePayload).FPS
	})
	h.paletteSub = bus.Subscribe(events.EventPaletteChanged, func(ev events.Event) {
		h.palette = ev.Payload.(*events.PaletteChangedPayload).Samples
	})
	return h
}

// Render draws the status line on the last row
func (h *HUDRenderer) Render(buf *Buffer) {
	y := buf.Height() - 1
	status := fmt.Sprintf(" %s | swarm:%s | cube:%s | %.0f fps ",
		h.galaxyL.Phase(), h.swarmL.Mode(), h.cubeL.Space(), h.fps)
	buf.WriteString(0, y, status, hudTextColor)

	// Palette swatches, newest rightmost
	x := buf.Width() - 2*len(h.palette) - 1
	for _, s := range h.palette {
		if x < len(status) {
			break
		}
		buf.Set(x, y, '█', s.Color)
		buf.Set(x+1, y, '█', s.Color)
		x += 2
	}
}

// Dispose releases the bus subscriptions
func (h *HUDRenderer) Dispose() {
	h.bus.Unsubscribe(h.fpsSub)
	h.bus.Unsubscribe(h.paletteSub)
}
