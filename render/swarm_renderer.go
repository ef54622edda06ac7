package render

import (
	"math"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/swarm"
)

// SwarmRenderer draws the 2D particle overlay. Particle radius selects
// the glyph; glow whitens the color toward a highlight
type SwarmRenderer struct {
	layer *swarm.Layer
}

// NewSwarmRenderer creates a renderer for the swarm layer
func NewSwarmRenderer(layer *swarm.Layer) *SwarmRenderer {
	return &SwarmRenderer{layer: layer}
}

// Render draws every particle at its rounded cell position
func (r *SwarmRenderer) Render(buf *Buffer) {
	for i := range r.layer.Particles() {
		p := &r.layer.Particles()[i]

		x := int(math.Round(p.Pos.X))
		y := int(math.Round(p.Pos.Y))

		fg := p.Color()
		if p.Glow > 0 {
			fg = fg.Blend(colorspace.RGBWhite, p.Glow*0.6)
		}
		buf.AddLight(x, y, particleGlyph(p.Radius), fg)
	}
}

func particleGlyph(radius float64) rune {
	switch {
	case radius < 1.0:
		return '.'
	case radius < 1.8:
		return 'o'
	case radius < 2.8:
		return 'O'
	default:
		return '@'
	}
}
