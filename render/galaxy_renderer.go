package render

import (
	"math"
	"sort"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/galaxy"
	"github.com/ylc3000/galaxy/vmath"
)

// brightnessRamp maps point brightness to denser glyphs
var brightnessRamp = []rune{'·', ':', '*', 'o', '&', '@'}

// GalaxyRenderer draws the point cloud back to front through the shared
// camera, with additive light accumulation and bloom scaling
type GalaxyRenderer struct {
	layer  *galaxy.Layer
	camera *Camera

	depthOrder []int // reused between frames
}

// NewGalaxyRenderer creates a renderer for the galaxy layer
func NewGalaxyRenderer(layer *galaxy.Layer, camera *Camera) *GalaxyRenderer {
	return &GalaxyRenderer{
		layer:  layer,
		camera: camera,
	}
}

// Render draws the singularity core or the projected cloud
func (r *GalaxyRenderer) Render(buf *Buffer) {
	r.camera.Distance = r.layer.CameraDist()

	if r.layer.Phase() == galaxy.PhaseSingularity {
		r.renderCore(buf)
		return
	}
	r.renderCloud(buf)
}

// renderCore draws the pulsing pre-ignition singularity
func (r *GalaxyRenderer) renderCore(buf *Buffer) {
	cx := buf.Width() / 2
	cy := buf.Height() / 2
	radius := r.layer.CoreRadius()

	rCells := int(math.Ceil(radius))
	for dy := -rCells; dy <= rCells; dy++ {
		for dx := -2 * rCells; dx <= 2*rCells; dx++ {
			d := math.Sqrt(float64(dx*dx)/4 + float64(dy*dy))
			if d > radius {
				continue
			}
			heat := 1.0 - d/radius
			fg := colorspace.RGB{
				R: uint8(255 * heat),
				G: uint8(220 * heat * heat),
				B: uint8(160 * heat * heat),
			}
			buf.AddLight(cx+dx, cy+dy, rampGlyph(heat), fg)
		}
	}
}

// renderCloud draws all points painter's-order, far first
func (r *GalaxyRenderer) renderCloud(buf *Buffer) {
	cloud := r.layer.Cloud()
	bloom := r.layer.Bloom()

	type projected struct {
		x, y  int
		depth float64
		idx   int
	}
	pts := make([]projected, 0, cloud.N)

	for i := 0; i < cloud.N; i++ {
		sx, sy, depth, ok := r.camera.Project(cloud.Pos[i])
		if !ok {
			continue
		}
		x := int(math.Round(sx))
		y := int(math.Round(sy))
		if !buf.In(x, y) {
			continue
		}
		pts = append(pts, projected{x: x, y: y, depth: depth, idx: i})
	}

	sort.Slice(pts, func(a, b int) bool {
		return pts[a].depth > pts[b].depth
	})

	for _, p := range pts {
		i := p.idx
		// Nearer and larger points burn brighter; bloom lifts everything
		near := vmath.Clamp01(r.camera.Focal / p.depth)
		brightness := vmath.Clamp01(cloud.Size[i] * near * (0.5 + bloom))
		fg := cloud.Color[i].Scale(0.3 + 0.7*brightness)
		buf.AddLight(p.x, p.y, rampGlyph(brightness), fg)
	}
}

func rampGlyph(brightness float64) rune {
	idx := int(brightness * float64(len(brightnessRamp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(brightnessRamp) {
		idx = len(brightnessRamp) - 1
	}
	return brightnessRamp[idx]
}
