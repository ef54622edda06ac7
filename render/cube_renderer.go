package render

import (
	"math"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/cube"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

var wireColor = colorspace.RGB{R: 90, G: 90, B: 120}

// cubeCorners are the eight wireframe corners at unit scale
var cubeCorners = [8]vmath.Vec3{
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
}

// cubeEdges index corner pairs
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// CubeRenderer draws the wireframe cube and its color samples through
// the shared camera, both scaled by the growth animation
type CubeRenderer struct {
	layer  *cube.Layer
	camera *Camera
}

// NewCubeRenderer creates a renderer for the cube layer
func NewCubeRenderer(layer *cube.Layer, camera *Camera) *CubeRenderer {
	return &CubeRenderer{
		layer:  layer,
		camera: camera,
	}
}

// IsVisible hides the renderer until the cube is shown
func (r *CubeRenderer) IsVisible() bool {
	return r.layer.Active()
}

// Render draws wireframe then samples
func (r *CubeRenderer) Render(buf *Buffer) {
	scale := r.layer.Scale()
	if scale <= 0 {
		return
	}
	half := parameter.CubeSize / 2 * scale

	for _, e := range cubeEdges {
		a := vmath.V3Scale(cubeCorners[e[0]], half)
		b := vmath.V3Scale(cubeCorners[e[1]], half)
		r.drawEdge(buf, a, b)
	}

	for i, pos := range r.layer.Positions() {
		sx, sy, _, ok := r.camera.Project(vmath.V3Scale(pos, scale))
		if !ok {
			continue
		}
		s := r.layer.Samples()[i]
		buf.Set(int(math.Round(sx)), int(math.Round(sy)), '#', s.Color)
	}
}

// drawEdge samples the segment finely enough that no cell is skipped
func (r *CubeRenderer) drawEdge(buf *Buffer, a, b vmath.Vec3) {
	steps := int(vmath.V3Mag(vmath.V3Sub(b, a))*4) + 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		sx, sy, _, ok := r.camera.Project(vmath.V3Lerp(a, b, t))
		if !ok {
			continue
		}
		x := int(math.Round(sx))
		y := int(math.Round(sy))
		if buf.Cell(x, y).Ch == ' ' {
			buf.Set(x, y, '+', wireColor)
		}
	}
}
