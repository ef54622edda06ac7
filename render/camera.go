package render

import (
	"math"

	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// cellAspect compensates terminal cells being roughly twice as tall as
// wide, so world circles stay round on screen
const cellAspect = 2.0

// viewTilt is the fixed camera pitch looking down at the disc (radians)
const viewTilt = 0.9

// Camera projects galaxy world space onto the cell grid with a fixed
// downward tilt and a perspective divide, after the manner of a single
// orbiting viewpoint
type Camera struct {
	Width    int
	Height   int
	Distance float64 // along the view axis, driven by the galaxy layer
	Focal    float64
}

// NewCamera creates a camera for the given screen size
func NewCamera(width, height int) *Camera {
	return &Camera{
		Width:    width,
		Height:   height,
		Distance: parameter.CameraNearDistance,
		Focal:    parameter.CameraFocalLength,
	}
}

// Resize updates the screen dimensions
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// Project maps a world point to fractional screen coordinates and a
// depth for painter's ordering. ok is false behind the camera
func (c *Camera) Project(v vmath.Vec3) (sx, sy, depth float64, ok bool) {
	sinT := math.Sin(viewTilt)
	cosT := math.Cos(viewTilt)

	// Tilt about X: world Y up, world XZ is the disc plane
	yr := v.Y*cosT - v.Z*sinT
	zr := v.Y*sinT + v.Z*cosT

	depth = zr + c.Distance
	if depth <= 0.1 {
		return 0, 0, 0, false
	}
	scale := c.Focal / depth

	cx := float64(c.Width) / 2
	cy := float64(c.Height) / 2
	sx = cx + v.X*scale*cellAspect/2
	sy = cy - yr*scale/2
	return sx, sy, depth, true
}

// UnprojectToDisc approximates the inverse of Project for a screen point
// assumed to lie on the disc plane (world y=0). Good enough to aim the
// pointer repulsion; exactness is not needed for a visual push
func (c *Camera) UnprojectToDisc(px, py float64) (x, z float64) {
	sinT := math.Sin(viewTilt)

	scale := c.Focal / c.Distance
	cx := float64(c.Width) / 2
	cy := float64(c.Height) / 2

	x = (px - cx) / (scale * cellAspect / 2)
	z = (cy - py) / (scale / 2) / -sinT
	return x, z
}
