package cube

import (
	"math"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/vmath"
)

// ColorSpace selects the cube layout model
type ColorSpace int

const (
	SpaceRGB ColorSpace = iota
	SpaceHSL
	SpaceHSV
	SpaceLCH

	// SpaceCount bounds the enum for cycling
	SpaceCount
)

// String returns the space name for the HUD
func (s ColorSpace) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceHSL:
		return "HSL"
	case SpaceHSV:
		return "HSV"
	case SpaceLCH:
		return "LCH"
	default:
		return "Unknown"
	}
}

// axisSpec maps one color component onto one cube axis
type axisSpec struct {
	component int     // index into the space's component triple
	min, max  float64 // input range
	reflect   bool    // mirror the normalized value
}

// spaceConfig is the per-space layout table. For cylindrical spaces the
// first two axes are reinterpreted as angle and radius around the cube's
// vertical axis
type spaceConfig struct {
	axes        [3]axisSpec
	cylindrical bool
}

var spaceConfigs = [SpaceCount]spaceConfig{
	SpaceRGB: {
		axes: [3]axisSpec{
			{component: 0, min: 0, max: 255},
			{component: 1, min: 0, max: 255},
			{component: 2, min: 0, max: 255},
		},
	},
	SpaceHSL: {
		axes: [3]axisSpec{
			{component: 0, min: 0, max: 360}, // hue → angle
			{component: 1, min: 0, max: 1},   // saturation → radius
			{component: 2, min: 0, max: 1},   // lightness → height
		},
		cylindrical: true,
	},
	SpaceHSV: {
		axes: [3]axisSpec{
			{component: 0, min: 0, max: 360},
			{component: 1, min: 0, max: 1},
			{component: 2, min: 0, max: 1},
		},
		cylindrical: true,
	},
	SpaceLCH: {
		axes: [3]axisSpec{
			{component: 2, min: 0, max: 360}, // hue → angle
			{component: 1, min: 0, max: 140}, // chroma → radius
			{component: 0, min: 0, max: 100}, // lightness → height
		},
		cylindrical: true,
	},
}

// components extracts the space's component triple from a sample
func components(space ColorSpace, s colorspace.Sample) [3]float64 {
	switch space {
	case SpaceHSL:
		return [3]float64{s.H, s.S, s.L}
	case SpaceHSV:
		h, sat, v := colorspace.RGBToHSV(s.Color)
		return [3]float64{h, sat, v}
	case SpaceLCH:
		l, c, h := colorspace.RGBToLCH(s.Color)
		return [3]float64{l, c, h}
	default:
		return [3]float64{float64(s.Color.R), float64(s.Color.G), float64(s.Color.B)}
	}
}

// normalize maps one component through its axis spec into [0,1]
func normalize(spec axisSpec, comp [3]float64) float64 {
	v := vmath.Clamp01((comp[spec.component] - spec.min) / (spec.max - spec.min))
	if spec.reflect {
		v = 1.0 - v
	}
	return v
}

// Position maps a sample into the cube volume under the given space.
// Cartesian spaces spread components across the three axes; cylindrical
// spaces wrap the first axis around the vertical
func Position(space ColorSpace, s colorspace.Sample) vmath.Vec3 {
	cfg := spaceConfigs[space]
	comp := components(space, s)

	n0 := normalize(cfg.axes[0], comp)
	n1 := normalize(cfg.axes[1], comp)
	n2 := normalize(cfg.axes[2], comp)

	if cfg.cylindrical {
		angle := n0 * 2 * math.Pi
		radius := n1 * parameter.CubeSize / 2
		return vmath.Vec3{
			X: radius * math.Cos(angle),
			Y: (n2 - 0.5) * parameter.CubeSize,
			Z: radius * math.Sin(angle),
		}
	}
	return vmath.Vec3{
		X: (n0 - 0.5) * parameter.CubeSize,
		Y: (n1 - 0.5) * parameter.CubeSize,
		Z: (n2 - 0.5) * parameter.CubeSize,
	}
}
