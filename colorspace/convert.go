package colorspace

import (
	"math"
)

// RGBToHSL converts 8-bit channels to hue in degrees [0,360) and
// saturation/lightness in [0,1]
func RGBToHSL(c RGB) (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2.0

	delta := maxC - minC
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxC + minC)
	} else {
		s = delta / (2.0 - maxC - minC)
	}

	switch maxC {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/delta + 2.0
	default:
		h = (r-g)/delta + 4.0
	}
	h *= 60.0
	if h >= 360.0 {
		h -= 360.0
	}
	return h, s, l
}

// HSLToRGB converts hue in degrees and saturation/lightness in [0,1]
// back to 8-bit channels. Round-trips RGBToHSL within ±1 per channel
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	s = clampUnit(s)
	l = clampUnit(l)

	if s == 0 {
		v := round255(l)
		return RGB{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	hk := h / 360.0
	r := hueToChannel(p, q, hk+1.0/3.0)
	g := hueToChannel(p, q, hk)
	b := hueToChannel(p, q, hk-1.0/3.0)
	return RGB{round255(r), round255(g), round255(b)}
}

// RGBToHSV converts to hue in degrees [0,360) and saturation/value in [0,1]
func RGBToHSV(c RGB) (h, s, v float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	v = maxC

	delta := maxC - minC
	if maxC == 0 || delta == 0 {
		return 0, 0, v
	}
	s = delta / maxC

	switch maxC {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/delta + 2.0
	default:
		h = (r-g)/delta + 4.0
	}
	h *= 60.0
	if h >= 360.0 {
		h -= 360.0
	}
	return h, s, v
}

// RGBToLCH converts to CIE-LCh(uv is not used; this is LCh(ab) via HCL):
// hue in degrees [0,360), chroma and lightness in their natural ranges.
// Delegates to go-colorful's HCL space
func RGBToLCH(c RGB) (l, ch, h float64) {
	h, ch, l = c.Colorful().Hcl()
	if h < 0 {
		h += 360.0
	}
	return l, ch, h
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	default:
		return p
	}
}

func round255(v float64) uint8 {
	n := math.Round(v * 255.0)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
