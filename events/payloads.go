package events

import (
	"time"

	"github.com/ylc3000/galaxy/audio"
	"github.com/ylc3000/galaxy/colorspace"
)

// PointerPayload carries screen-cell pointer coordinates
type PointerPayload struct {
	X int
	Y int
}

// ModeChangedPayload carries the new swarm layout mode index
type ModeChangedPayload struct {
	Mode int
	Name string
}

// ColorSampledPayload carries a color picked from the galaxy cloud
type ColorSampledPayload struct {
	Sample colorspace.Sample
}

// FormationCompletePayload carries the time the explosion took to settle
type FormationCompletePayload struct {
	Elapsed time.Duration
}

// CubeGrowthPayload streams growth state so other layers can react per tick
type CubeGrowthPayload struct {
	Progress        float64 // eased progress in [0,1]
	Scale           float64 // current uniform scale
	RepulsionRadius float64 // swarm keep-out radius derived from scale
}

// BloomPulsePayload carries the bloom spike strength
type BloomPulsePayload struct {
	Strength float64
}

// PaletteChangedPayload carries the full palette after a change, oldest first
type PaletteChangedPayload struct {
	Samples []colorspace.Sample
}

// FPSSamplePayload carries the frames-per-second estimate
type FPSSamplePayload struct {
	FPS float64
}

// SoundRequestPayload asks the audio player for a procedural sound
type SoundRequestPayload struct {
	Sound audio.SoundID
}
