package audio

// SoundID identifies a procedural sound
type SoundID int

const (
	// SoundClick is a short blip on pointer click
	SoundClick SoundID = iota

	// SoundChime is a rising chime when the spiral formation settles
	SoundChime

	// SoundPluck confirms a color added to the palette
	SoundPluck
)

// String returns human-readable sound name
func (s SoundID) String() string {
	switch s {
	case SoundClick:
		return "Click"
	case SoundChime:
		return "Chime"
	case SoundPluck:
		return "Pluck"
	default:
		return "Unknown"
	}
}
