package parameter

import "time"

// Palette
const (
	// PaletteCapacity bounds the picked-color history; adding beyond it
	// evicts the oldest entry
	PaletteCapacity = 8

	// PaletteCacheFile is the default JSON cache filename
	PaletteCacheFile = "palette.json"

	// PaletteFetchTimeout bounds the one-shot named-palette fetch
	PaletteFetchTimeout = 5 * time.Second

	// PaletteFetchURL is the color naming service endpoint. The response
	// is a JSON list of {name, hex} pairs
	PaletteFetchURL = "https://api.color.pizza/v1/?list=basic"
)
