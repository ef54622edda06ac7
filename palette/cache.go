package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ylc3000/galaxy/colorspace"
)

// cacheEntry is the on-disk form of one palette color
type cacheEntry struct {
	Hex string  `json:"hex"`
	R   uint8   `json:"r"`
	G   uint8   `json:"g"`
	B   uint8   `json:"b"`
	H   float64 `json:"h"`
	S   float64 `json:"s"`
	L   float64 `json:"l"`
}

// cacheFile is the JSON document written to disk
type cacheFile struct {
	Colors []cacheEntry `json:"colors"`
}

// Cache persists the palette as a JSON file, rewritten on every change.
// Corrupted or absent data degrades to an empty palette
type Cache struct {
	path string
}

// NewCache creates a cache writing to the given file path
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the cache file location
func (c *Cache) Path() string {
	return c.path
}

// Save writes the palette to disk, creating parent directories as needed
func (c *Cache) Save(samples []colorspace.Sample) error {
	doc := cacheFile{Colors: make([]cacheEntry, 0, len(samples))}
	for _, s := range samples {
		doc.Colors = append(doc.Colors, cacheEntry{
			Hex: s.Hex,
			R:   s.Color.R, G: s.Color.G, B: s.Color.B,
			H: s.H, S: s.S, L: s.L,
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode palette cache: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}
	return os.WriteFile(c.path, data, 0644)
}

// Load reads the palette from disk. A missing file yields an empty
// palette with no error; a corrupted file yields an empty palette and
// the decode error for logging
func (c *Cache) Load() ([]colorspace.Sample, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read palette cache: %w", err)
	}

	var doc cacheFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode palette cache: %w", err)
	}

	samples := make([]colorspace.Sample, 0, len(doc.Colors))
	for _, e := range doc.Colors {
		samples = append(samples, colorspace.NewSample(colorspace.RGB{R: e.R, G: e.G, B: e.B}))
	}
	return samples, nil
}
