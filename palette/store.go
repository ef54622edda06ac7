package palette

import (
	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/events"
)

// Store is the ordered picked-color history, oldest first, bounded by
// capacity. Adding past capacity evicts the oldest entry; re-adding a
// color moves it to newest. Confined to the frame-tick call chain
type Store struct {
	bus      *events.Bus
	samples  []colorspace.Sample
	capacity int
}

// NewStore creates an empty store publishing changes on the bus
func NewStore(bus *events.Bus, capacity int) *Store {
	return &Store{
		bus:      bus,
		capacity: capacity,
	}
}

// Len returns the number of stored colors
func (s *Store) Len() int {
	return len(s.samples)
}

// Samples returns the palette oldest first. The slice is a copy; the
// caller may hold it across frames
func (s *Store) Samples() []colorspace.Sample {
	out := make([]colorspace.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Add appends a color as the newest entry. A duplicate (same hex) is
// moved to newest instead of growing the palette. Publishes
// EventPaletteChanged
func (s *Store) Add(sample colorspace.Sample) {
	for i, existing := range s.samples {
		if existing.Hex == sample.Hex {
			s.samples = append(append(s.samples[:i], s.samples[i+1:]...), sample)
			s.publish()
			return
		}
	}

	s.samples = append(s.samples, sample)
	if len(s.samples) > s.capacity {
		s.samples = s.samples[len(s.samples)-s.capacity:]
	}
	s.publish()
}

// Replace swaps the whole palette (used when loading the cache). Extra
// entries beyond capacity are dropped oldest-first
func (s *Store) Replace(samples []colorspace.Sample) {
	if len(samples) > s.capacity {
		samples = samples[len(samples)-s.capacity:]
	}
	s.samples = append(s.samples[:0], samples...)
	s.publish()
}

func (s *Store) publish() {
	s.bus.Publish(events.Event{
		Type:    events.EventPaletteChanged,
		Payload: &events.PaletteChangedPayload{Samples: s.Samples()},
	})
}
