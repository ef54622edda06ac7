package palette

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ylc3000/galaxy/colorspace"
	"github.com/ylc3000/galaxy/events"
)

func sampleOf(r, g, b uint8) colorspace.Sample {
	return colorspace.NewSample(colorspace.RGB{R: r, G: g, B: b})
}

func TestStoreCapEvictsOldest(t *testing.T) {
	s := NewStore(events.NewBus(), 8)
	for i := 0; i < 8; i++ {
		s.Add(sampleOf(uint8(i), 0, 0))
	}
	if s.Len() != 8 {
		t.Fatalf("len = %d, want 8", s.Len())
	}

	// 9th distinct color evicts the oldest; length stays 8
	s.Add(sampleOf(99, 0, 0))
	if s.Len() != 8 {
		t.Fatalf("len after 9th add = %d, want 8", s.Len())
	}
	got := s.Samples()
	if got[0] != sampleOf(1, 0, 0) {
		t.Errorf("oldest entry = %v, want the second-added color", got[0].Hex)
	}
	if got[7] != sampleOf(99, 0, 0) {
		t.Errorf("newest entry = %v, want the just-added color", got[7].Hex)
	}
}

func TestStoreDuplicateMovesToNewest(t *testing.T) {
	s := NewStore(events.NewBus(), 8)
	a := sampleOf(1, 2, 3)
	b := sampleOf(4, 5, 6)
	s.Add(a)
	s.Add(b)
	s.Add(a)

	if s.Len() != 2 {
		t.Fatalf("duplicate add grew palette: len = %d", s.Len())
	}
	got := s.Samples()
	if got[0] != b || got[1] != a {
		t.Errorf("order = [%v %v], want [%v %v]", got[0].Hex, got[1].Hex, b.Hex, a.Hex)
	}
}

func TestStorePublishesChanges(t *testing.T) {
	bus := events.NewBus()
	var published [][]colorspace.Sample
	bus.Subscribe(events.EventPaletteChanged, func(ev events.Event) {
		published = append(published, ev.Payload.(*events.PaletteChangedPayload).Samples)
	})

	s := NewStore(bus, 8)
	s.Add(sampleOf(1, 1, 1))
	s.Add(sampleOf(2, 2, 2))

	if len(published) != 2 {
		t.Fatalf("published %d changes, want 2", len(published))
	}
	if len(published[1]) != 2 {
		t.Errorf("second publish carried %d samples, want 2", len(published[1]))
	}
}

func TestStoreReplaceTruncates(t *testing.T) {
	s := NewStore(events.NewBus(), 3)
	var many []colorspace.Sample
	for i := 0; i < 6; i++ {
		many = append(many, sampleOf(uint8(i), 0, 0))
	}
	s.Replace(many)

	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if got := s.Samples()[0]; got != sampleOf(3, 0, 0) {
		t.Errorf("oldest after truncate = %v", got.Hex)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	c := NewCache(path)

	want := []colorspace.Sample{sampleOf(255, 0, 0), sampleOf(0, 128, 255)}
	if err := c.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCacheMissingFileIsEmpty(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "absent.json"))
	got, err := c.Load()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("missing file yielded %d samples", len(got))
	}
}

func TestCacheCorruptedDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewCache(path)
	got, err := c.Load()
	if err == nil {
		t.Error("corrupted cache should return a decode error for logging")
	}
	if len(got) != 0 {
		t.Errorf("corrupted cache yielded %d samples, want 0", len(got))
	}
}

func TestCacheCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "palette.json")
	c := NewCache(path)
	if err := c.Save([]colorspace.Sample{sampleOf(1, 2, 3)}); err != nil {
		t.Fatalf("Save with nested dir: %v", err)
	}
}

func TestFetchNamed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"colors":[{"name":"Supernova","hex":"#ffc500"},{"name":"Void","hex":"#0b0b1a"}]}`))
	}))
	defer srv.Close()

	colors, err := FetchNamed(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("FetchNamed: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("fetched %d colors, want 2", len(colors))
	}
	if colors[0].Name != "Supernova" {
		t.Errorf("name = %q", colors[0].Name)
	}

	s, err := colors[0].Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if s.Color != (colorspace.RGB{R: 0xff, G: 0xc5, B: 0x00}) {
		t.Errorf("sample color = %v", s.Color)
	}
}

func TestFetchNamedServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := FetchNamed(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("expected error on 500 response")
	}
}

func TestFetchNamedBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("]["))
	}))
	defer srv.Close()

	if _, err := FetchNamed(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("expected decode error")
	}
}

func TestNamedColorBadHex(t *testing.T) {
	if _, err := (NamedColor{Name: "bad", Hex: "#zz0000"}).Sample(); err == nil {
		t.Error("expected hex parse error")
	}
}
