package audio

import (
	"math"
	"testing"
)

func TestRenderSoundNonEmpty(t *testing.T) {
	for _, id := range []SoundID{SoundClick, SoundChime, SoundPluck} {
		buf := renderSound(id)
		if len(buf) == 0 {
			t.Errorf("renderSound(%v) empty", id)
		}
	}
}

func TestRenderSoundUnknown(t *testing.T) {
	if buf := renderSound(SoundID(99)); buf != nil {
		t.Errorf("unknown sound produced %d samples", len(buf))
	}
}

func TestEnvelopeSilencesEndpoints(t *testing.T) {
	buf := oscillator(waveSine, 440, seconds(0.5))
	applyEnvelope(buf, 0.1, 0.1)
	if math.Abs(buf[0]) > 1e-9 {
		t.Errorf("first sample %v not silenced by attack", buf[0])
	}
	if math.Abs(buf[len(buf)-1]) > 0.01 {
		t.Errorf("last sample %v not silenced by release", buf[len(buf)-1])
	}
}

func TestSamplesWithinUnitRange(t *testing.T) {
	for _, id := range []SoundID{SoundClick, SoundChime, SoundPluck} {
		for i, s := range renderSound(id) {
			if s < -1.0 || s > 1.0 {
				t.Fatalf("%v sample %d out of range: %v", id, i, s)
			}
		}
	}
}

func TestBufferStreamerDrains(t *testing.T) {
	st := &bufferStreamer{samples: make(floatBuffer, 100), volume: 1}
	out := make([][2]float64, 64)

	n, ok := st.Stream(out)
	if n != 64 || !ok {
		t.Fatalf("first stream: n=%d ok=%v", n, ok)
	}
	n, ok = st.Stream(out)
	if n != 36 || !ok {
		t.Fatalf("second stream: n=%d ok=%v", n, ok)
	}
	n, ok = st.Stream(out)
	if n != 0 || ok {
		t.Fatalf("drained stream: n=%d ok=%v", n, ok)
	}
}

func TestPlayerSilentBeforeInit(t *testing.T) {
	p := NewPlayer()
	// Must not panic without a speaker
	p.Play(SoundClick)
	p.Close()
}
