package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	sampleRateHz = 48000
)

// bufferStreamer plays a pre-rendered mono buffer once
type bufferStreamer struct {
	samples floatBuffer
	pos     int
	volume  float64
}

func (b *bufferStreamer) Stream(out [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	n := 0
	for i := range out {
		if b.pos >= len(b.samples) {
			break
		}
		s := b.samples[b.pos] * b.volume
		out[i][0] = s
		out[i][1] = s
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

// Player manages procedural demo sounds over a shared beep mixer.
// All failures degrade to silent mode, never to an error surfaced upward
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       map[SoundID]floatBuffer
	initialized bool
	muted       bool
}

// NewPlayer creates a player with pre-rendered sound buffers
func NewPlayer() *Player {
	p := &Player{
		mixer: &beep.Mixer{},
		cache: make(map[SoundID]floatBuffer),
	}
	for _, id := range []SoundID{SoundClick, SoundChime, SoundPluck} {
		p.cache[id] = renderSound(id)
	}
	return p
}

// Init opens the speaker and attaches the mixer. Init failure leaves the
// player in silent mode; Play becomes a no-op
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		p.muted = true
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a sound on the mixer. Safe before Init and after Close
func (p *Player) Play(id SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	buf, ok := p.cache[id]
	if !ok || len(buf) == 0 {
		return
	}
	st := &bufferStreamer{samples: buf, volume: 0.7}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted toggles sound output without tearing down the speaker
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Close silences and detaches all streamers. Safe to call multiple times
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
