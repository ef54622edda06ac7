package audio

import (
	"math"
)

// Waveform types
const (
	waveSine = iota
	waveTriangle
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples at a fixed frequency
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRateHz)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveTriangle:
			buf[i] = 4.0*math.Abs(phase-0.5) - 1.0
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweep generates a sine whose frequency glides linearly from f0 to f1
func sweep(f0, f1 float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := f0 + (f1-f0)*t
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += freq / float64(sampleRateHz)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRateHz))
	releaseSamples := int(releaseSec * float64(sampleRateHz))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		gain := 1.0
		if i < attackSamples && attackSamples > 0 {
			gain = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			gain = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= gain
	}
}

// mix sums buffers sample-wise into the longest one, scaled to avoid clipping
func mix(bufs ...floatBuffer) floatBuffer {
	maxLen := 0
	for _, b := range bufs {
		if len(b) > maxLen {
			maxLen = len(b)
		}
	}
	out := make(floatBuffer, maxLen)
	scale := 1.0 / float64(len(bufs))
	for _, b := range bufs {
		for i, s := range b {
			out[i] += s * scale
		}
	}
	return out
}

// seconds converts a duration in seconds to a sample count
func seconds(s float64) int {
	return int(s * float64(sampleRateHz))
}

// renderSound builds the sample buffer for a sound ID
func renderSound(id SoundID) floatBuffer {
	switch id {
	case SoundClick:
		buf := oscillator(waveSine, 880, seconds(0.06))
		applyEnvelope(buf, 0.002, 0.04)
		return buf
	case SoundChime:
		low := sweep(220, 660, seconds(0.9))
		high := oscillator(waveSine, 1320, seconds(0.9))
		buf := mix(low, high)
		applyEnvelope(buf, 0.05, 0.5)
		return buf
	case SoundPluck:
		buf := oscillator(waveTriangle, 523.25, seconds(0.12))
		applyEnvelope(buf, 0.001, 0.1)
		return buf
	default:
		return nil
	}
}
