package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noiseSeed keeps noise cues identical between runs
const noiseSeed = 7

// oscillator generates raw waveform samples. sweep is the frequency
// reached at the last sample; pass freq for a steady tone.
func oscillator(waveType int, freq, sweep float64, samples int, rng *rand.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		f := freq
		if samples > 1 {
			f += (sweep - freq) * float64(i) / float64(samples-1)
		}
		phase += f / float64(sampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := sampleRate.N(attack)
	releaseSamples := sampleRate.N(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// scale multiplies buf by gain in place
func (buf floatBuffer) scale(gain float64) floatBuffer {
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

// --- Cue generators (unity gain) ---

func generateShootSound(rng *rand.Rand) floatBuffer {
	buf := oscillator(waveSquare, 880, 440, sampleRate.N(60*time.Millisecond), rng)
	applyEnvelope(buf, 2*time.Millisecond, 40*time.Millisecond)
	return buf
}

func generateJumpSound(rng *rand.Rand) floatBuffer {
	buf := oscillator(waveSine, 300, 600, sampleRate.N(90*time.Millisecond), rng)
	applyEnvelope(buf, 5*time.Millisecond, 50*time.Millisecond)
	return buf
}

func generateHitSound(rng *rand.Rand) floatBuffer {
	n := sampleRate.N(120 * time.Millisecond)
	body := oscillator(waveSaw, 140, 70, n, rng)
	noise := oscillator(waveNoise, 0, 0, n, rng)
	buf := mixFloatBuffers(body, noise, 0.5)
	applyEnvelope(buf, time.Millisecond, 90*time.Millisecond)
	return buf
}

func generateShieldHitSound(rng *rand.Rand) floatBuffer {
	n := sampleRate.N(150 * time.Millisecond)
	fund := oscillator(waveSine, 1320, 1320, n, rng)
	over := oscillator(waveSine, 2640, 2640, n, rng)
	buf := mixFloatBuffers(fund, over, 0.3)
	applyEnvelope(buf, time.Millisecond, 140*time.Millisecond)
	return buf
}

// generateArpeggio plays notes back to back, rising or falling
func generateArpeggio(rng *rand.Rand, notes ...float64) floatBuffer {
	var buf floatBuffer
	for _, f := range notes {
		note := oscillator(waveSquare, f, f, sampleRate.N(80*time.Millisecond), rng)
		applyEnvelope(note, 3*time.Millisecond, 30*time.Millisecond)
		buf = concatFloatBuffers(buf, note)
	}
	return buf
}

func generateGameOverSound(rng *rand.Rand) floatBuffer {
	buf := oscillator(waveSaw, 220, 55, sampleRate.N(700*time.Millisecond), rng)
	applyEnvelope(buf, 10*time.Millisecond, 400*time.Millisecond)
	return buf
}

// bufferStreamer plays a mono buffer once on both channels
type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

var _ beep.Streamer = (*bufferStreamer)(nil)
