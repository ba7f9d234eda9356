package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

const (
	blipPeak   = 0.22
	blipFloor  = 0.0001
	blipAttack = 20 * time.Millisecond
)

// blip is a single enveloped oscillator note: silence for delay, then an
// exponential rise to its peak and an exponential fall back to silence.
type blip struct {
	freq   float64
	wave   WaveType
	rate   beep.SampleRate
	peak   float64
	delay  int
	attack int
	length int
	pos    int
	phase  float64
}

func newBlip(rate beep.SampleRate, freq float64, dur time.Duration, wave WaveType, delay time.Duration, gainScale float64) *blip {
	length := max(1, rate.N(dur))
	return &blip{
		freq:   freq,
		wave:   wave,
		rate:   rate,
		peak:   blipPeak * gainScale,
		delay:  rate.N(delay),
		attack: min(length, rate.N(blipAttack)),
		length: length,
	}
}

// NewBlip creates a note streamer that ends after delay+dur.
func NewBlip(rate beep.SampleRate, freq float64, dur time.Duration, wave WaveType, delay time.Duration, gainScale float64) beep.Streamer {
	return newBlip(rate, freq, dur, wave, delay, gainScale)
}

// next returns the next sample, or false once the note is over.
func (b *blip) next() (float64, bool) {
	if b.pos >= b.delay+b.length {
		return 0, false
	}
	i := b.pos - b.delay
	b.pos++
	if i < 0 {
		return 0, true
	}

	val := oscillate(b.wave, b.phase) * b.gain(i)
	b.phase += b.freq / float64(b.rate)
	b.phase -= math.Floor(b.phase)
	return val, true
}

func (b *blip) gain(i int) float64 {
	if i < b.attack {
		return blipFloor * math.Pow(b.peak/blipFloor, float64(i)/float64(b.attack))
	}
	fall := b.length - b.attack
	if fall <= 0 {
		return b.peak
	}
	return b.peak * math.Pow(blipFloor/b.peak, float64(i-b.attack)/float64(fall))
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val, more := b.next()
		if !more {
			return i, i > 0
		}
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }

func oscillate(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// StarCue is the bright two-note chime for a collected star.
func StarCue(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		NewBlip(rate, 1200, 70*time.Millisecond, WaveTriangle, 0, 1),
		NewBlip(rate, 1800, 50*time.Millisecond, WaveSine, 15*time.Millisecond, 1),
	)
}

// PowerCue is the low two-note buzz for a collected power-up.
func PowerCue(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		NewBlip(rate, 240, 100*time.Millisecond, WaveSquare, 0, 1),
		NewBlip(rate, 360, 120*time.Millisecond, WaveSine, 30*time.Millisecond, 1),
	)
}
