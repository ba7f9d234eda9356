package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// lowpass is a one-pole low-pass filter that softens the square voices.
type lowpass struct {
	streamer beep.Streamer
	alpha    float64
	prev     [2]float64
}

func newLowpass(s beep.Streamer, rate beep.SampleRate, cutoff float64) *lowpass {
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / float64(rate)
	return &lowpass{streamer: s, alpha: dt / (rc + dt)}
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			l.prev[c] += l.alpha * (samples[i][c] - l.prev[c])
			samples[i][c] = l.prev[c]
		}
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }
