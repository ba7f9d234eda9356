package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	musicBPM   = 160
	musicSteps = 16
)

var bassLine = [...]float64{110, 110, 147, 98}

// MusicGenerator streams an endless sixteenth-note drum and bass loop.
type MusicGenerator struct {
	rate   beep.SampleRate
	stepN  int
	pos    int
	step   int
	voices []*blip
}

// NewMusicGenerator creates the background loop.
func NewMusicGenerator(rate beep.SampleRate) *MusicGenerator {
	beat := time.Minute / musicBPM
	return &MusicGenerator{
		rate:  rate,
		stepN: max(1, rate.N(beat/4)),
	}
}

// trigger starts the voices of one sixteenth step.
func (g *MusicGenerator) trigger(i int) {
	step := i % musicSteps
	g.voices = append(g.voices, newBlip(g.rate, 2600, 20*time.Millisecond, WaveSquare, 0, 0.35))
	if step == 0 || step == 8 {
		g.voices = append(g.voices, newBlip(g.rate, 90, 100*time.Millisecond, WaveSine, 5*time.Millisecond, 0.85))
	}
	if step == 4 || step == 12 {
		g.voices = append(g.voices, newBlip(g.rate, 520, 70*time.Millisecond, WaveTriangle, 10*time.Millisecond, 0.65))
	}
	if step%4 == 0 {
		bass := bassLine[(i/4)%len(bassLine)]
		g.voices = append(g.voices, newBlip(g.rate, bass, 180*time.Millisecond, WaveSquare, 30*time.Millisecond, 0.6))
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos%g.stepN == 0 {
			g.trigger(g.step)
			g.step++
		}

		sum := 0.0
		live := g.voices[:0]
		for _, v := range g.voices {
			val, more := v.next()
			if more {
				sum += val
				live = append(live, v)
			}
		}
		clear(g.voices[len(live):])
		g.voices = live

		samples[i][0] = sum
		samples[i][1] = sum
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }

// Step returns how many sixteenth steps have been triggered.
func (g *MusicGenerator) Step() int {
	return g.step
}
