// Package audio synthesizes the game's sound cues and background loop with beep.
// A manager that fails to open the output device stays silent; audio is never fatal.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	masterGain   = 0.36
	musicGain    = 0.18
	filterCutoff = 1600
)

// SoundManager manages all game audio.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
	}
	sm.master = newVolume(sm.mixer, masterGain)
	return sm
}

// newVolume wraps s at a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Initialize opens the output device and starts the master bus.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	if err != nil {
		return err
	}

	sm.master.Silent = sm.muted
	speaker.Play(newLowpass(sm.master, sampleRate, filterCutoff))
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}

// SetMuted silences or restores the master bus. It may be called before Initialize.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		sm.master.Silent = muted
		return
	}
	speaker.Lock()
	sm.master.Silent = muted
	speaker.Unlock()
}

// Muted reports whether the master bus is silent.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayStar plays the star pickup chime.
func (sm *SoundManager) PlayStar() {
	sm.play(StarCue(sampleRate))
}

// PlayPower plays the power-up pickup buzz.
func (sm *SoundManager) PlayPower() {
	sm.play(PowerCue(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts the background loop unless it is already playing.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(sampleRate), musicGain)}
	speaker.Lock()
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic stops the background loop. The mixer drops it on its next read.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// MusicPlaying reports whether the background loop is running.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil
}
