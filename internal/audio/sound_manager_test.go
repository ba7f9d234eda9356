package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayStar()
	sm.PlayPower()
	sm.StartMusic()
	sm.StopMusic()
	sm.SetMuted(true)
	sm.Cleanup()

	if sm.MusicPlaying() {
		t.Error("Music should not play without initialization")
	}
}

// TestSoundManagerMuteBeforeInit verifies the mute flag survives until the device opens
func TestSoundManagerMuteBeforeInit(t *testing.T) {
	sm := NewSoundManager()
	sm.SetMuted(true)

	if !sm.Muted() {
		t.Error("Expected muted after SetMuted(true)")
	}
	if !sm.master.Silent {
		t.Error("Expected master bus to be silent")
	}

	sm.SetMuted(false)
	if sm.Muted() || sm.master.Silent {
		t.Error("Expected unmuted after SetMuted(false)")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.StartMusic()
	if !sm.MusicPlaying() {
		t.Error("Expected music to be playing")
	}
	sm.StopMusic()
	if sm.MusicPlaying() {
		t.Error("Expected music to stop")
	}

	sm.PlayStar()
	sm.PlayPower()
	sm.Cleanup()
}

// TestSoundManagerCleanupWithoutInit verifies cleanup without initialization is safe
func TestSoundManagerCleanupWithoutInit(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cleanup panicked without initialization: %v", r)
		}
	}()

	sm.Cleanup()
	sm.Cleanup()
}
