package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Add(ActionNone)
	f.Add(ActionFlap)
	f.Add(ActionMute)

	if len(f.Actions) != 2 {
		t.Fatalf("len(Actions) = %d, expected 2", len(f.Actions))
	}
	if !f.Has(ActionFlap) || !f.Has(ActionMute) {
		t.Error("expected frame to contain Flap and Mute")
	}
	if f.Has(ActionQuit) {
		t.Error("frame should not contain Quit")
	}

	f.Clear()
	if f.Has(ActionFlap) {
		t.Error("frame should be empty after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionFlap, "Flap"},
		{ActionRestart, "Restart"},
		{ActionScreenshot, "Screenshot"},
		{Action(99), "None"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
