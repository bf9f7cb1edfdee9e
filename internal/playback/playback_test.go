package playback

import (
	"errors"
	"testing"
)

func assertState(t *testing.T, s *State, status Status, id string) {
	t.Helper()
	if got := s.Status(); got != status {
		t.Fatalf("Status() = %v, want %v", got, status)
	}
	gotID, paused, ok := s.Current()
	if ok != (status != Empty) {
		t.Fatalf("Current() ok = %v for status %v", ok, status)
	}
	if gotID != id {
		t.Fatalf("Current() id = %q, want %q", gotID, id)
	}
	if paused != (status != Playing) {
		t.Fatalf("Current() paused = %v for status %v", paused, status)
	}
}

func TestInitialState(t *testing.T) {
	assertState(t, New(), Empty, "")

	var zero State
	if zero.Status() != Empty {
		t.Errorf("Zero value should be Empty, got %v", zero.Status())
	}
	if _, paused, _ := zero.Current(); !paused {
		t.Error("Empty slot must report paused")
	}
}

func TestEmptyTransitionsFail(t *testing.T) {
	s := New()

	if _, err := s.Stop(); !errors.Is(err, ErrNothingPlaying) {
		t.Errorf("Stop on Empty = %v, want ErrNothingPlaying", err)
	}
	if _, _, err := s.Pause(); !errors.Is(err, ErrNothingPlaying) {
		t.Errorf("Pause on Empty = %v, want ErrNothingPlaying", err)
	}
	if _, err := s.Continue(); !errors.Is(err, ErrNothingPlaying) {
		t.Errorf("Continue on Empty = %v, want ErrNothingPlaying", err)
	}
	assertState(t, s, Empty, "")
}

func TestPlaySwitchesWithoutStop(t *testing.T) {
	s := New()

	stopped, had := s.Play("v1")
	if had || stopped != "" {
		t.Errorf("First play should not stop anything, got (%q, %v)", stopped, had)
	}
	assertState(t, s, Playing, "v1")

	stopped, had = s.Play("v2")
	if !had || stopped != "v1" {
		t.Errorf("Expected v1 to be stopped, got (%q, %v)", stopped, had)
	}
	assertState(t, s, Playing, "v2")
}

func TestPlayFromPausedResumes(t *testing.T) {
	s := New()
	s.Play("v1")
	if _, _, err := s.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	stopped, had := s.Play("v1")
	if !had || stopped != "v1" {
		t.Errorf("Replaying should stop the paused video first, got (%q, %v)", stopped, had)
	}
	assertState(t, s, Playing, "v1")
}

func TestPauseIdempotent(t *testing.T) {
	s := New()
	s.Play("v1")

	id, already, err := s.Pause()
	if err != nil || already || id != "v1" {
		t.Fatalf("First pause = (%q, %v, %v)", id, already, err)
	}
	assertState(t, s, Paused, "v1")

	id, already, err = s.Pause()
	if err != nil || !already || id != "v1" {
		t.Fatalf("Second pause = (%q, %v, %v), want already paused", id, already, err)
	}
	assertState(t, s, Paused, "v1")
}

func TestContinue(t *testing.T) {
	s := New()
	s.Play("v1")

	if _, err := s.Continue(); !errors.Is(err, ErrNotPaused) {
		t.Errorf("Continue while playing = %v, want ErrNotPaused", err)
	}

	s.Pause()
	id, err := s.Continue()
	if err != nil || id != "v1" {
		t.Fatalf("Continue = (%q, %v)", id, err)
	}
	assertState(t, s, Playing, "v1")
}

func TestFullCycle(t *testing.T) {
	s := New()

	s.Play("v1")
	assertState(t, s, Playing, "v1")

	s.Pause()
	assertState(t, s, Paused, "v1")

	s.Continue()
	assertState(t, s, Playing, "v1")

	id, err := s.Stop()
	if err != nil || id != "v1" {
		t.Fatalf("Stop = (%q, %v)", id, err)
	}
	assertState(t, s, Empty, "")

	if _, _, err := s.Pause(); !errors.Is(err, ErrNothingPlaying) {
		t.Errorf("Pause after stop = %v, want ErrNothingPlaying", err)
	}
}

func TestStopFromPaused(t *testing.T) {
	s := New()
	s.Play("v1")
	s.Pause()

	if _, err := s.Stop(); err != nil {
		t.Fatalf("Stop from paused failed: %v", err)
	}
	assertState(t, s, Empty, "")
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		Empty:      "empty",
		Playing:    "playing",
		Paused:     "paused",
		Status(42): "empty",
	}
	for status, want := range tests {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(status), got, want)
		}
	}
}
