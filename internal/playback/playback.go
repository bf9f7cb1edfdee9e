// Package playback tracks the single "currently playing" slot.
package playback

import "errors"

var (
	// ErrNothingPlaying is returned by Stop, Pause and Continue from Empty.
	ErrNothingPlaying = errors.New("no video is currently playing")
	// ErrNotPaused is returned by Continue while a video is playing.
	ErrNotPaused = errors.New("video is not paused")
)

// Status is the coarse state of the slot.
type Status int

const (
	// Empty means no video is loaded.
	Empty Status = iota
	// Playing means a video is loaded and running.
	Playing
	// Paused means a video is loaded but paused.
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "empty"
	}
}

// State holds the current video id and whether it is paused. The zero value
// is Empty. An empty slot always reports paused.
type State struct {
	videoID string
	paused  bool
	loaded  bool
}

// New returns an Empty state.
func New() *State {
	return &State{paused: true}
}

// Status returns Empty, Playing or Paused.
func (s *State) Status() Status {
	switch {
	case !s.loaded:
		return Empty
	case s.paused:
		return Paused
	default:
		return Playing
	}
}

// Current returns the loaded video id and paused flag. ok is false when Empty.
func (s *State) Current() (id string, paused bool, ok bool) {
	if !s.loaded {
		return "", true, false
	}
	return s.videoID, s.paused, true
}

// Play switches to id from any state. When a video was already loaded its
// id is returned as stopped with hadPrevious set.
func (s *State) Play(id string) (stopped string, hadPrevious bool) {
	if s.loaded {
		stopped, hadPrevious = s.videoID, true
	}
	s.videoID = id
	s.loaded = true
	s.paused = false
	return stopped, hadPrevious
}

// Stop unloads the current video and returns its id.
func (s *State) Stop() (string, error) {
	if !s.loaded {
		return "", ErrNothingPlaying
	}
	id := s.videoID
	s.videoID = ""
	s.loaded = false
	s.paused = true
	return id, nil
}

// Pause pauses the current video. Pausing an already paused video leaves
// the state unchanged and reports alreadyPaused.
func (s *State) Pause() (id string, alreadyPaused bool, err error) {
	if !s.loaded {
		return "", false, ErrNothingPlaying
	}
	if s.paused {
		return s.videoID, true, nil
	}
	s.paused = true
	return s.videoID, false, nil
}

// Continue resumes a paused video.
func (s *State) Continue() (string, error) {
	if !s.loaded {
		return "", ErrNothingPlaying
	}
	if !s.paused {
		return "", ErrNotPaused
	}
	s.paused = false
	return s.videoID, nil
}
