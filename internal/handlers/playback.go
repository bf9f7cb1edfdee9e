package handlers

import (
	"errors"
	"net/http"

	"video-player/internal/player"
)

// PlaybackResponse describes the playback slot.
type PlaybackResponse struct {
	Status string               `json:"status"`
	Video  *player.VideoSummary `json:"video,omitempty"`
}

// GetPlayback returns the current playback slot. An empty slot is reported
// with status "empty" rather than an error.
func (h *Handlers) GetPlayback(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	snapshot, err := h.player.ShowPlaying()
	h.mu.Unlock()

	if errors.Is(err, player.ErrNothingPlaying) {
		writeJSONStatus(w, http.StatusOK, PlaybackResponse{Status: "empty"})
		return
	}
	if err != nil {
		writePlayerError(w, err)
		return
	}

	status := "playing"
	if snapshot.Paused {
		status = "paused"
	}
	writeJSONStatus(w, http.StatusOK, PlaybackResponse{Status: status, Video: &snapshot.Video})
}

// Play starts the video named in the body, stopping any current one.
func (h *Handlers) Play(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeBody(r, &req, false); err != nil || req.ID == "" {
		writeJSONError(w, "request body must contain a video id", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	result, err := h.player.Play(req.ID)
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, result)
}

// PlayRandom starts a uniformly chosen catalog video.
func (h *Handlers) PlayRandom(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	result, err := h.player.PlayRandom()
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, result)
}

// Stop empties the playback slot and returns the stopped video.
func (h *Handlers) Stop(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	video, err := h.player.Stop()
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, map[string]player.VideoSummary{"stopped": video})
}

// Pause pauses the current video. Pausing twice is not an error.
func (h *Handlers) Pause(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	result, err := h.player.Pause()
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, result)
}

// Continue resumes a paused video.
func (h *Handlers) Continue(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	video, err := h.player.Continue()
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, map[string]player.VideoSummary{"continued": video})
}
