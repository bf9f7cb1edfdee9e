package handlers

import (
	"errors"
	"net/http"

	"video-player/internal/player"
)

// SearchVideos returns videos whose title contains the q parameter.
// No match is an empty list, not an error.
func (h *Handlers) SearchVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSONError(w, "missing query parameter q", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	results, err := h.player.SearchVideos(query)
	h.mu.Unlock()

	if errors.Is(err, player.ErrNoSearchResults) {
		results = []player.VideoSummary{}
	} else if err != nil {
		writePlayerError(w, err)
		return
	}

	writeJSONStatus(w, http.StatusOK, results)
}

// SearchVideosWithTag searches by tag. Reserved: always 501.
func (h *Handlers) SearchVideosWithTag(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeJSONError(w, "missing query parameter tag", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	results, err := h.player.SearchVideosWithTag(tag)
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, results)
}
