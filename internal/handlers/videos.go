package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListVideos returns every catalog video in display order.
func (h *Handlers) ListVideos(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	videos := h.player.ShowAllVideos()
	h.mu.Unlock()

	writeJSONStatus(w, http.StatusOK, videos)
}

// CountVideos returns the catalog size.
func (h *Handlers) CountVideos(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	count := h.player.NumberOfVideos()
	h.mu.Unlock()

	writeJSONStatus(w, http.StatusOK, map[string]int{"count": count})
}

// FlagVideo marks a video as flagged. Reserved: always 501.
func (h *Handlers) FlagVideo(w http.ResponseWriter, r *http.Request) {
	var req flagRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	err := h.player.FlagVideo(mux.Vars(r)["id"], req.Reason)
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AllowVideo clears a flag. Reserved: always 501.
func (h *Handlers) AllowVideo(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	err := h.player.AllowVideo(mux.Vars(r)["id"])
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
