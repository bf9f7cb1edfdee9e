package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"video-player/internal/logging"
	"video-player/internal/player"
	"video-player/internal/playlist"
)

// ListPlaylists returns playlist names. No playlists is an empty list.
func (h *Handlers) ListPlaylists(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	names, err := h.player.ShowAllPlaylists()
	h.mu.Unlock()

	if errors.Is(err, player.ErrNoPlaylists) {
		names = []string{}
	} else if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, names)
}

// CreatePlaylist creates an empty playlist from {"name": "..."}.
func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	name, err := h.player.CreatePlaylist(req.Name)
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, map[string]string{"name": name})
}

// GetPlaylist returns a playlist with its videos in insertion order.
func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	view, err := h.player.ShowPlaylist(mux.Vars(r)["name"])
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, view)
}

// ExportPlaylist renders a playlist as a Windows Media Player (.wpl) file.
func (h *Handlers) ExportPlaylist(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	view, err := h.player.ShowPlaylist(mux.Vars(r)["name"])
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}

	entries := lo.Map(view.Videos, func(v player.VideoSummary, _ int) playlist.Entry {
		return playlist.Entry{ID: v.ID, Title: v.Title}
	})

	var buf bytes.Buffer
	if err := playlist.WriteWPL(&buf, view.Name, entries); err != nil {
		logging.Error("failed to render playlist %s: %v", view.Name, err)
		writeJSONError(w, "failed to render playlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.ms-wpl")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", view.Name+".wpl"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Debug("failed to write playlist export: %v", err)
	}
}

// DeletePlaylist removes a playlist.
func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	err := h.player.DeletePlaylist(mux.Vars(r)["name"])
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearPlaylist removes every video from a playlist.
func (h *Handlers) ClearPlaylist(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	err := h.player.ClearPlaylist(mux.Vars(r)["name"])
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddToPlaylist appends the video named in the body.
func (h *Handlers) AddToPlaylist(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeBody(r, &req, false); err != nil || req.ID == "" {
		writeJSONError(w, "request body must contain a video id", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	video, err := h.player.AddVideoToPlaylist(mux.Vars(r)["name"], req.ID)
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, video)
}

// RemoveFromPlaylist removes one video from a playlist.
func (h *Handlers) RemoveFromPlaylist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	h.mu.Lock()
	video, err := h.player.RemoveFromPlaylist(vars["name"], vars["id"])
	h.mu.Unlock()

	if err != nil {
		writePlayerError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, video)
}
