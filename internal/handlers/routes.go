package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes installs every API route on router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/videos", h.ListVideos).Methods(http.MethodGet)
	api.HandleFunc("/videos/count", h.CountVideos).Methods(http.MethodGet)
	api.HandleFunc("/videos/{id}/flag", h.FlagVideo).Methods(http.MethodPost)
	api.HandleFunc("/videos/{id}/allow", h.AllowVideo).Methods(http.MethodPost)

	api.HandleFunc("/search", h.SearchVideos).Methods(http.MethodGet)
	api.HandleFunc("/search/tag", h.SearchVideosWithTag).Methods(http.MethodGet)

	api.HandleFunc("/playback", h.GetPlayback).Methods(http.MethodGet)
	api.HandleFunc("/playback/play", h.Play).Methods(http.MethodPost)
	api.HandleFunc("/playback/random", h.PlayRandom).Methods(http.MethodPost)
	api.HandleFunc("/playback/stop", h.Stop).Methods(http.MethodPost)
	api.HandleFunc("/playback/pause", h.Pause).Methods(http.MethodPost)
	api.HandleFunc("/playback/continue", h.Continue).Methods(http.MethodPost)

	api.HandleFunc("/playlists", h.ListPlaylists).Methods(http.MethodGet)
	api.HandleFunc("/playlists", h.CreatePlaylist).Methods(http.MethodPost)
	api.HandleFunc("/playlists/{name}", h.GetPlaylist).Methods(http.MethodGet)
	api.HandleFunc("/playlists/{name}", h.DeletePlaylist).Methods(http.MethodDelete)
	api.HandleFunc("/playlists/{name}/wpl", h.ExportPlaylist).Methods(http.MethodGet)
	api.HandleFunc("/playlists/{name}/clear", h.ClearPlaylist).Methods(http.MethodPost)
	api.HandleFunc("/playlists/{name}/videos", h.AddToPlaylist).Methods(http.MethodPost)
	api.HandleFunc("/playlists/{name}/videos/{id}", h.RemoveFromPlaylist).Methods(http.MethodDelete)
}
