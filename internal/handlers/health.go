package handlers

import (
	"net/http"
	"runtime"
	"time"

	"video-player/internal/startup"
)

var startTime = time.Now()

// HealthResponse contains the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Videos    int    `json:"videos"`
	Playlists int    `json:"playlists"`
	Playback  string `json:"playback"`
	GoVersion string `json:"goVersion"`
}

// HealthCheck reports liveness plus a small summary of player state.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	stats := h.GetStats()

	response := HealthResponse{
		Status:    "healthy",
		Version:   startup.Version,
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Videos:    stats.Videos,
		Playlists: stats.Playlists,
		Playback:  stats.State,
		GoVersion: runtime.Version(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		writeJSON(w, response)
	}
}

// GetVersion returns the application version and build information
func (h *Handlers) GetVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	writeJSONStatus(w, http.StatusOK, startup.GetBuildInfo())
}
