package handlers

import (
	"sync"

	"video-player/internal/metrics"
	"video-player/internal/player"
)

// Handlers serves the HTTP API for one player instance.
type Handlers struct {
	mu     sync.Mutex
	player *player.Player
}

// New creates handlers over p.
func New(p *player.Player) *Handlers {
	return &Handlers{player: p}
}

// GetStats implements metrics.StatsProvider.
func (h *Handlers) GetStats() metrics.Stats {
	h.mu.Lock()
	stats := h.player.Stats()
	h.mu.Unlock()

	return metrics.Stats{
		Videos:    stats.Videos,
		Playlists: stats.Playlists,
		State:     stats.Status.String(),
	}
}
