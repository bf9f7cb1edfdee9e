package metrics

import (
	"sync"
	"time"

	"video-player/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds the current statistics
type Stats struct {
	Videos    int
	Playlists int
	State     string // "empty", "playing" or "paused"
}

// Collector periodically collects and updates metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
	stopOnce      sync.Once
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection. It is safe to call more than once.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	CatalogVideos.Set(float64(stats.Videos))
	PlaylistsTotal.Set(float64(stats.Playlists))
	for _, state := range []string{"empty", "playing", "paused"} {
		v := 0.0
		if state == stats.State {
			v = 1
		}
		PlaybackState.WithLabelValues(state).Set(v)
	}

	logging.Debug("Metrics collected: videos=%d, playlists=%d, state=%s",
		stats.Videos, stats.Playlists, stats.State)
}
