package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_player_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Player metrics
var (
	PlayerCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_commands_total",
			Help: "Total number of player commands by outcome",
		},
		[]string{"command", "result"},
	)

	PlaybackState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "video_player_playback_state",
			Help: "Current playback state (1 for the active state, 0 otherwise)",
		},
		[]string{"state"}, // "empty", "playing", "paused"
	)

	CatalogVideos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_catalog_videos",
			Help: "Number of videos in the catalog",
		},
	)

	PlaylistsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_player_playlists",
			Help: "Number of playlists",
		},
	)
)

// Catalog store metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_db_queries_total",
			Help: "Total number of catalog database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_player_db_query_duration_seconds",
			Help:    "Catalog database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

// Filesystem metrics
var (
	FilesystemRetryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_player_filesystem_operations_total",
			Help: "Filesystem operations by outcome (success, retried after stale NFS handle, failure)",
		},
		[]string{"operation", "result"},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "video_player_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
