// Package metrics provides Prometheus instrumentation for the video player.
//
// All metrics are prefixed with "video_player_" and registered with the
// default registry through promauto.
//
// # Metric Categories
//
// ## HTTP Metrics
//   - HTTPRequestsTotal: Counter of requests by method, path and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of requests being processed
//
// ## Player Metrics
//   - PlayerCommandsTotal: Counter of player commands by command and result
//   - PlaybackState: Gauge set to 1 for the current state (empty/playing/paused)
//   - CatalogVideos: Gauge of videos in the catalog
//   - PlaylistsTotal: Gauge of existing playlists
//
// ## Catalog Store Metrics
//   - DBQueryTotal: Counter of SQLite catalog queries by operation and status
//   - DBQueryDuration: Histogram of query duration by operation
//
// ## Filesystem Metrics
//   - FilesystemRetryTotal: Counter of catalog file opens by outcome
//     (success, retried, failure). Wired through NewFilesystemObserver.
//
// # Recording Metrics
//
// Player commands are recorded by passing NewCommandObserver to
// player.WithObserver. Gauges are refreshed by a Collector:
//
//	collector := metrics.NewCollector(statsProvider, 1*time.Minute)
//	collector.Start()
//	defer collector.Stop()
//
// Expose them by mounting promhttp.Handler() on the metrics server.
//
// # Prometheus Queries
//
// Failed commands per second by reason:
//
//	sum(rate(video_player_commands_total{result!="ok"}[5m])) by (command, result)
package metrics
