// Package startup handles configuration loading and startup/shutdown
// logging for the video player.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig]:
//
//   - CATALOG_FILE: Catalog text file (default: videos.txt)
//   - DATABASE_DIR: Directory for the SQLite catalog store (default: empty, store disabled)
//   - PORT: HTTP server port for `serve` (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable the metrics server (default: true)
//   - METRICS_INTERVAL: Gauge refresh interval as Go duration (default: 1m)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//   - RANDOM_SEED: Seed for PLAY_RANDOM, 0 means time based (default: 0)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo].
package startup
