package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"video-player/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all application configuration
type Config struct {
	CatalogFile     string
	DatabaseDir     string
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	MetricsInterval time.Duration
	LogHealthChecks bool
	RandomSeed      uint64

	// Derived
	DatabasePath    string
	DatabaseEnabled bool
}

// LoadConfig loads and validates configuration from environment variables.
// When quiet is set the banner and per-setting lines are logged at debug
// level only, which keeps the REPL output clean.
func LoadConfig(quiet bool) (*Config, error) {
	info := logging.Info
	if quiet {
		info = logging.Debug
	} else {
		printBanner()
	}

	info("------------------------------------------------------------")
	info("CONFIGURATION")
	info("------------------------------------------------------------")

	catalogFile := getEnv("CATALOG_FILE", "videos.txt")
	databaseDir := getEnv("DATABASE_DIR", "")
	port := getEnv("PORT", "8080")
	metricsPort := getEnv("METRICS_PORT", "9090")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	metricsIntervalStr := getEnv("METRICS_INTERVAL", "1m")
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", true)
	randomSeedStr := getEnv("RANDOM_SEED", "0")

	info("  CATALOG_FILE:        %s", catalogFile)
	info("  DATABASE_DIR:        %s", databaseDir)
	info("  PORT:                %s", port)
	info("  METRICS_PORT:        %s", metricsPort)
	info("  METRICS_ENABLED:     %v", metricsEnabled)
	info("  METRICS_INTERVAL:    %s", metricsIntervalStr)
	info("  LOG_HEALTH_CHECKS:   %v", logHealthChecks)
	info("  RANDOM_SEED:         %s", randomSeedStr)
	info("  LOG_LEVEL:           %s", logging.GetLevel())

	metricsInterval, err := time.ParseDuration(metricsIntervalStr)
	if err != nil || metricsInterval <= 0 {
		logging.Warn("  Invalid METRICS_INTERVAL, using default: 1m")
		metricsInterval = time.Minute
	}

	randomSeed, err := strconv.ParseUint(randomSeedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED %q: %w", randomSeedStr, err)
	}

	config := &Config{
		CatalogFile:     catalogFile,
		DatabaseDir:     databaseDir,
		Port:            port,
		MetricsPort:     metricsPort,
		MetricsEnabled:  metricsEnabled,
		MetricsInterval: metricsInterval,
		LogHealthChecks: logHealthChecks,
		RandomSeed:      randomSeed,
	}

	if databaseDir != "" {
		databaseDir, err = filepath.Abs(databaseDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database directory path: %w", err)
		}
		if err := ensureDirectory(databaseDir); err != nil {
			return nil, fmt.Errorf("database directory error: %w", err)
		}
		config.DatabaseDir = databaseDir
		config.DatabasePath = filepath.Join(databaseDir, "catalog.db")
		config.DatabaseEnabled = true
	}

	info("")
	info("  Catalog source:  %s", config.CatalogSource())
	info("  Metrics:         %s", enabledString(config.MetricsEnabled))

	return config, nil
}

// CatalogSource describes where the catalog is loaded from.
func (c *Config) CatalogSource() string {
	if c.DatabaseEnabled {
		return "database " + c.DatabasePath
	}
	return "file " + c.CatalogFile
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogCatalogLoaded logs catalog loading
func LogCatalogLoaded(videos int, duration time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("CATALOG")
	logging.Info("------------------------------------------------------------")
	logging.Info("  [OK] %d videos loaded in %v", videos, duration)
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Application:   http://0.0.0.0:%s", config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:       http://0.0.0.0:%s/metrics", config.MetricsPort)
	} else {
		logging.Info("    Metrics:       DISABLED")
	}
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
	logging.Info("")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

func printBanner() {
	logging.Info("------------------------------------------------------------")
	logging.Info("  VIDEO PLAYER")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Go version: %s (%s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func ensureDirectory(path string) error {
	logging.Debug("  Checking database directory: %s", path)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		logging.Debug("    [OK] Created directory: %s", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
