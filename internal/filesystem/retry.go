package filesystem

import (
	"errors"
	"os"
	"syscall"
	"time"

	"video-player/internal/logging"
)

// Observer records retry outcomes. operation is the file operation; result is
// "success", "retried" or "failure".
type Observer interface {
	ObserveRetry(operation, result string)
}

var defaultObserver Observer

// SetObserver sets the package-level retry observer. Call once at startup.
func SetObserver(o Observer) {
	defaultObserver = o
}

func observe(operation, result string) {
	if defaultObserver != nil {
		defaultObserver.ObserveRetry(operation, result)
	}
}

// RetryConfig configures retry behavior for filesystem operations
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryConfig returns the defaults used for catalog loading.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

// isNFSStaleError checks if an error is an NFS stale file handle error
func isNFSStaleError(err error) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.ESTALE
}

// withRetry runs fn until it succeeds, fails with a non-ESTALE error, or
// the retry budget is spent.
func withRetry(operation, path string, config RetryConfig, fn func() error) error {
	backoff := config.InitialBackoff

	var err error
	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		err = fn()
		if err == nil {
			if attempt > 0 {
				logging.Info("%s succeeded on retry %d for %s", operation, attempt, path)
				observe(operation, "retried")
			} else {
				observe(operation, "success")
			}
			return nil
		}
		if !isNFSStaleError(err) {
			observe(operation, "failure")
			return err
		}
		if attempt == config.MaxRetries {
			break
		}

		logging.Debug("%s stale file handle for %s, retrying in %v (attempt %d/%d)",
			operation, path, backoff, attempt+1, config.MaxRetries)
		time.Sleep(backoff)

		backoff *= 2
		if backoff > config.MaxBackoff {
			backoff = config.MaxBackoff
		}
	}

	logging.Warn("%s failed after %d retries for %s: %v", operation, config.MaxRetries, path, err)
	observe(operation, "failure")
	return err
}

// OpenWithRetry performs os.Open, retrying on stale file handles.
func OpenWithRetry(path string, config RetryConfig) (*os.File, error) {
	var file *os.File
	err := withRetry("open", path, config, func() error {
		var err error
		file, err = os.Open(path)
		return err
	})
	return file, err
}
