package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"video-player/internal/player"
)

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"HTTPRequestsTotal", HTTPRequestsTotal},
		{"HTTPRequestDuration", HTTPRequestDuration},
		{"HTTPRequestsInFlight", HTTPRequestsInFlight},
		{"PlayerCommandsTotal", PlayerCommandsTotal},
		{"PlaybackState", PlaybackState},
		{"CatalogVideos", CatalogVideos},
		{"PlaylistsTotal", PlaylistsTotal},
		{"DBQueryTotal", DBQueryTotal},
		{"DBQueryDuration", DBQueryDuration},
		{"FilesystemRetryTotal", FilesystemRetryTotal},
		{"AppInfo", AppInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, "ok"},
		{player.ErrVideoNotFound, "video_not_found"},
		{player.ErrPlaylistNotFound, "playlist_not_found"},
		{player.ErrPlaylistExists, "playlist_exists"},
		{player.ErrAlreadyInPlaylist, "already_in_playlist"},
		{player.ErrNotInPlaylist, "not_in_playlist"},
		{player.ErrNothingPlaying, "nothing_playing"},
		{player.ErrNotPaused, "not_paused"},
		{player.ErrNoVideosAvailable, "no_videos"},
		{player.ErrNotImplemented, "not_implemented"},
		{fmt.Errorf("wrapped: %w", player.ErrNotPaused), "not_paused"},
		{errors.New("something else"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := ResultLabel(tt.err); got != tt.expected {
				t.Errorf("ResultLabel(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestCommandObserver(t *testing.T) {
	obs := NewCommandObserver()

	okBefore := testutil.ToFloat64(PlayerCommandsTotal.WithLabelValues("stop", "ok"))
	failBefore := testutil.ToFloat64(PlayerCommandsTotal.WithLabelValues("stop", "nothing_playing"))

	obs.ObserveCommand("stop", nil)
	obs.ObserveCommand("stop", player.ErrNothingPlaying)
	obs.ObserveCommand("stop", player.ErrNothingPlaying)

	if got := testutil.ToFloat64(PlayerCommandsTotal.WithLabelValues("stop", "ok")) - okBefore; got != 1 {
		t.Errorf("Expected 1 ok stop, got %v", got)
	}
	if got := testutil.ToFloat64(PlayerCommandsTotal.WithLabelValues("stop", "nothing_playing")) - failBefore; got != 2 {
		t.Errorf("Expected 2 failed stops, got %v", got)
	}
}

func TestFilesystemObserver(t *testing.T) {
	obs := NewFilesystemObserver()
	counter := FilesystemRetryTotal.WithLabelValues("open", "retried")
	before := testutil.ToFloat64(counter)

	obs.ObserveRetry("open", "retried")

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected 1 retried open, got %v", got)
	}
}

func TestInitializeMetrics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("InitializeMetrics panicked: %v", r)
		}
	}()
	InitializeMetrics()
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.0.0", "abc123", "go1.25")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", "abc123", "go1.25")); got != 1 {
		t.Errorf("Expected app info gauge of 1, got %v", got)
	}
}
