package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, state := range []string{"empty", "playing", "paused"} {
		PlaybackState.WithLabelValues(state)
	}

	for _, cmd := range []string{"play", "play_random", "stop", "pause", "continue", "show_playing",
		"create_playlist", "add_to_playlist", "remove_from_playlist", "clear_playlist",
		"delete_playlist", "show_playlist", "show_all_playlists", "search_videos"} {
		PlayerCommandsTotal.WithLabelValues(cmd, "ok")
	}

	for _, result := range []string{"success", "retried", "failure"} {
		FilesystemRetryTotal.WithLabelValues("open", result)
	}

	for _, op := range []string{"initialize_schema", "import_videos", "load_videos"} {
		DBQueryTotal.WithLabelValues(op, "success")
		DBQueryTotal.WithLabelValues(op, "error")
		DBQueryDuration.WithLabelValues(op)
	}
}
