package metrics

import (
	"errors"

	"video-player/internal/filesystem"
	"video-player/internal/player"
)

// commandObserver implements player.Observer using PlayerCommandsTotal.
type commandObserver struct{}

// NewCommandObserver returns an observer that counts player commands.
func NewCommandObserver() player.Observer {
	return commandObserver{}
}

func (commandObserver) ObserveCommand(command string, err error) {
	PlayerCommandsTotal.WithLabelValues(command, ResultLabel(err)).Inc()
}

var resultLabels = []struct {
	err   error
	label string
}{
	{player.ErrVideoNotFound, "video_not_found"},
	{player.ErrPlaylistNotFound, "playlist_not_found"},
	{player.ErrPlaylistExists, "playlist_exists"},
	{player.ErrInvalidPlaylistName, "invalid_name"},
	{player.ErrAlreadyInPlaylist, "already_in_playlist"},
	{player.ErrNotInPlaylist, "not_in_playlist"},
	{player.ErrNothingPlaying, "nothing_playing"},
	{player.ErrNotPaused, "not_paused"},
	{player.ErrNoVideosAvailable, "no_videos"},
	{player.ErrNoPlaylists, "no_playlists"},
	{player.ErrNoSearchResults, "no_results"},
	{player.ErrNotImplemented, "not_implemented"},
}

// ResultLabel maps a command error to a bounded label value.
func ResultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	for _, r := range resultLabels {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "error"
}

// filesystemObserver implements filesystem.Observer using FilesystemRetryTotal.
type filesystemObserver struct{}

// NewFilesystemObserver returns an observer that counts filesystem retries.
func NewFilesystemObserver() filesystem.Observer {
	return filesystemObserver{}
}

func (filesystemObserver) ObserveRetry(operation, result string) {
	FilesystemRetryTotal.WithLabelValues(operation, result).Inc()
}
