package player

import (
	"errors"

	"video-player/internal/playback"
	"video-player/internal/playlist"
)

var (
	// ErrVideoNotFound is returned when a video id is not in the catalog.
	ErrVideoNotFound = errors.New("video does not exist")
	// ErrNoVideosAvailable is returned by PlayRandom on an empty catalog.
	ErrNoVideosAvailable = errors.New("no videos available")
	// ErrNoPlaylists is returned by ShowAllPlaylists when none exist.
	ErrNoPlaylists = errors.New("no playlists exist yet")
	// ErrNoSearchResults is returned when a search matches nothing.
	ErrNoSearchResults = errors.New("no search results")
	// ErrNotImplemented marks commands that exist but have no behaviour.
	ErrNotImplemented = errors.New("not implemented")

	ErrPlaylistNotFound    = playlist.ErrPlaylistNotFound
	ErrPlaylistExists      = playlist.ErrPlaylistExists
	ErrInvalidPlaylistName = playlist.ErrInvalidName
	ErrAlreadyInPlaylist   = playlist.ErrAlreadyInPlaylist
	ErrNotInPlaylist       = playlist.ErrNotInPlaylist
	ErrNothingPlaying      = playback.ErrNothingPlaying
	ErrNotPaused           = playback.ErrNotPaused
)
