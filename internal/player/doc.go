// Package player is the command surface of the video player.
//
// A Player composes a read-only catalog, the playback state machine and the
// playlist registry. Every user command is a method that validates its
// inputs against the catalog and registry, applies at most one state change
// and returns a structured result or one of the sentinel errors below. The
// player never produces user-facing text; the console and handlers packages
// render results.
//
// A Player is not safe for concurrent use. Callers that serve concurrent
// requests must serialise access themselves.
//
// Error precedence for playlist membership commands is playlist, then
// video, then membership: adding an unknown video to an unknown playlist
// reports ErrPlaylistNotFound.
package player
