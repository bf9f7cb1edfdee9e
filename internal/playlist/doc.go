// Package playlist implements named, ordered, duplicate-free collections of
// video ids and the registry that owns them.
//
// Playlist names keep the casing they were created with, but identity is
// case-insensitive: "My List", "my list" and "MY LIST" all resolve to the
// same playlist and only one of them can exist at a time.
//
// Playlists store video ids only. Callers re-check each id against the
// catalog whenever they need the video itself.
//
// The package can also render a playlist as a WPL (Windows Media Player)
// document for download.
package playlist
