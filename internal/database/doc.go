// Package database provides a SQLite-backed catalog store for the video
// player.
//
// The store holds the video catalog only: ids, titles and ordered tags.
// Playback state and playlists are never written here. A catalog text file
// can be imported once with `video-player import` and later startups load
// the catalog from the database instead of the file.
//
// The database uses WAL mode and creates its schema on open.
package database
