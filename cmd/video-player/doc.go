// Package main provides the entry point for the video player.
//
// The video player manages a single playback slot and any number of named
// playlists over a fixed catalog of videos. The catalog is read from a text
// file (CATALOG_FILE) or, when DATABASE_DIR is set, from a SQLite store
// populated by the import command.
//
// # Commands
//
//   - repl (default): interactive command loop on stdin/stdout
//   - serve: JSON HTTP API with Prometheus metrics
//   - import [file]: load a catalog text file into the SQLite store
//
// # HTTP Server
//
// serve runs two HTTP servers:
//
//  1. Main Server (default port 8080): the /api routes, /health and /version
//  2. Metrics Server (default port 9090, optional): /metrics and /health
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM, serve stops the metrics collector, then shuts both
// servers down with a 30 second deadline.
package main
