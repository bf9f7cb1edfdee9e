// Package handlers exposes the video player over a JSON HTTP API.
//
// A single [Handlers] value owns one player.Player and serialises every
// call through a mutex, since the player itself is not safe for concurrent
// use. Errors are returned as {"error": "..."} with a status derived from
// the player's sentinel errors:
//
//   - 404: unknown video or playlist
//   - 400: invalid playlist name or malformed request body
//   - 409: state conflicts (nothing playing, not paused, duplicates)
//   - 501: reserved commands (tag search, flagging)
package handlers
