// Package logging provides a small leveled logger for the video player.
//
// Levels, from most to least verbose:
//   - DEBUG: per-command tracing of the player
//   - INFO: startup, configuration and server lifecycle messages
//   - WARN: recoverable problems such as skipped catalog entries
//   - ERROR: failures that abort an operation
//
// The level is read once from the DEBUG or LOG_LEVEL environment variables
// and can be overridden at runtime with SetLevel (the CLI does this for its
// --log-level flag).
package logging
