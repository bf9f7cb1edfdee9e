// Package console implements the interactive command loop of the video
// player. Each input line is one command; command words are
// case-insensitive and arguments are separated by whitespace. Results and
// errors from player.Player are rendered as plain text lines.
package console
