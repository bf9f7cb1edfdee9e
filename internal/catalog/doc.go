// Package catalog holds the read-only set of videos the player can work with.
//
// A catalog is loaded once at startup, either from a text file in the
// "Title | video_id | #tag1 , #tag2" line format or from the SQLite store in
// the database package, and is never mutated afterwards.
package catalog
