package playlist

import (
	"errors"
	"slices"
)

var (
	// ErrAlreadyInPlaylist is returned when adding an id that is already present.
	ErrAlreadyInPlaylist = errors.New("video already in playlist")
	// ErrNotInPlaylist is returned when removing an id that is not present.
	ErrNotInPlaylist = errors.New("video is not in playlist")
)

// Playlist is an ordered list of video ids with no duplicates.
type Playlist struct {
	name     string
	videoIDs []string
}

func newPlaylist(name string) *Playlist {
	return &Playlist{name: name, videoIDs: []string{}}
}

// Name returns the name with its original casing.
func (p *Playlist) Name() string {
	return p.name
}

// VideoIDs returns a copy of the ids in insertion order.
func (p *Playlist) VideoIDs() []string {
	return slices.Clone(p.videoIDs)
}

// Len returns the number of videos in the playlist.
func (p *Playlist) Len() int {
	return len(p.videoIDs)
}

// Contains reports whether id is in the playlist.
func (p *Playlist) Contains(id string) bool {
	return slices.Contains(p.videoIDs, id)
}

// Add appends id to the end of the playlist.
func (p *Playlist) Add(id string) error {
	if p.Contains(id) {
		return ErrAlreadyInPlaylist
	}
	p.videoIDs = append(p.videoIDs, id)
	return nil
}

// Remove deletes the entry for id, keeping the order of the others.
func (p *Playlist) Remove(id string) error {
	idx := slices.Index(p.videoIDs, id)
	if idx < 0 {
		return ErrNotInPlaylist
	}
	p.videoIDs = slices.Delete(p.videoIDs, idx, idx+1)
	return nil
}

// Clear removes every video.
func (p *Playlist) Clear() {
	p.videoIDs = p.videoIDs[:0]
}
