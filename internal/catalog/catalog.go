package catalog

import (
	"strings"

	"video-player/internal/logging"
)

// VideoRecord is a single immutable catalog entry.
type VideoRecord struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// String renders the record as "Title (id) [#tag1 #tag2]".
func (v VideoRecord) String() string {
	return v.Title + " (" + v.ID + ") [" + strings.Join(v.Tags, " ") + "]"
}

// Catalog is the read-only view of available videos consumed by the player.
type Catalog interface {
	// All returns every video in a deterministic order.
	All() []VideoRecord
	// Get looks a video up by its id.
	Get(id string) (VideoRecord, bool)
	// Len returns the number of videos.
	Len() int
}

// Library is the in-memory Catalog implementation.
type Library struct {
	videos []VideoRecord
	byID   map[string]int
}

// NewLibrary builds a Library from records in load order. Records are
// copied; a repeated id keeps the first occurrence.
func NewLibrary(records []VideoRecord) *Library {
	lib := &Library{
		videos: make([]VideoRecord, 0, len(records)),
		byID:   make(map[string]int, len(records)),
	}

	for _, r := range records {
		if _, exists := lib.byID[r.ID]; exists {
			logging.Warn("Duplicate video id %q in catalog, keeping first entry", r.ID)
			continue
		}
		r.Tags = append([]string(nil), r.Tags...)
		lib.byID[r.ID] = len(lib.videos)
		lib.videos = append(lib.videos, r)
	}

	return lib
}

// All returns a copy of the videos in load order.
func (l *Library) All() []VideoRecord {
	out := make([]VideoRecord, len(l.videos))
	copy(out, l.videos)
	return out
}

// Get returns the video with the given id.
func (l *Library) Get(id string) (VideoRecord, bool) {
	idx, ok := l.byID[id]
	if !ok {
		return VideoRecord{}, false
	}
	return l.videos[idx], true
}

// Len returns the number of videos in the library.
func (l *Library) Len() int {
	return len(l.videos)
}
