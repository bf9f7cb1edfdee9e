package player

import (
	"slices"

	"video-player/internal/catalog"
	"video-player/internal/playback"
)

// VideoSummary is the view of a catalog video handed to callers.
type VideoSummary struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func summarize(v catalog.VideoRecord) VideoSummary {
	tags := slices.Clone(v.Tags)
	if tags == nil {
		tags = []string{}
	}
	return VideoSummary{ID: v.ID, Title: v.Title, Tags: tags}
}

// String renders "Title (id) [#tag1 #tag2]".
func (v VideoSummary) String() string {
	return catalog.VideoRecord{ID: v.ID, Title: v.Title, Tags: v.Tags}.String()
}

// PlayResult reports a Play or PlayRandom. Stopped is set when another video
// was loaded and had to be stopped first.
type PlayResult struct {
	Stopped *VideoSummary `json:"stopped,omitempty"`
	Playing VideoSummary  `json:"playing"`
}

// PauseResult reports a Pause. AlreadyPaused is set when the video was
// paused before the call.
type PauseResult struct {
	Video         VideoSummary `json:"video"`
	AlreadyPaused bool         `json:"alreadyPaused"`
}

// PlaybackSnapshot is the read-only view returned by ShowPlaying.
type PlaybackSnapshot struct {
	Video  VideoSummary `json:"video"`
	Paused bool         `json:"paused"`
}

// PlaylistView is a playlist resolved against the catalog.
type PlaylistView struct {
	Name   string         `json:"name"`
	Videos []VideoSummary `json:"videos"`
}

// Stats is a point-in-time summary used for metrics.
type Stats struct {
	Videos    int
	Playlists int
	Status    playback.Status
}
