package player

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/samber/lo"

	"video-player/internal/catalog"
	"video-player/internal/logging"
	"video-player/internal/playback"
	"video-player/internal/playlist"
)

// Observer is notified after every command with its outcome.
type Observer interface {
	ObserveCommand(command string, err error)
}

// Option configures a Player.
type Option func(*Player)

// WithRand makes PlayRandom draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(p *Player) {
		p.intN = r.IntN
	}
}

// WithObserver registers an Observer for command outcomes.
func WithObserver(o Observer) Option {
	return func(p *Player) {
		p.observer = o
	}
}

// Player holds the playback slot and playlists for one user.
type Player struct {
	catalog   catalog.Catalog
	state     *playback.State
	playlists *playlist.Registry
	intN      func(int) int
	observer  Observer
}

// New creates a Player over cat with an empty slot and no playlists.
func New(cat catalog.Catalog, opts ...Option) *Player {
	p := &Player{
		catalog:   cat,
		state:     playback.New(),
		playlists: playlist.NewRegistry(),
		intN:      rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Player) observe(command string, err error) {
	if err != nil {
		logging.Debug("player: %s failed: %v", command, err)
	} else {
		logging.Debug("player: %s ok", command)
	}
	if p.observer != nil {
		p.observer.ObserveCommand(command, err)
	}
}

func (p *Player) video(id string) (VideoSummary, error) {
	v, ok := p.catalog.Get(id)
	if !ok {
		return VideoSummary{}, ErrVideoNotFound
	}
	return summarize(v), nil
}

func sortByDisplay(videos []VideoSummary) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].String() < videos[j].String()
	})
}

// NumberOfVideos returns the size of the catalog.
func (p *Player) NumberOfVideos() int {
	p.observe("number_of_videos", nil)
	return p.catalog.Len()
}

// ShowAllVideos returns every catalog video ordered by its display string.
// The ordering is case-sensitive, so "Zebra" sorts before "banana".
func (p *Player) ShowAllVideos() []VideoSummary {
	videos := lo.Map(p.catalog.All(), func(v catalog.VideoRecord, _ int) VideoSummary {
		return summarize(v)
	})
	sortByDisplay(videos)
	p.observe("show_all_videos", nil)
	return videos
}

// Play starts the video with the given id, stopping any loaded video first.
func (p *Player) Play(id string) (PlayResult, error) {
	res, err := p.play(id)
	p.observe("play", err)
	return res, err
}

func (p *Player) play(id string) (PlayResult, error) {
	next, err := p.video(id)
	if err != nil {
		return PlayResult{}, err
	}

	var res PlayResult
	if stoppedID, had := p.state.Play(next.ID); had {
		if stopped, err := p.video(stoppedID); err == nil {
			res.Stopped = &stopped
		}
	}
	res.Playing = next
	return res, nil
}

// PlayRandom plays a uniformly chosen catalog video.
func (p *Player) PlayRandom() (PlayResult, error) {
	all := p.catalog.All()
	if len(all) == 0 {
		p.observe("play_random", ErrNoVideosAvailable)
		return PlayResult{}, ErrNoVideosAvailable
	}
	res, err := p.play(all[p.intN(len(all))].ID)
	p.observe("play_random", err)
	return res, err
}

// Stop unloads the current video and returns it.
func (p *Player) Stop() (VideoSummary, error) {
	id, err := p.state.Stop()
	if err != nil {
		p.observe("stop", err)
		return VideoSummary{}, err
	}
	v, err := p.video(id)
	p.observe("stop", err)
	return v, err
}

// Pause pauses the current video.
func (p *Player) Pause() (PauseResult, error) {
	id, already, err := p.state.Pause()
	if err != nil {
		p.observe("pause", err)
		return PauseResult{}, err
	}
	v, err := p.video(id)
	p.observe("pause", err)
	return PauseResult{Video: v, AlreadyPaused: already}, err
}

// Continue resumes a paused video.
func (p *Player) Continue() (VideoSummary, error) {
	id, err := p.state.Continue()
	if err != nil {
		p.observe("continue", err)
		return VideoSummary{}, err
	}
	v, err := p.video(id)
	p.observe("continue", err)
	return v, err
}

// ShowPlaying describes the loaded video without changing state.
func (p *Player) ShowPlaying() (PlaybackSnapshot, error) {
	id, paused, ok := p.state.Current()
	if !ok {
		p.observe("show_playing", ErrNothingPlaying)
		return PlaybackSnapshot{}, ErrNothingPlaying
	}
	v, err := p.video(id)
	p.observe("show_playing", err)
	return PlaybackSnapshot{Video: v, Paused: paused}, err
}

// CreatePlaylist adds an empty playlist and returns its stored name.
func (p *Player) CreatePlaylist(name string) (string, error) {
	pl, err := p.playlists.Create(name)
	p.observe("create_playlist", err)
	if err != nil {
		return "", err
	}
	return pl.Name(), nil
}

// AddVideoToPlaylist appends a catalog video to a playlist.
func (p *Player) AddVideoToPlaylist(playlistName, videoID string) (VideoSummary, error) {
	v, err := p.addVideoToPlaylist(playlistName, videoID)
	p.observe("add_to_playlist", err)
	return v, err
}

func (p *Player) addVideoToPlaylist(playlistName, videoID string) (VideoSummary, error) {
	pl, err := p.playlists.Find(playlistName)
	if err != nil {
		return VideoSummary{}, err
	}
	v, err := p.video(videoID)
	if err != nil {
		return VideoSummary{}, err
	}
	if err := pl.Add(v.ID); err != nil {
		return VideoSummary{}, err
	}
	return v, nil
}

// RemoveFromPlaylist removes a video from a playlist.
func (p *Player) RemoveFromPlaylist(playlistName, videoID string) (VideoSummary, error) {
	v, err := p.removeFromPlaylist(playlistName, videoID)
	p.observe("remove_from_playlist", err)
	return v, err
}

func (p *Player) removeFromPlaylist(playlistName, videoID string) (VideoSummary, error) {
	pl, err := p.playlists.Find(playlistName)
	if err != nil {
		return VideoSummary{}, err
	}
	v, err := p.video(videoID)
	if err != nil {
		return VideoSummary{}, err
	}
	if err := pl.Remove(v.ID); err != nil {
		return VideoSummary{}, err
	}
	return v, nil
}

// ClearPlaylist removes every video from a playlist.
func (p *Player) ClearPlaylist(name string) error {
	pl, err := p.playlists.Find(name)
	if err == nil {
		pl.Clear()
	}
	p.observe("clear_playlist", err)
	return err
}

// DeletePlaylist removes a playlist.
func (p *Player) DeletePlaylist(name string) error {
	err := p.playlists.Delete(name)
	p.observe("delete_playlist", err)
	return err
}

// ShowAllPlaylists returns playlist names ordered case-insensitively.
func (p *Player) ShowAllPlaylists() ([]string, error) {
	if p.playlists.Len() == 0 {
		p.observe("show_all_playlists", ErrNoPlaylists)
		return nil, ErrNoPlaylists
	}
	p.observe("show_all_playlists", nil)
	return p.playlists.Names(), nil
}

// ShowPlaylist returns the playlist's videos in insertion order. Ids no
// longer in the catalog are skipped.
func (p *Player) ShowPlaylist(name string) (PlaylistView, error) {
	pl, err := p.playlists.Find(name)
	if err != nil {
		p.observe("show_playlist", err)
		return PlaylistView{}, err
	}

	view := PlaylistView{Name: pl.Name(), Videos: []VideoSummary{}}
	for _, id := range pl.VideoIDs() {
		if v, err := p.video(id); err == nil {
			view.Videos = append(view.Videos, v)
		}
	}
	p.observe("show_playlist", nil)
	return view, nil
}

// SearchVideos returns videos whose title contains term, ignoring case,
// ordered like ShowAllVideos.
func (p *Player) SearchVideos(term string) ([]VideoSummary, error) {
	needle := strings.ToLower(term)
	matches := lo.FilterMap(p.catalog.All(), func(v catalog.VideoRecord, _ int) (VideoSummary, bool) {
		return summarize(v), strings.Contains(strings.ToLower(v.Title), needle)
	})
	if len(matches) == 0 {
		p.observe("search_videos", ErrNoSearchResults)
		return nil, ErrNoSearchResults
	}
	sortByDisplay(matches)
	p.observe("search_videos", nil)
	return matches, nil
}

// SearchVideosWithTag is reserved; it always returns ErrNotImplemented.
func (p *Player) SearchVideosWithTag(tag string) ([]VideoSummary, error) {
	p.observe("search_videos_with_tag", ErrNotImplemented)
	return nil, ErrNotImplemented
}

// FlagVideo is reserved; it always returns ErrNotImplemented.
func (p *Player) FlagVideo(id, reason string) error {
	p.observe("flag_video", ErrNotImplemented)
	return ErrNotImplemented
}

// AllowVideo is reserved; it always returns ErrNotImplemented.
func (p *Player) AllowVideo(id string) error {
	p.observe("allow_video", ErrNotImplemented)
	return ErrNotImplemented
}

// Stats summarises the player for metrics. It is not a command and is not
// reported to the Observer.
func (p *Player) Stats() Stats {
	return Stats{
		Videos:    p.catalog.Len(),
		Playlists: p.playlists.Len(),
		Status:    p.state.Status(),
	}
}
