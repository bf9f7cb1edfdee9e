package playlist

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var (
	// ErrPlaylistExists is returned by Create when the name is taken,
	// ignoring case.
	ErrPlaylistExists = errors.New("a playlist with the same name already exists")
	// ErrPlaylistNotFound is returned when no playlist matches a name.
	ErrPlaylistNotFound = errors.New("playlist does not exist")
	// ErrInvalidName is returned for empty names or names containing whitespace.
	ErrInvalidName = errors.New("playlist name must be non-empty and contain no whitespace")
)

// Registry owns every playlist, keyed by the lowercased name.
type Registry struct {
	playlists map[string]*Playlist
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{playlists: make(map[string]*Playlist)}
}

func key(name string) string {
	return strings.ToLower(name)
}

// ValidName reports whether name can be used for a playlist.
func ValidName(name string) bool {
	return name != "" && strings.IndexFunc(name, unicode.IsSpace) < 0
}

// Create adds an empty playlist called name.
func (r *Registry) Create(name string) (*Playlist, error) {
	if !ValidName(name) {
		return nil, ErrInvalidName
	}
	k := key(name)
	if _, exists := r.playlists[k]; exists {
		return nil, ErrPlaylistExists
	}
	p := newPlaylist(name)
	r.playlists[k] = p
	return p, nil
}

// Find resolves name to a playlist, ignoring case.
func (r *Registry) Find(name string) (*Playlist, error) {
	p, ok := r.playlists[key(name)]
	if !ok {
		return nil, ErrPlaylistNotFound
	}
	return p, nil
}

// Delete removes the playlist matching name.
func (r *Registry) Delete(name string) error {
	k := key(name)
	if _, ok := r.playlists[k]; !ok {
		return ErrPlaylistNotFound
	}
	delete(r.playlists, k)
	return nil
}

// Len returns the number of playlists.
func (r *Registry) Len() int {
	return len(r.playlists)
}

// Names returns the stored playlist names ordered case-insensitively.
func (r *Registry) Names() []string {
	names := lo.Map(lo.Values(r.playlists), func(p *Playlist, _ int) string {
		return p.name
	})
	sort.Slice(names, func(i, j int) bool {
		li, lj := key(names[i]), key(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}
