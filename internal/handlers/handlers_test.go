package handlers

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"video-player/internal/catalog"
	"video-player/internal/player"
	"video-player/internal/playlist"
)

func testLibrary() *catalog.Library {
	return catalog.NewLibrary([]catalog.VideoRecord{
		{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
		{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}},
		{ID: "another_cat_video_id", Title: "Another Cat Video", Tags: []string{"#cat", "#animal"}},
		{ID: "life_at_google_video_id", Title: "Life at Google", Tags: []string{"#google", "#career"}},
		{ID: "nothing_video_id", Title: "Video about nothing"},
	})
}

func newTestServer(t *testing.T) (*Handlers, *mux.Router) {
	t.Helper()
	p := player.New(testLibrary(), player.WithRand(rand.New(rand.NewPCG(1, 2))))
	h := New(p)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return h, router
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestListVideos(t *testing.T) {
	_, router := newTestServer(t)

	w := do(t, router, http.MethodGet, "/api/videos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	videos := decode[[]player.VideoSummary](t, w)
	if len(videos) != 5 {
		t.Fatalf("got %d videos, want 5", len(videos))
	}
	if videos[0].ID != "amazing_cats_video_id" || videos[4].ID != "nothing_video_id" {
		t.Errorf("unexpected order: first=%s last=%s", videos[0].ID, videos[4].ID)
	}
	if videos[4].Tags == nil {
		t.Error("Expected tags to encode as an empty list, not null")
	}
}

func TestCountVideos(t *testing.T) {
	_, router := newTestServer(t)

	w := do(t, router, http.MethodGet, "/api/videos/count", "")
	got := decode[map[string]int](t, w)
	if got["count"] != 5 {
		t.Errorf("count = %d, want 5", got["count"])
	}
}

func TestPlaybackFlow(t *testing.T) {
	_, router := newTestServer(t)

	steps := []struct {
		method string
		path   string
		body   string
		status int
		check  string
	}{
		{http.MethodGet, "/api/playback", "", http.StatusOK, `"status":"empty"`},
		{http.MethodPost, "/api/playback/stop", "", http.StatusConflict, "currently playing"},
		{http.MethodPost, "/api/playback/play", `{"id":"missing"}`, http.StatusNotFound, "does not exist"},
		{http.MethodPost, "/api/playback/play", `{}`, http.StatusBadRequest, "video id"},
		{http.MethodPost, "/api/playback/play", `{"id":"amazing_cats_video_id"}`, http.StatusOK, `"playing":{"id":"amazing_cats_video_id"`},
		{http.MethodPost, "/api/playback/continue", "", http.StatusConflict, "not paused"},
		{http.MethodPost, "/api/playback/play", `{"id":"funny_dogs_video_id"}`, http.StatusOK, `"stopped":{"id":"amazing_cats_video_id"`},
		{http.MethodPost, "/api/playback/pause", "", http.StatusOK, `"alreadyPaused":false`},
		{http.MethodPost, "/api/playback/pause", "", http.StatusOK, `"alreadyPaused":true`},
		{http.MethodGet, "/api/playback", "", http.StatusOK, `"status":"paused"`},
		{http.MethodPost, "/api/playback/continue", "", http.StatusOK, `"continued":{"id":"funny_dogs_video_id"`},
		{http.MethodGet, "/api/playback", "", http.StatusOK, `"status":"playing"`},
		{http.MethodPost, "/api/playback/stop", "", http.StatusOK, `"stopped":{"id":"funny_dogs_video_id"`},
		{http.MethodGet, "/api/playback", "", http.StatusOK, `"status":"empty"`},
	}

	for i, step := range steps {
		w := do(t, router, step.method, step.path, step.body)
		if w.Code != step.status {
			t.Fatalf("step %d %s %s: status = %d, want %d (body %s)", i, step.method, step.path, w.Code, step.status, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), step.check) {
			t.Errorf("step %d %s %s: body %q does not contain %q", i, step.method, step.path, w.Body.String(), step.check)
		}
	}
}

func TestPlayRandom(t *testing.T) {
	_, router := newTestServer(t)

	w := do(t, router, http.MethodPost, "/api/playback/random", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	result := decode[player.PlayResult](t, w)
	if result.Playing.ID == "" {
		t.Error("Expected a video to be playing")
	}

	empty := New(player.New(catalog.NewLibrary(nil)))
	emptyRouter := mux.NewRouter()
	empty.RegisterRoutes(emptyRouter)

	w = do(t, emptyRouter, http.MethodPost, "/api/playback/random", "")
	if w.Code != http.StatusConflict {
		t.Errorf("empty catalog status = %d, want 409", w.Code)
	}
}

func TestPlaylistFlow(t *testing.T) {
	_, router := newTestServer(t)

	steps := []struct {
		method string
		path   string
		body   string
		status int
		check  string
	}{
		{http.MethodGet, "/api/playlists", "", http.StatusOK, "[]"},
		{http.MethodPost, "/api/playlists", `{"name":"My_Playlist"}`, http.StatusCreated, `"name":"My_Playlist"`},
		{http.MethodPost, "/api/playlists", `{"name":"my_PLAYLIST"}`, http.StatusConflict, "already exists"},
		{http.MethodPost, "/api/playlists", `{"name":"has space"}`, http.StatusBadRequest, "error"},
		{http.MethodPost, "/api/playlists", `not json`, http.StatusBadRequest, "invalid request body"},
		{http.MethodPost, "/api/playlists/my_playlist/videos", `{"id":"amazing_cats_video_id"}`, http.StatusOK, "Amazing Cats"},
		{http.MethodPost, "/api/playlists/my_playlist/videos", `{"id":"amazing_cats_video_id"}`, http.StatusConflict, "already"},
		{http.MethodPost, "/api/playlists/missing/videos", `{"id":"missing"}`, http.StatusNotFound, "playlist"},
		{http.MethodPost, "/api/playlists/my_playlist/videos", `{"id":"missing"}`, http.StatusNotFound, "video does not exist"},
		{http.MethodPost, "/api/playlists/my_playlist/videos", `{"id":"funny_dogs_video_id"}`, http.StatusOK, "Funny Dogs"},
		{http.MethodGet, "/api/playlists/MY_playlist", "", http.StatusOK, `"name":"My_Playlist"`},
		{http.MethodDelete, "/api/playlists/my_playlist/videos/amazing_cats_video_id", "", http.StatusOK, "Amazing Cats"},
		{http.MethodDelete, "/api/playlists/my_playlist/videos/amazing_cats_video_id", "", http.StatusConflict, "not"},
		{http.MethodPost, "/api/playlists/my_playlist/clear", "", http.StatusNoContent, ""},
		{http.MethodGet, "/api/playlists/my_playlist", "", http.StatusOK, `"videos":[]`},
		{http.MethodGet, "/api/playlists", "", http.StatusOK, `["My_Playlist"]`},
		{http.MethodDelete, "/api/playlists/my_playlist", "", http.StatusNoContent, ""},
		{http.MethodDelete, "/api/playlists/my_playlist", "", http.StatusNotFound, "error"},
		{http.MethodGet, "/api/playlists/my_playlist", "", http.StatusNotFound, "error"},
	}

	for i, step := range steps {
		w := do(t, router, step.method, step.path, step.body)
		if w.Code != step.status {
			t.Fatalf("step %d %s %s: status = %d, want %d (body %s)", i, step.method, step.path, w.Code, step.status, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), step.check) {
			t.Errorf("step %d %s %s: body %q does not contain %q", i, step.method, step.path, w.Body.String(), step.check)
		}
	}
}

func TestExportPlaylist(t *testing.T) {
	_, router := newTestServer(t)

	do(t, router, http.MethodPost, "/api/playlists", `{"name":"Favs"}`)
	do(t, router, http.MethodPost, "/api/playlists/favs/videos", `{"id":"life_at_google_video_id"}`)
	do(t, router, http.MethodPost, "/api/playlists/favs/videos", `{"id":"nothing_video_id"}`)

	w := do(t, router, http.MethodGet, "/api/playlists/favs/wpl", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.ms-wpl" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `"Favs.wpl"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}

	var doc playlist.WPL
	if err := xml.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to parse exported playlist: %v", err)
	}
	if doc.Head.Title != "Favs" {
		t.Errorf("title = %q, want Favs", doc.Head.Title)
	}
	if len(doc.Body.Seq.Media) != 2 || doc.Body.Seq.Media[0].Src != "life_at_google_video_id" {
		t.Errorf("unexpected media entries: %+v", doc.Body.Seq.Media)
	}

	w = do(t, router, http.MethodGet, "/api/playlists/missing/wpl", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing playlist status = %d, want 404", w.Code)
	}
}

func TestSearch(t *testing.T) {
	_, router := newTestServer(t)

	w := do(t, router, http.MethodGet, "/api/search?q=CAT", "")
	results := decode[[]player.VideoSummary](t, w)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != "amazing_cats_video_id" || results[1].ID != "another_cat_video_id" {
		t.Errorf("unexpected results: %+v", results)
	}

	w = do(t, router, http.MethodGet, "/api/search?q=zebra", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("no-match search: status=%d body=%q", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/search", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing q status = %d, want 400", w.Code)
	}
}

func TestReservedCommands(t *testing.T) {
	_, router := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/search/tag?tag=%23cat", "", http.StatusNotImplemented},
		{http.MethodGet, "/api/search/tag", "", http.StatusBadRequest},
		{http.MethodPost, "/api/videos/amazing_cats_video_id/flag", `{"reason":"dont_like_cats"}`, http.StatusNotImplemented},
		{http.MethodPost, "/api/videos/amazing_cats_video_id/flag", "", http.StatusNotImplemented},
		{http.MethodPost, "/api/videos/amazing_cats_video_id/allow", "", http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestHealthAndVersion(t *testing.T) {
	_, router := newTestServer(t)

	w := do(t, router, http.MethodGet, "/health", "")
	health := decode[HealthResponse](t, w)
	if health.Status != "healthy" || health.Videos != 5 || health.Playback != "empty" {
		t.Errorf("unexpected health response: %+v", health)
	}

	w = do(t, router, http.MethodHead, "/health", "")
	if w.Code != http.StatusOK || w.Body.Len() != 0 {
		t.Errorf("HEAD /health: status=%d body length=%d", w.Code, w.Body.Len())
	}

	w = do(t, router, http.MethodGet, "/version", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"goVersion"`) {
		t.Errorf("GET /version: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestGetStats(t *testing.T) {
	h, router := newTestServer(t)

	do(t, router, http.MethodPost, "/api/playlists", `{"name":"a"}`)
	do(t, router, http.MethodPost, "/api/playback/play", `{"id":"nothing_video_id"}`)
	do(t, router, http.MethodPost, "/api/playback/pause", "")

	stats := h.GetStats()
	if stats.Videos != 5 || stats.Playlists != 1 || stats.State != "paused" {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{player.ErrVideoNotFound, http.StatusNotFound},
		{player.ErrPlaylistNotFound, http.StatusNotFound},
		{player.ErrInvalidPlaylistName, http.StatusBadRequest},
		{player.ErrPlaylistExists, http.StatusConflict},
		{player.ErrNothingPlaying, http.StatusConflict},
		{player.ErrNotPaused, http.StatusConflict},
		{player.ErrNotImplemented, http.StatusNotImplemented},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestConcurrentRequests(t *testing.T) {
	_, router := newTestServer(t)
	do(t, router, http.MethodPost, "/api/playlists", `{"name":"shared"}`)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 4 {
			case 0:
				do(t, router, http.MethodPost, "/api/playback/random", "")
			case 1:
				do(t, router, http.MethodPost, "/api/playback/pause", "")
			case 2:
				do(t, router, http.MethodPost, "/api/playlists/shared/videos", `{"id":"funny_dogs_video_id"}`)
			default:
				do(t, router, http.MethodGet, "/api/playlists/shared", "")
			}
		}(i)
	}
	wg.Wait()

	w := do(t, router, http.MethodGet, "/api/playlists/shared", "")
	view := decode[player.PlaylistView](t, w)
	if len(view.Videos) != 1 {
		t.Errorf("Expected exactly one video after concurrent adds, got %d", len(view.Videos))
	}
}
