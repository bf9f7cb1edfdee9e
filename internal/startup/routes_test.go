package startup

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
)

func TestGetRoutes(t *testing.T) {
	router := mux.NewRouter()
	noop := func(http.ResponseWriter, *http.Request) {}
	router.HandleFunc("/health", noop).Methods(http.MethodGet)
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/playlists", noop).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/playlists/{name}", noop).Methods(http.MethodDelete)

	routes, err := GetRoutes(router)
	if err != nil {
		t.Fatalf("GetRoutes() error = %v", err)
	}

	want := map[RouteInfo]bool{
		{Method: http.MethodGet, Path: "/health"}:                  true,
		{Method: http.MethodGet, Path: "/api/playlists"}:           true,
		{Method: http.MethodPost, Path: "/api/playlists"}:          true,
		{Method: http.MethodDelete, Path: "/api/playlists/{name}"}: true,
	}
	for _, r := range routes {
		delete(want, r)
	}
	if len(want) != 0 {
		t.Errorf("Missing routes: %v (got %v)", want, routes)
	}
}

func TestGetRouteGroup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "root"},
		{"/health", "health"},
		{"/api/videos", "api/videos"},
		{"/api/playlists/{name}/videos", "api/playlists"},
		{"/api", "api"},
	}

	for _, tt := range tests {
		if got := getRouteGroup(tt.path); got != tt.want {
			t.Errorf("getRouteGroup(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
