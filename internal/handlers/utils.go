package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"video-player/internal/logging"
	"video-player/internal/player"
)

// maxBodyBytes bounds request bodies; every body is a single small object.
const maxBodyBytes = 1 << 16

func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, v)
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSONStatus(w, statusCode, map[string]string{"error": message})
}

// statusFor maps player errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, player.ErrVideoNotFound),
		errors.Is(err, player.ErrPlaylistNotFound):
		return http.StatusNotFound
	case errors.Is(err, player.ErrInvalidPlaylistName):
		return http.StatusBadRequest
	case errors.Is(err, player.ErrPlaylistExists),
		errors.Is(err, player.ErrAlreadyInPlaylist),
		errors.Is(err, player.ErrNotInPlaylist),
		errors.Is(err, player.ErrNothingPlaying),
		errors.Is(err, player.ErrNotPaused),
		errors.Is(err, player.ErrNoVideosAvailable):
		return http.StatusConflict
	case errors.Is(err, player.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writePlayerError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error("player command failed: %v", err)
	}
	writeJSONError(w, err.Error(), status)
}

// idRequest is the body accepted by endpoints that take a video id.
type idRequest struct {
	ID string `json:"id"`
}

// nameRequest is the body accepted by playlist creation.
type nameRequest struct {
	Name string `json:"name"`
}

// flagRequest is the optional body of a flag request.
type flagRequest struct {
	Reason string `json:"reason"`
}

// decodeBody decodes a JSON body into v. An empty body is allowed when
// optional is set.
func decodeBody(r *http.Request, v interface{}, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
