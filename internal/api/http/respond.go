package http

import (
	"encoding/json"
	"net/http"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/logger"
)

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// statusOf maps a domain error kind to an HTTP status. The store historically
// reported conflicts (exhausted stock, already-processed returns) and invalid
// tokens as 400, so those mappings are kept for client compatibility.
func statusOf(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrKindValidation:
		return http.StatusBadRequest
	case domain.ErrKindNotFound:
		return http.StatusNotFound
	case domain.ErrKindConflict:
		return http.StatusBadRequest
	case domain.ErrKindUnauthenticated:
		return http.StatusUnauthorized
	case domain.ErrKindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: domain.MessageOf(err)})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
