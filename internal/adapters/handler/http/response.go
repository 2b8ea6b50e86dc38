package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ken122189/backend-P7/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// respondError maps domain errors onto coarse HTTP outcomes. Anything not in
// the taxonomy is a plain 500 with no internal detail.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrRefreshRejected):
		http.Error(w, "could not refresh tokens, please log in again", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrPositionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrUsernameTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
