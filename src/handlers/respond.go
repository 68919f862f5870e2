package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack-server/src/analytics"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondServiceError maps the analytics error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an internal fault and gets a generic
// payload; the core never surfaces raw errors to clients.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, analytics.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, analytics.ErrNotFound):
		http.Error(w, fallback+" not found or unauthorized", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
