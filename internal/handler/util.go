package handler

import (
	"encoding/json"
	"net/http"

	"github.com/eventmatch-ai/event-advisor/internal/model"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResult{Error: message})
}

// writeErrorDetails writes a JSON error response with details.
func writeErrorDetails(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, model.ErrorResult{Error: message, Details: details})
}
