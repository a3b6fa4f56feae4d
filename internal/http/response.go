package http

import (
	"encoding/json"
	"net/http"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeValidationError itemizes per-field problems alongside the
// overall message, always as a 400.
func writeValidationError(w http.ResponseWriter, message string, errs []fieldError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message, Errors: errs})
}
