package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// Stable failure classification codes. They double as HTTP status codes so
// the routing shell can map an outcome without inspecting internal state.
const (
	CodeBadRequest  = http.StatusBadRequest
	CodeNotFound    = http.StatusNotFound
	CodeConflict    = http.StatusConflict
	CodePersistence = http.StatusInternalServerError
)

// Error is the only failure payload crossing the boundary: a human-readable
// message plus a stable numeric classification.
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Confirmation acknowledges a completed mutation, e.g. a delete.
type Confirmation struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

func NewError(message string, code int) *Error {
	return &Error{Message: message, Code: code}
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WriteError encodes e as the response body, using its code as HTTP status.
func WriteError(w http.ResponseWriter, e *Error) {
	WriteJSON(w, e.Code, e)
}
