package middleware

import (
	"encoding/json"
	"net/http"
)

// statusEnvelope mirrors the public wire contract: every middleware-level
// rejection carries the HTTP status code and a human-readable message.
type statusEnvelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// writeStatusJSON writes a {status_code, message} response with the correct Content-Type.
func writeStatusJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(statusEnvelope{StatusCode: status, Message: msg})
}
