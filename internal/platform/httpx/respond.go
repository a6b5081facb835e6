// Package httpx provides HTTP response utilities for the POS API envelope.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response shape every endpoint speaks: the legacy storefront
// dispatches on the status field, so it is always present.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Success sends a success envelope carrying optional data.
func Success(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Status: "success", Data: data})
}

// SuccessMessage sends a success envelope carrying a human-readable message.
func SuccessMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: "success", Message: message})
}

// Error sends an error envelope with the underlying message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: "error", Message: message})
}

// DecodeJSON decodes JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
