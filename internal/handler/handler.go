// Package handler provides HTTP request handlers.
package handler

import (
	"net/http"
)

// Handler wraps shared endpoints that need no service dependencies.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Hello is a simple root endpoint for smoke checks.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, "Welcome to Whisperbox", map[string]string{
		"version": "0.1.0",
	})
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeEnvelopeError(w, http.StatusNotFound, "Resource not found")
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeEnvelopeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
