package handler

import (
	"encoding/json"
	"net/http"

	"github.com/whisperbox/whisperbox/internal/handler/dto"
)

// Envelope is the response shape shared with the middleware layer.
type Envelope = dto.Envelope

// writeEnvelope writes a success envelope with the given payload.
func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, dto.NewEnvelope(status, message, data))
}

// writeEnvelopeError writes an error envelope.
func writeEnvelopeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.NewErrorEnvelope(status, message))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}
