package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/whisperbox/whisperbox/internal/handler/dto"
)

// writeError writes an error response in the shared API envelope so
// middleware rejections look the same as handler rejections.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, _ := json.Marshal(dto.NewErrorEnvelope(status, message))
	_, _ = w.Write(body)
}
