package handler

import (
	"net/http"

	"github.com/whisperbox/whisperbox/internal/handler/dto"
	"github.com/whisperbox/whisperbox/internal/suggest"
)

// SuggestHandler serves question suggestions for the compose screen.
type SuggestHandler struct {
	generator *suggest.Generator
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(generator *suggest.Generator) *SuggestHandler {
	return &SuggestHandler{generator: generator}
}

// Suggest returns three questions joined with "||". The endpoint never
// fails: when the model is unreachable it degrades to pre-written
// questions, so the status is always 200.
//
// GET /api/v1/suggest
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	result := h.generator.Suggest(r.Context())

	message := "Questions generated successfully"
	switch result.Tier {
	case suggest.TierFallback:
		message = "Questions generated from fallback"
	case suggest.TierGeneric:
		message = "Using generic questions"
	}

	writeEnvelope(w, http.StatusOK, message, dto.SuggestResponse{
		Questions: result.Questions,
		Topic:     result.Topic,
	})
}
