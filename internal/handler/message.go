package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/whisperbox/whisperbox/internal/auth"
	"github.com/whisperbox/whisperbox/internal/handler/dto"
	"github.com/whisperbox/whisperbox/internal/model"
	"github.com/whisperbox/whisperbox/internal/service"
)

// MessageHandler handles message intake and inbox management.
type MessageHandler struct {
	messages *service.MessageService
	users    *service.UserService
	logger   *slog.Logger
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages *service.MessageService, users *service.UserService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messages: messages,
		users:    users,
		logger:   logger,
	}
}

// Create handles anonymous message intake. No session is required; the
// sender stays unidentified.
//
// POST /api/v1/messages
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		writeEnvelopeError(w, http.StatusBadRequest, "Id is required")
		return
	}

	message, err := h.messages.Create(r.Context(), req.ID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrContentTooShort):
			writeEnvelopeError(w, http.StatusBadRequest, "message must be at least 10 characters long")
		case errors.Is(err, model.ErrContentTooLong):
			writeEnvelopeError(w, http.StatusBadRequest, "message must be less than or equal to 300 characters")
		case errors.Is(err, service.ErrUserNotFound):
			writeEnvelopeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrNotAcceptingMessages):
			writeEnvelopeError(w, http.StatusBadRequest, "User is not accepting messages")
		default:
			h.logger.Error("message create failed", slog.String("error", err.Error()))
			writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeEnvelope(w, http.StatusOK, "Message sent successfully", map[string]any{
		"message": dto.ToMessageResponse(message),
	})
}

// List returns the caller's received messages, newest first.
//
// GET /api/v1/messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		writeEnvelopeError(w, http.StatusUnauthorized, "Unauthorized, please login again")
		return
	}

	messages, err := h.messages.ListForEmail(r.Context(), session.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeEnvelopeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("message list failed", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeEnvelope(w, http.StatusOK, "Messages fetched successfully", dto.ToMessageResponses(messages))
}

// Delete removes one message from the caller's inbox. The delete is
// scoped to the session user, so someone else's message reads as not
// found.
//
// DELETE /api/v1/messages
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		writeEnvelopeError(w, http.StatusUnauthorized, "Unauthorized, please login again")
		return
	}

	var req dto.DeleteMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" || req.MessageID == "" {
		writeEnvelopeError(w, http.StatusBadRequest, "Id is required")
		return
	}

	err := h.messages.Delete(r.Context(), req.ID, req.MessageID, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeEnvelopeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrMessageNotFound):
			writeEnvelopeError(w, http.StatusNotFound, "Message not found")
		default:
			h.logger.Error("message delete failed", slog.String("error", err.Error()))
			writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeEnvelope(w, http.StatusOK, "Message deleted successfully", nil)
}

// ToggleAccept flips the caller's accept-messages flag and reports the
// new value.
//
// PATCH /api/v1/messages/accept
func (h *MessageHandler) ToggleAccept(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		writeEnvelopeError(w, http.StatusUnauthorized, "Unauthorized, please login again")
		return
	}

	accepting, err := h.users.ToggleAccepting(r.Context(), session.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeEnvelopeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("accept toggle failed", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeEnvelope(w, http.StatusOK, "Success", dto.ToggleAcceptResponse{
		IsAcceptingMessages: accepting,
	})
}
