package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/whisperbox/whisperbox/internal/auth"
	"github.com/whisperbox/whisperbox/internal/handler/dto"
	"github.com/whisperbox/whisperbox/internal/service"
)

// UserHandler serves the signed-in user's own profile.
type UserHandler struct {
	users   *service.UserService
	baseURL string
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler. baseURL is used to build
// the profile's public share link.
func NewUserHandler(users *service.UserService, baseURL string, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:   users,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Me returns the caller's profile, including their public share link.
//
// GET /api/v1/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		writeEnvelopeError(w, http.StatusUnauthorized, "Unauthorized, please login again")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), session.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeEnvelopeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("profile fetch failed", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeEnvelope(w, http.StatusOK, "Profile fetched successfully", dto.ToProfileResponse(user, h.baseURL))
}
