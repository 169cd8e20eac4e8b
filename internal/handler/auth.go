package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/whisperbox/whisperbox/internal/auth"
	"github.com/whisperbox/whisperbox/internal/cache"
	"github.com/whisperbox/whisperbox/internal/handler/dto"
	"github.com/whisperbox/whisperbox/internal/service"
)

// StateStore persists one-shot OAuth states between login and callback.
// *cache.Cache implements it.
type StateStore interface {
	SaveOAuthState(ctx context.Context, state, provider string) error
	ConsumeOAuthState(ctx context.Context, state string) (string, error)
}

// AuthHandler handles the sign-in flow.
type AuthHandler struct {
	oauth        *auth.OAuthManager
	tokens       *auth.TokenManager
	users        *service.UserService
	states       StateStore
	baseURL      string
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler. secureCookie should be
// false only in development, where there is no HTTPS.
func NewAuthHandler(
	oauth *auth.OAuthManager,
	tokens *auth.TokenManager,
	users *service.UserService,
	states StateStore,
	baseURL string,
	secureCookie bool,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		oauth:        oauth,
		tokens:       tokens,
		users:        users,
		states:       states,
		baseURL:      baseURL,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login starts the sign-in flow by redirecting to the provider's
// consent screen. The state token is stored server side and checked
// once at callback time.
//
// GET /auth/{provider}/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	provider, err := auth.ParseProvider(chi.URLParam(r, "provider"))
	if err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "Sign-in provider not supported")
		return
	}

	state, err := h.oauth.StateToken()
	if err != nil {
		h.logger.Error("failed to create state token", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.states.SaveOAuthState(r.Context(), state, string(provider)); err != nil {
		h.logger.Error("failed to save oauth state", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	authURL, err := h.oauth.AuthURL(provider, state)
	if err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "Sign-in provider not supported")
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback completes the sign-in flow: verifies the state, exchanges
// the code, upserts the user record and issues a session token. The
// token is set as a cookie and also returned in the body for clients
// that prefer a Bearer header.
//
// GET /auth/{provider}/callback
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	provider, err := auth.ParseProvider(chi.URLParam(r, "provider"))
	if err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "Sign-in provider not supported")
		return
	}

	query := r.URL.Query()
	if errCode := query.Get("error"); errCode != "" {
		// User denied consent or the provider failed.
		h.logger.Warn("oauth callback error", slog.String("error", errCode))
		writeEnvelopeError(w, http.StatusUnauthorized, "Sign-in was cancelled or failed")
		return
	}

	state := query.Get("state")
	code := query.Get("code")
	if state == "" || code == "" {
		writeEnvelopeError(w, http.StatusBadRequest, "Missing state or code")
		return
	}

	savedProvider, err := h.states.ConsumeOAuthState(r.Context(), state)
	if err != nil {
		if errors.Is(err, cache.ErrStateNotFound) {
			writeEnvelopeError(w, http.StatusUnauthorized, "Invalid or expired sign-in state")
			return
		}
		h.logger.Error("failed to consume oauth state", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if savedProvider != string(provider) {
		writeEnvelopeError(w, http.StatusUnauthorized, "Invalid or expired sign-in state")
		return
	}

	info, err := h.oauth.Exchange(r.Context(), provider, code)
	if err != nil {
		h.logger.Warn("code exchange failed", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusUnauthorized, "Sign-in was cancelled or failed")
		return
	}

	user, err := h.users.SignIn(r.Context(), info)
	if err != nil {
		h.logger.Error("sign-in failed", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, expiresAt, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("failed to issue session token", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, expiresAt))

	writeEnvelope(w, http.StatusOK, "Signed in successfully", map[string]any{
		"user":      dto.ToProfileResponse(user, h.baseURL),
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry since sessions are stateless.
//
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeEnvelope(w, http.StatusOK, "Signed out successfully", nil)
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
