package middleware

import (
	"net/http"
	"strings"

	"github.com/whisperbox/whisperbox/internal/auth"
)

// unauthorizedMessage is the response body for missing or bad sessions.
const unauthorizedMessage = "Unauthorized, please login again"

// RequireSession returns middleware that authenticates the caller from
// a Bearer token or the session cookie and injects the verified claims
// into the request context. Requests without a valid session get 401.
func RequireSession(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractSessionToken(r)
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				writeError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractSessionToken pulls the session token from the Authorization
// header, falling back to the session cookie for browser clients.
func extractSessionToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
