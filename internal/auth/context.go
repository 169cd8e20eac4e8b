package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// sessionContextKey is the context key for storing SessionClaims.
const sessionContextKey contextKey = "session_claims"

// ContextWithSession adds session claims to the context.
func ContextWithSession(ctx context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(ctx, sessionContextKey, claims)
}

// SessionFromContext retrieves session claims from the context.
// Returns nil for anonymous requests.
func SessionFromContext(ctx context.Context) *SessionClaims {
	claims, ok := ctx.Value(sessionContextKey).(*SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
