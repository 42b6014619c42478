package http

import (
	"context"

	"teamsync-backend/internal/security"
)

type contextKey struct{}

var claimsKey = contextKey{}

// WithClaims returns a context carrying the authenticated caller's claims.
func WithClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom extracts the caller's claims set by the auth middleware.
func ClaimsFrom(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}
