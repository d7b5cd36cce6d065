// Package middleware carries the bearer-token guard that runs before
// every protected handler and the context plumbing for the verified
// identity.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/skillforge/journey-service/internal/auth"
)

type contextKey int

const identityKey contextKey = iota

// WithIdentity binds a verified identity to the request context
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom extracts the verified identity from the request context
func IdentityFrom(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*auth.Identity)
	return identity, ok
}

// Auth verifies the Authorization header before handler dispatch and
// injects the verified subject into the request context. Every token
// failure collapses to one 401 message; a revocation-ledger outage is
// the only 503.
func Auth(tokens *auth.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "missing or invalid token"})
				return
			}

			identity, err := tokens.Verify(r.Context(), strings.TrimPrefix(header, prefix))
			if err != nil {
				if isTokenError(err) {
					writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "missing or invalid token"})
				} else {
					writeJSON(w, http.StatusServiceUnavailable, map[string]string{"msg": "service unavailable"})
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func isTokenError(err error) bool {
	return errors.Is(err, auth.ErrTokenMalformed) ||
		errors.Is(err, auth.ErrTokenSignature) ||
		errors.Is(err, auth.ErrTokenExpired) ||
		errors.Is(err, auth.ErrTokenRevoked)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
