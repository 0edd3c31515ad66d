// Package middleware provides the in-process JWT bearer middleware used by
// the local development server, standing in for the gateway's token
// authorizer.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"streaming-backend/pkg/api"
	"streaming-backend/pkg/auth"

	"go.uber.org/zap"
)

// contextKey is used for context values
type contextKey struct {
	name string
}

var claimsKey = contextKey{"claims"}

// ClaimsFrom extracts the verified token claims from the request context.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// Authenticate verifies the bearer token on every request and stores the
// claims in the request context. Every failure is answered with the same
// generic 401.
func Authenticate(tokens *auth.TokenService, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				api.Error(w, http.StatusUnauthorized, "não autorizado")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				logger.Info("token rejected", zap.Error(err))
				api.Error(w, http.StatusUnauthorized, "não autorizado")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
