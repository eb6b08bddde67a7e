// Package middleware contains the bearer-token authentication middleware.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/abgdnv/bookstore/pkg/auth"
	"github.com/abgdnv/bookstore/pkg/web"
)

type contextKey string

const UserIDContextKey = contextKey("userID")

// AuthMiddleware verifies the bearer token in the Authorization header and
// puts the token subject into the request context as the user ID. A missing
// or invalid token yields 401 with a JSON error body.
func AuthMiddleware(verifier auth.Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				web.RespondError(w, logger, http.StatusUnauthorized, "Unauthorized")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader { // no Bearer prefix
				web.RespondError(w, logger, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token, err := verifier.Verify(r.Context(), tokenString)
			if err != nil {
				logger.DebugContext(r.Context(), "Token verification failed", "error", err)
				web.RespondError(w, logger, http.StatusUnauthorized, "Unauthorized")
				return
			}

			subject, ok := token.Subject()
			if !ok || subject == "" {
				web.RespondError(w, logger, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDContextKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextUserID retrieves the user ID from the context.
func ContextUserID(ctx context.Context) string {
	value := ctx.Value(UserIDContextKey)
	if value != nil {
		return value.(string)
	}
	return ""
}
