// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
)

type contextKey string

const (
	userKey   contextKey = "structura_user"
	claimsKey contextKey = "structura_claims"
	roleKey   contextKey = "structura_role"
)

// Authenticator resolves a bearer token to its user. service.UserService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, *auth.Claims, error)
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token and
// stores the authenticated user and its claims in the request context.
func AuthMiddleware(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			user, claims, err := authenticator.Authenticate(r.Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInactiveUser):
					respondWithError(w, http.StatusUnauthorized, "User is inactive")
				case errors.Is(err, domain.ErrUnauthorized):
					respondWithError(w, http.StatusUnauthorized, "Invalid token")
				default:
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, claimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
