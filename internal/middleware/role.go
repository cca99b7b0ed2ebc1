package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// CurrentRole resolves the authenticated user's role once per request. Must run
// after AuthMiddleware.
func CurrentRole(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			role, err := gate.ResolveCurrentRole(r.Context(), user)
			if err != nil {
				if errors.Is(err, domain.ErrRoleNotFoundForUser) {
					respondWithError(w, http.StatusNotFound, "Not found role for this user")
					return
				}
				slog.ErrorContext(r.Context(), "Resolving current role", "error", err, "requestID", chmw.GetReqID(r.Context()))
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

// RequireTeamAdministrator lets only the structure administrator through. Must
// run after CurrentRole.
func RequireTeamAdministrator(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := RoleFromContext(r.Context())
			if _, err := gate.RequireTeamAdministrator(role); err != nil {
				respondWithError(w, http.StatusForbidden, "You are not team administrator")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RoleFromContext(ctx context.Context) (*model.Role, bool) {
	role, ok := ctx.Value(roleKey).(*model.Role)
	return role, ok && role != nil
}

func WithRole(ctx context.Context, role *model.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}
