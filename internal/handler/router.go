package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/metrics"
	"github.com/dangerclosesec/structura/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries everything the HTTP surface is built from. Metrics may
// be nil to disable instrumentation.
type RouterConfig struct {
	Logger         *slog.Logger
	Authenticator  middleware.Authenticator
	Gate           *auth.Gate
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	AllowedOrigins []string

	Auth       *AuthHandler
	Users      *UserHandler
	Structures *StructureHandler
	Roles      *RoleHandler
	Relations  *RelationHandler
	WorkTasks  *WorkTaskHandler
	Meetings   *MeetingHandler
	Health     *HealthHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Liveness)
		r.Get("/ready", cfg.Health.Readiness)
	}
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	authenticate := middleware.AuthMiddleware(cfg.Authenticator)
	withRole := middleware.CurrentRole(cfg.Gate)
	adminOnly := middleware.RequireTeamAdministrator(cfg.Gate)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(chimw.AllowContentType("application/json")).Post("/register", cfg.Auth.RegisterHandler)
			r.With(chimw.AllowContentType("application/json")).Post("/login", cfg.Auth.LoginHandler)
			r.With(authenticate).Post("/logout", cfg.Auth.LogoutHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(authenticate)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", cfg.Users.Me)
				r.Patch("/me", cfg.Users.UpdateMe)
				r.Get("/{id}", cfg.Users.Get)
			})

			r.Route("/structures", func(r chi.Router) {
				r.Post("/", cfg.Structures.Create)
				r.Get("/me", cfg.Structures.Mine)
				r.Get("/team", cfg.Structures.Team)
				r.With(withRole).Get("/hierarchy", cfg.Structures.Hierarchy)
				r.With(withRole, adminOnly).Put("/me", cfg.Structures.Update)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Use(withRole)
				r.Get("/my", cfg.Roles.Mine)
				r.Put("/my", cfg.Roles.UpdateMine)
				r.With(adminOnly).Post("/", cfg.Roles.Create)
				r.Delete("/{id}", cfg.Roles.Delete)
			})

			r.Route("/relations", func(r chi.Router) {
				r.Use(withRole)
				r.With(adminOnly).Post("/", cfg.Relations.Create)
				r.With(adminOnly).Delete("/{id}", cfg.Relations.Delete)
				r.Get("/me-subordinate", cfg.Relations.MySubordinates)
				r.Get("/me-superior", cfg.Relations.MySuperiors)
			})

			r.Route("/work-tasks", func(r chi.Router) {
				r.Post("/", cfg.WorkTasks.Create)
				r.Get("/assigned", cfg.WorkTasks.Assigned)
				r.Get("/created", cfg.WorkTasks.Created)
				r.Get("/rating/me", cfg.WorkTasks.MyRating)
				r.With(withRole).Get("/rating/team", cfg.WorkTasks.TeamRating)
				r.Put("/{id}", cfg.WorkTasks.Update)
				r.Patch("/{id}/status", cfg.WorkTasks.UpdateStatus)
				r.Patch("/{id}/rate", cfg.WorkTasks.UpdateRate)
				r.Delete("/{id}", cfg.WorkTasks.Delete)
			})

			r.Route("/meetings", func(r chi.Router) {
				r.Post("/", cfg.Meetings.Create)
				r.Get("/my", cfg.Meetings.Mine)
				r.Put("/{id}", cfg.Meetings.Update)
				r.Delete("/{id}", cfg.Meetings.Delete)
				r.Post("/{id}/participants/{userID}", cfg.Meetings.AddUser)
				r.Delete("/{id}/participants/{userID}", cfg.Meetings.RemoveUser)
			})
		})
	})

	return r
}
