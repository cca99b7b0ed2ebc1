// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/config"
	"github.com/dangerclosesec/structura/internal/database"
	"github.com/dangerclosesec/structura/internal/handler"
	"github.com/dangerclosesec/structura/internal/metrics"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/dangerclosesec/structura/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Initialize database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting database instance: %w", err)
	}
	defer sqlDB.Close()

	redisClient, err := database.OpenRedis(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up redis: %w", err)
	}
	var revocations auth.RevocationStore = auth.NoopRevocationStore{}
	if redisClient != nil {
		defer redisClient.Close()
		revocations = auth.NewRedisRevocationStore(redisClient)
	} else {
		logger.Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	structureRepo := repository.NewStructureRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	taskRepo := repository.NewWorkTaskRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
	gate := auth.NewGate(roleRepo)

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:  cfg.Cache.TTL,
		Size: cfg.Cache.Size,
	})
	defer cacheService.Close()

	var m *metrics.Metrics
	var opts []service.Option
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewDBStatsCollector(sqlDB, cfg.Database.Name),
		)
		m = metrics.NewMetrics(registry)
		opts = append(opts, service.WithRecorder(m))
	}

	// Initialize services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, revocations)
	structureService := service.NewStructureService(structureRepo, roleRepo, relationRepo, gate, opts...)
	roleService := service.NewRoleService(roleRepo, gate, append([]service.Option{service.WithCache(cacheService)}, opts...)...)
	relationService := service.NewRelationService(relationRepo, roleRepo, gate, opts...)
	taskService := service.NewWorkTaskService(taskRepo, userRepo, roleRepo, relationRepo, gate, cacheService, opts...)
	meetingService := service.NewMeetingService(meetingRepo, userRepo, gate, opts...)

	router := handler.NewRouter(handler.RouterConfig{
		Logger:         logger,
		Authenticator:  userService,
		Gate:           gate,
		Metrics:        m,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Auth:           handler.NewAuthHandler(userService),
		Users:          handler.NewUserHandler(userService),
		Structures:     handler.NewStructureHandler(structureService),
		Roles:          handler.NewRoleHandler(roleService),
		Relations:      handler.NewRelationHandler(relationService),
		WorkTasks:      handler.NewWorkTaskHandler(taskService),
		Meetings:       handler.NewMeetingHandler(meetingService),
		Health:         handler.NewHealthHandler(sqlDB, redisClient, version),
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "version", version)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
