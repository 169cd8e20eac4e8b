// Package main is the entrypoint for the Whisperbox API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/whisperbox/whisperbox/internal/auth"
	"github.com/whisperbox/whisperbox/internal/cache"
	"github.com/whisperbox/whisperbox/internal/config"
	"github.com/whisperbox/whisperbox/internal/handler"
	"github.com/whisperbox/whisperbox/internal/metrics"
	"github.com/whisperbox/whisperbox/internal/middleware"
	"github.com/whisperbox/whisperbox/internal/repository"
	"github.com/whisperbox/whisperbox/internal/server"
	"github.com/whisperbox/whisperbox/internal/service"
	"github.com/whisperbox/whisperbox/internal/suggest"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	if err := repository.Migrate(cfg.DatabaseURL); err != nil {
		logger.Error("failed to run migrations",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		repo.Close()
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	metricsRecorder := metrics.NewNoop()

	userService := service.NewUserService(repo, logger, metricsRecorder)
	messageService := service.NewMessageService(repo, repo, logger, metricsRecorder)

	oauthManager := auth.NewOAuthManager(auth.OAuthConfig{
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: cfg.GoogleClientSecret,
		RedirectURL:        cfg.OAuthRedirectURL,
	})
	tokenManager := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionMaxAge)

	suggestClient := suggest.NewClient(cfg.SuggestAPIURL, cfg.SuggestAPIToken, cfg.SuggestTimeout)
	generator := suggest.NewGenerator(suggestClient, logger, metricsRecorder)

	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	authHandler := handler.NewAuthHandler(
		oauthManager, tokenManager, userService, cacheClient,
		cfg.BaseURL, !cfg.IsDevelopment(), logger,
	)
	messageHandler := handler.NewMessageHandler(messageService, userService, logger)
	userHandler := handler.NewUserHandler(userService, cfg.BaseURL, logger)
	suggestHandler := handler.NewSuggestHandler(generator)

	r := setupRouter(routerDeps{
		base:     h,
		health:   healthHandler,
		auth:     authHandler,
		messages: messageHandler,
		users:    userHandler,
		suggest:  suggestHandler,
		tokens:   tokenManager,
		cache:    cacheClient,
		cfg:      cfg,
		logger:   logger,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("redis", func(context.Context) error {
		return cacheClient.Close()
	})
	srv.OnShutdown("postgres", func(context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"base_url", cfg.BaseURL,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	base     *handler.Handler
	health   *handler.HealthHandler
	auth     *handler.AuthHandler
	messages *handler.MessageHandler
	users    *handler.UserHandler
	suggest  *handler.SuggestHandler
	tokens   *auth.TokenManager
	cache    *cache.Cache
	cfg      *config.Config
	logger   *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment: deps.cfg.IsDevelopment(),
	}))
	r.Use(middleware.MaxBodySize(deps.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	r.NotFound(deps.base.NotFound)
	r.MethodNotAllowed(deps.base.MethodNotAllowed)

	// Health endpoints (no auth required)
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)

	// Root info endpoint
	r.Get("/", deps.base.Hello)

	// Sign-in flow
	r.Route("/auth", func(r chi.Router) {
		r.Get("/{provider}/login", deps.auth.Login)
		r.Get("/{provider}/callback", deps.auth.Callback)
		r.Post("/logout", deps.auth.Logout)
	})

	intakeLimit := middleware.RateLimitConfig{
		Logger:  deps.logger,
		Cache:   deps.cache,
		Enabled: deps.cfg.RateLimitIntakeEnabled,
		RPS:     deps.cfg.RateLimitIntakeRPS,
		Burst:   deps.cfg.RateLimitIntakeBurst,
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Anonymous endpoints
		r.With(middleware.RateLimitIP(intakeLimit)).Post("/messages", deps.messages.Create)
		r.Get("/suggest", deps.suggest.Suggest)

		// Session-gated inbox management
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(deps.tokens))
			r.Get("/messages", deps.messages.List)
			r.Delete("/messages", deps.messages.Delete)
			r.Patch("/messages/accept", deps.messages.ToggleAccept)
			r.Get("/me", deps.users.Me)
		})
	})

	return r
}

// redactURL removes credentials from a URL for safe logging.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	if u.User != nil {
		u.User = url.UserPassword("xxx", "xxx")
	}
	return u.String()
}

// sanitizeError removes a sensitive URL from an error message.
func sanitizeError(err error, sensitiveURL string) string {
	msg := err.Error()
	if sensitiveURL != "" {
		msg = strings.ReplaceAll(msg, sensitiveURL, redactURL(sensitiveURL))
	}
	return msg
}
