// Package server собирает HTTP API новостного портала из обработчиков и middleware.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/handlers"
	"github.com/iudanet/unipress/internal/server/jwt"
	"github.com/iudanet/unipress/internal/server/metrics"
	"github.com/iudanet/unipress/internal/server/middleware"
	"github.com/iudanet/unipress/internal/server/realtime"
	"github.com/iudanet/unipress/internal/server/storage"
	"github.com/iudanet/unipress/pkg/api"
)

// Deps зависимости роутера
type Deps struct {
	Logger  *slog.Logger
	Storage storage.Storage
	JWT     *jwt.Service
	Hub     *realtime.Hub
	Metrics *metrics.Metrics
	// Limiter общий лимит запросов с одного адреса
	Limiter *middleware.RateLimiter
	// AuthLimiter отдельный, более строгий лимит на вход и регистрацию
	AuthLimiter *middleware.RateLimiter
	Version     string
}

// NewRouter регистрирует маршруты /api/v1 и /metrics
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var pub handlers.Publisher = handlers.NopPublisher{}
	if d.Hub != nil {
		pub = d.Hub
	}

	authHandler := handlers.NewAuthHandler(logger, d.Storage, d.Storage, d.JWT)
	articleHandler := handlers.NewArticleHandler(logger, d.Storage, d.Storage, pub)
	commentHandler := handlers.NewCommentHandler(logger, d.Storage, d.Storage, d.Storage, pub)
	reactionHandler := handlers.NewReactionHandler(logger, d.Storage, d.Storage, d.Storage, pub)
	bookmarkHandler := handlers.NewBookmarkHandler(logger, d.Storage, pub)
	adminHandler := handlers.NewAdminHandler(logger, d.Storage, d.Storage, d.Storage)
	healthHandler := handlers.NewHealthHandler(logger, d.Storage, d.Version)

	requireAuth := middleware.AuthMiddleware(logger, d.JWT)
	optionalAuth := middleware.OptionalAuthMiddleware(logger, d.JWT)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/metrics"}))
	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
	}
	if d.Limiter != nil {
		r.Use(middleware.RateLimitMiddleware(d.Limiter))
	}

	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, logger, api.CodeNotFound, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, logger, api.CodeValidation, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if d.AuthLimiter != nil {
					r.Use(middleware.RateLimitMiddleware(d.AuthLimiter))
				}
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
				r.Post("/refresh", authHandler.Refresh)
			})
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})
		})

		// чтение доступно без входа
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/articles", articleHandler.List)
			r.Get("/articles/{id}", articleHandler.Get)
			r.Get("/articles/{id}/share", articleHandler.Share)
			r.Get("/articles/{id}/comments", commentHandler.List)
			r.Get("/articles/{id}/reactions", reactionHandler.Summary)
			// анонимная реакция разрешается настройками сайта
			r.Post("/articles/{id}/reactions", reactionHandler.Toggle)
			if d.Hub != nil {
				r.Get("/realtime", handlers.NewRealtimeHandler(logger, d.Hub).Serve)
			}
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/articles", articleHandler.Create)
			r.Put("/articles/{id}", articleHandler.Update)
			r.Patch("/articles/{id}/status", articleHandler.ChangeStatus)
			r.Post("/articles/{id}/comments", commentHandler.Create)
			r.Delete("/comments/{id}", commentHandler.Delete)
			r.Get("/bookmarks", bookmarkHandler.List)
			r.Post("/bookmarks", bookmarkHandler.Toggle)

			r.Route("/admin", func(r chi.Router) {
				r.With(middleware.RequireRole(logger, models.RoleEditor)).Get("/moderation", adminHandler.Moderation)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(logger, models.RoleAdmin))
					r.Put("/users/{id}/role", adminHandler.SetRole)
					r.Get("/settings", adminHandler.Settings)
					r.Put("/settings", adminHandler.UpdateSettings)
				})
			})
		})
	})

	return r
}
