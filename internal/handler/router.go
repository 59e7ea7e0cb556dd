package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/pwstrength/internal/config"
	"github.com/vaultpass/pwstrength/internal/middleware"
	"github.com/vaultpass/pwstrength/internal/service"
)

// NewRouter wires the HTTP API. ctx bounds background work such as rate
// limiter cleanup.
func NewRouter(ctx context.Context, cfg config.Config, svc *service.StrengthService, logger *slog.Logger) http.Handler {
	h := NewStrengthHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.BearerAuth(cfg.JWTSecret))
		}
		r.Post("/api/v1/classify", h.HandleClassify)
		r.Post("/api/v1/generate", h.HandleGenerate)
	})

	return r
}
