package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/portfolio-backend/internal/config"
	"github.com/heartmarshall/portfolio-backend/internal/domain"
	"github.com/heartmarshall/portfolio-backend/internal/transport/middleware"
	"github.com/heartmarshall/portfolio-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

type routerDeps struct {
	health   *rest.HealthHandler
	projects *rest.ProjectHandler
	media    http.Handler // nil unless files are served locally
	gate     tokenValidator
	limiter  *middleware.RateLimiter
}

// newRouter mounts all routes behind the global middleware stack:
// recovery, request id, access log, CORS, then auth.
func newRouter(logger *slog.Logger, cfg *config.Config, d routerDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/live", d.health.Live)
	mux.HandleFunc("GET /api/ready", d.health.Ready)
	mux.HandleFunc("GET /api/health", d.health.Health)

	d.projects.Register(mux, middleware.Chain(
		d.limiter.LimitMutations(cfg.RateLimit.MutationsPerMinute),
		middleware.AdminOnly,
	))

	if d.media != nil {
		mux.Handle("GET /media/", http.StripPrefix("/media/", d.media))
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(d.gate, cfg.Auth.CookieName),
	)(mux)
}
