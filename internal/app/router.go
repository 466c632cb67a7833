package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/clearcare-backend/internal/adapter/postgres"
	settingsrepo "github.com/heartmarshall/clearcare-backend/internal/adapter/postgres/settings"
	summaryrepo "github.com/heartmarshall/clearcare-backend/internal/adapter/postgres/summary"
	"github.com/heartmarshall/clearcare-backend/internal/config"
	"github.com/heartmarshall/clearcare-backend/internal/domain"
	settingssvc "github.com/heartmarshall/clearcare-backend/internal/service/settings"
	"github.com/heartmarshall/clearcare-backend/internal/service/summarizer"
	summarysvc "github.com/heartmarshall/clearcare-backend/internal/service/summary"
	"github.com/heartmarshall/clearcare-backend/internal/transport/middleware"
	"github.com/heartmarshall/clearcare-backend/internal/transport/rest"
)

// Generator is the text-generation capability behind the summarizer.
type Generator interface {
	Generate(ctx context.Context, p domain.Prompt) (string, error)
}

// TokenVerifier resolves a bearer token to an identity.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (domain.Identity, error)
}

// Deps are the process-wide collaborators the HTTP handler is built from.
type Deps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Pool      *pgxpool.Pool
	Generator Generator
	Verifier  TokenVerifier
	Limiter   middleware.Limiter
}

// NewHandler wires repositories, services and handlers into the HTTP API.
func NewHandler(d Deps) http.Handler {
	cfg := d.Config
	logger := d.Logger

	// Repositories.
	txm := postgres.NewTxManager(d.Pool)
	settingsRepo := settingsrepo.New(d.Pool)
	summaryRepo := summaryrepo.New(d.Pool)

	// Services.
	summarizerService := summarizer.NewService(logger, d.Generator, cfg.LLM.Timeout)
	settingsService := settingssvc.NewService(logger, settingsRepo, txm)
	summaryService := summarysvc.NewService(logger, settingsRepo, summarizerService, summaryRepo,
		summarysvc.WithPageSizes(cfg.History.DefaultPageSize, cfg.History.MaxPageSize),
	)

	// Handlers.
	checks := map[string]rest.Pinger{"database": d.Pool}
	if p, ok := d.Limiter.(rest.Pinger); ok {
		checks["ratelimit"] = p
	}
	healthHandler := rest.NewHealthHandler(BuildVersion(), checks)
	summaryHandler := rest.NewSummaryHandler(summaryService, logger)
	settingsHandler := rest.NewSettingsHandler(settingsService, logger)
	devHandler := rest.NewDevHandler(func(ctx context.Context) (time.Time, error) {
		return postgres.ServerTime(ctx, d.Pool)
	}, logger)

	public := middleware.Logger(logger)
	protected := middleware.Chain(
		middleware.Logger(logger),
		middleware.Auth(d.Verifier, logger),
	)
	limited := middleware.Chain(
		protected,
		middleware.RateLimit(d.Limiter, cfg.RateLimit.SummarizePerMinute, logger),
	)

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", public(http.HandlerFunc(healthHandler.Root)))
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.Handle("POST /api/summarize", limited(http.HandlerFunc(summaryHandler.Summarize)))
	mux.Handle("GET /api/summaries", protected(http.HandlerFunc(summaryHandler.List)))
	mux.Handle("DELETE /api/summaries", protected(http.HandlerFunc(summaryHandler.DeleteAll)))
	mux.Handle("DELETE /api/summaries/{id}", protected(http.HandlerFunc(summaryHandler.Delete)))
	mux.Handle("GET /api/user-settings", protected(http.HandlerFunc(settingsHandler.Get)))
	mux.Handle("PATCH /api/user-settings", protected(http.HandlerFunc(settingsHandler.Patch)))
	mux.Handle("GET /api/secure-test", protected(http.HandlerFunc(devHandler.SecureTest)))
	mux.Handle("GET /api/db-test", protected(http.HandlerFunc(devHandler.DBTest)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(mux)
}
