package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/clearcare-backend/internal/adapter/identity/firebase"
	"github.com/heartmarshall/clearcare-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/clearcare-backend/internal/adapter/llm/gemini"
	"github.com/heartmarshall/clearcare-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/clearcare-backend/internal/adapter/redis"
	"github.com/heartmarshall/clearcare-backend/internal/auth"
	"github.com/heartmarshall/clearcare-backend/internal/config"
	"github.com/heartmarshall/clearcare-backend/internal/transport/middleware"
)

// NewGenerator builds the generation client selected by cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	model := cfg.DefaultModel()

	switch cfg.Provider {
	case config.LLMProviderOpenAI:
		return openai.New(openai.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}), nil
	case config.LLMProviderAnthropic:
		return anthropic.New(anthropic.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}), nil
	case config.LLMProviderGemini:
		return gemini.New(ctx, gemini.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// NewVerifier builds the bearer-token verifier selected by cfg.Provider.
func NewVerifier(ctx context.Context, cfg config.AuthConfig) (TokenVerifier, error) {
	switch cfg.Provider {
	case config.AuthProviderFirebase:
		return firebase.NewVerifier(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
	case config.AuthProviderJWT:
		return auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTokenTTL), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}
}

// NewLimiter returns a redis-backed limiter when an address is configured,
// otherwise an in-process one. The returned func releases its resources.
func NewLimiter(ctx context.Context, cfg config.RateLimitConfig, logger *slog.Logger) (middleware.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		rl := middleware.NewRateLimiter(5 * time.Minute)
		return rl, rl.Stop, nil
	}

	l, err := redis.NewLimiter(ctx, redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("rate limiter uses redis", slog.String("addr", cfg.RedisAddr))

	return l, func() {
		if err := l.Close(); err != nil {
			logger.Warn("close redis", slog.String("error", err.Error()))
		}
	}, nil
}
