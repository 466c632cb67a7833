// Package summarizer turns medication instructions into a plain-language
// explanation with a single constrained generation call.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

// DefaultTimeout bounds a generation call when none is configured.
const DefaultTimeout = 30 * time.Second

// generator is the text-generation capability.
type generator interface {
	Generate(ctx context.Context, p domain.Prompt) (string, error)
}

// Service wraps a generator with the prompt contract.
type Service struct {
	log     *slog.Logger
	gen     generator
	timeout time.Duration
}

// NewService creates a new summarizer.
func NewService(logger *slog.Logger, gen generator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		log:     logger.With("service", "summarizer"),
		gen:     gen,
		timeout: timeout,
	}
}

// Summarize makes exactly one generation call for raw and returns the
// trimmed output. The call is not cancelled by the caller's context; it is
// bounded only by the configured timeout.
// Returns ErrGenerationUnavailable when the call fails or times out and
// ErrEmptyGeneration when the output is blank.
func (s *Service) Summarize(ctx context.Context, raw string) (string, error) {
	genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	start := time.Now()
	out, err := s.gen.Generate(genCtx, BuildPrompt(raw))
	if err != nil {
		s.log.ErrorContext(ctx, "generation failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("summarizer.Summarize: %w: %w", domain.ErrGenerationUnavailable, err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("summarizer.Summarize: %w", domain.ErrEmptyGeneration)
	}

	s.log.DebugContext(ctx, "generation done",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("output_len", len(out)),
	)
	return out, nil
}
