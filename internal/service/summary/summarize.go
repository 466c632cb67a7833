package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
	"github.com/heartmarshall/clearcare-backend/pkg/ctxutil"
)

// Summarize validates the input, resolves the caller's settings, generates
// an explanation and persists it only if history was enabled in the
// settings snapshot read before generation. Any failure aborts with nothing
// written.
func (s *Service) Summarize(ctx context.Context, input SummarizeInput) (*domain.SummaryResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summary.Summarize: settings: %w", err)
	}

	text, err := s.summarizer.Summarize(ctx, input.Instructions)
	if err != nil {
		return nil, fmt.Errorf("summary.Summarize: %w", err)
	}

	result := &domain.SummaryResult{Summary: text}

	if settings.ShouldPersist() {
		record, err := s.summaries.Create(ctx, &domain.Summary{
			UserID:       userID,
			OriginalText: input.Instructions,
			SummaryText:  text,
		})
		if err != nil {
			return nil, fmt.Errorf("summary.Summarize: persist: %w", err)
		}
		result.Saved = true
		result.Record = record
	}

	attrs := []any{
		slog.String("user_id", userID),
		slog.Bool("saved", result.Saved),
	}
	if result.Record != nil {
		attrs = append(attrs, slog.Int64("summary_id", result.Record.ID))
	}
	s.log.InfoContext(ctx, "summary generated", attrs...)

	return result, nil
}
