package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
	"github.com/heartmarshall/clearcare-backend/pkg/ctxutil"
)

// ListSummaries returns one page of the caller's visible history, newest first.
// With auto-delete on, rows older than the retention window are hidden but kept.
func (s *Service) ListSummaries(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summary.ListSummaries: settings: %w", err)
	}

	limit, offset := input.normalize(s.defaultPageSize, s.maxPageSize)
	since := settings.VisibilityWindow(s.now())

	items, err := s.summaries.List(ctx, userID, since, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("summary.ListSummaries: %w", err)
	}

	s.log.InfoContext(ctx, "summaries listed",
		slog.String("user_id", userID),
		slog.Int("count", len(items)),
		slog.Bool("auto_delete_30_days", settings.AutoDelete30Days),
	)

	return &ListResult{
		Summaries:        items,
		AutoDelete30Days: settings.AutoDelete30Days,
	}, nil
}

// DeleteSummary removes one of the caller's summaries.
// Returns ErrNotFound if the id is missing or belongs to someone else.
func (s *Service) DeleteSummary(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.summaries.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("summary.DeleteSummary: %w", err)
	}

	s.log.InfoContext(ctx, "summary deleted",
		slog.String("user_id", userID),
		slog.Int64("summary_id", id),
	)
	return nil
}

// DeleteAllSummaries removes every summary the caller owns, hidden ones included.
// Deleting from an empty history succeeds with a zero count.
func (s *Service) DeleteAllSummaries(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.summaries.DeleteAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("summary.DeleteAllSummaries: %w", err)
	}

	s.log.InfoContext(ctx, "summaries deleted",
		slog.String("user_id", userID),
		slog.Int64("deleted_count", n),
	)
	return n, nil
}
