// Package summary orchestrates summarization requests and the caller's
// summary history under their privacy settings.
package summary

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

// Page size defaults used when the service is built without explicit limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// settingsRepo defines the settings access needed by the summary service.
type settingsRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.UserSettings, error)
}

// summarizer defines the generation gateway needed by the summary service.
type summarizer interface {
	Summarize(ctx context.Context, raw string) (string, error)
}

// summaryRepo defines the history repository interface needed by the summary service.
type summaryRepo interface {
	Create(ctx context.Context, s *domain.Summary) (*domain.Summary, error)
	List(ctx context.Context, userID string, since *time.Time, limit, offset int) ([]domain.Summary, error)
	Delete(ctx context.Context, userID string, id int64) error
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

// Service implements the summarize, list and delete flows.
type Service struct {
	log        *slog.Logger
	settings   settingsRepo
	summarizer summarizer
	summaries  summaryRepo
	now        func() time.Time

	defaultPageSize int
	maxPageSize     int
}

// Option configures a Service.
type Option func(*Service)

// WithPageSizes overrides the default and maximum history page sizes.
func WithPageSizes(def, maxSize int) Option {
	return func(s *Service) {
		if def > 0 {
			s.defaultPageSize = def
		}
		if maxSize >= s.defaultPageSize {
			s.maxPageSize = maxSize
		}
	}
}

// WithClock overrides the time source used for the retention window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new summary service instance.
func NewService(
	logger *slog.Logger,
	settings settingsRepo,
	summarizer summarizer,
	summaries summaryRepo,
	opts ...Option,
) *Service {
	s := &Service{
		log:             logger.With("service", "summary"),
		settings:        settings,
		summarizer:      summarizer,
		summaries:       summaries,
		now:             time.Now,
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
