// Package settings manages the per-identity privacy settings.
package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
	"github.com/heartmarshall/clearcare-backend/pkg/ctxutil"
)

// settingsRepo defines the settings repository interface needed by the settings service.
type settingsRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.UserSettings, error)
	Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.UserSettings, error)
}

// txManager defines the transaction manager interface needed by the settings service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements settings read and partial update.
type Service struct {
	log      *slog.Logger
	settings settingsRepo
	tx       txManager
}

// NewService creates a new settings service instance.
func NewService(logger *slog.Logger, settings settingsRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "settings"),
		settings: settings,
		tx:       tx,
	}
}

// Get returns the caller's settings, creating the defaults on first access.
func (s *Service) Get(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("settings.Get: %w", err)
	}

	return settings, nil
}

// Patch applies the present fields of patch to the caller's settings.
// An empty patch fails with ErrNoFieldsProvided before touching the store.
// A missing row is created first so a patch never reports not found.
func (s *Service) Patch(ctx context.Context, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsProvided
	}

	var updated *domain.UserSettings
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.settings.GetOrCreate(txCtx, userID); err != nil {
			return fmt.Errorf("get or create: %w", err)
		}

		u, err := s.settings.Update(txCtx, userID, patch)
		if err != nil {
			return fmt.Errorf("update: %w", err)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("settings.Patch: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID),
		slog.Bool("history_enabled", updated.HistoryEnabled),
		slog.Bool("auto_delete_30_days", updated.AutoDelete30Days),
	)

	return updated, nil
}
