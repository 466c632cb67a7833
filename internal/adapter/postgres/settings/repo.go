// Package settings implements the per-identity privacy settings repository using PostgreSQL.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/clearcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

const entity = "user_settings"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"user_id", "history_enabled", "auto_delete_30_days", "created_at", "updated_at"}

// Repo provides user-settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the settings row for userID.
// Returns domain.ErrNotFound if no row exists yet.
func (r *Repo) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(columns...).
		From("user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	s, err := scanSettings(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return s, nil
}

// GetOrCreate returns the settings row for userID, inserting the defaults
// first if none exists. Concurrent first calls converge on a single row.
func (r *Repo) GetOrCreate(ctx context.Context, userID string) (*domain.UserSettings, error) {
	s, err := r.Get(ctx, userID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	def := domain.DefaultUserSettings(userID)

	query, args, err := psql.Insert("user_settings").
		Columns("user_id", "history_enabled", "auto_delete_30_days").
		Values(def.UserID, def.HistoryEnabled, def.AutoDelete30Days).
		Suffix("ON CONFLICT (user_id) DO NOTHING RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	s, err = scanSettings(q.QueryRow(ctx, query, args...))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, entity, userID)
	}

	// Lost the insert race: the winner's row is visible now.
	return r.Get(ctx, userID)
}

// Update applies the non-nil fields of patch and bumps updated_at.
// Returns domain.ErrNotFound if no row exists for userID.
func (r *Repo) Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsProvided
	}

	b := psql.Update("user_settings").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + returning())
	if patch.HistoryEnabled != nil {
		b = b.Set("history_enabled", *patch.HistoryEnabled)
	}
	if patch.AutoDelete30Days != nil {
		b = b.Set("auto_delete_30_days", *patch.AutoDelete30Days)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scanSettings(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return s, nil
}

func returning() string {
	return strings.Join(columns, ", ")
}

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var s domain.UserSettings
	if err := row.Scan(&s.UserID, &s.HistoryEnabled, &s.AutoDelete30Days, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
