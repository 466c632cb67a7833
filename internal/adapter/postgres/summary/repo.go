// Package summary implements the summary history repository using PostgreSQL.
// Every operation is scoped to a single owner.
package summary

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/clearcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

const entity = "summary"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides summary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new summary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a summary and returns it with the assigned id and created_at.
func (r *Repo) Create(ctx context.Context, s *domain.Summary) (*domain.Summary, error) {
	query, args, err := psql.Insert("summaries").
		Columns("user_id", "original_text", "summary_text").
		Values(s.UserID, s.OriginalText, s.SummaryText).
		Suffix("RETURNING id, user_id, original_text, summary_text, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanSummary(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, "new")
	}
	return out, nil
}

// List returns one page of the owner's summaries ordered by created_at DESC, id DESC.
// A non-nil since hides rows created before it. Returns an empty slice if nothing matches.
func (r *Repo) List(ctx context.Context, userID string, since *time.Time, limit, offset int) ([]domain.Summary, error) {
	b := psql.Select("id", "user_id", "original_text", "summary_text", "created_at").
		From("summaries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if since != nil {
		b = b.Where(sq.GtOrEq{"created_at": *since})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Summary, error) {
		s, err := scanSummary(row)
		if err != nil {
			return domain.Summary{}, err
		}
		return *s, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	if items == nil {
		items = []domain.Summary{}
	}
	return items, nil
}

// Delete removes one summary owned by userID.
// Returns domain.ErrNotFound if the id does not exist or belongs to another owner.
func (r *Repo) Delete(ctx context.Context, userID string, id int64) error {
	query, args, err := psql.Delete("summaries").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, strconv.FormatInt(id, 10))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every summary owned by userID, including rows hidden
// by the retention window. Returns the number of deleted rows.
func (r *Repo) DeleteAll(ctx context.Context, userID string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM summaries WHERE user_id = $1`, userID)
	if err != nil {
		return 0, postgres.MapError(err, entity, userID)
	}
	return tag.RowsAffected(), nil
}

// PurgeExpired hard-deletes summaries created before the cutoff whose owner
// has auto-delete enabled. Returns the number of deleted rows.
func (r *Repo) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psql.Delete("summaries").
		Where(sq.Lt{"created_at": before}).
		Where("user_id IN (SELECT user_id FROM user_settings WHERE auto_delete_30_days)").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, "expired")
	}
	return tag.RowsAffected(), nil
}

func scanSummary(row pgx.Row) (*domain.Summary, error) {
	var s domain.Summary
	if err := row.Scan(&s.ID, &s.UserID, &s.OriginalText, &s.SummaryText, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
