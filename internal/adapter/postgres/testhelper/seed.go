package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh identity-provider style user id.
func NewUserID() string {
	return "uid-" + uniqueSuffix() + uniqueSuffix()
}

// SeedSettings inserts a user_settings row with the given flags.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, userID string, historyEnabled, autoDelete bool) domain.UserSettings {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.UserSettings{
		UserID:           userID,
		HistoryEnabled:   historyEnabled,
		AutoDelete30Days: autoDelete,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_settings (user_id, history_enabled, auto_delete_30_days, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.UserID, s.HistoryEnabled, s.AutoDelete30Days, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings: %v", err)
	}

	return s
}

// SeedSummary inserts a summary with an explicit created_at.
func SeedSummary(t *testing.T, pool *pgxpool.Pool, userID string, createdAt time.Time) domain.Summary {
	t.Helper()

	s := domain.Summary{
		UserID:       userID,
		OriginalText: "Take 1 tablet daily " + uniqueSuffix(),
		SummaryText:  "Summary:\nOne tablet a day.",
		CreatedAt:    createdAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO summaries (user_id, original_text, summary_text, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		s.UserID, s.OriginalText, s.SummaryText, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSummary: %v", err)
	}

	return s
}

// CountSummaries returns the number of stored summaries for a user.
func CountSummaries(t *testing.T, pool *pgxpool.Pool, userID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM summaries WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountSummaries: %v", err)
	}
	return n
}
