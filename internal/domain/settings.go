package domain

import "time"

// RetentionWindow is how far back history stays visible while
// AutoDelete30Days is on.
const RetentionWindow = 30 * 24 * time.Hour

// UserSettings holds the per-identity privacy preferences.
type UserSettings struct {
	UserID           string
	HistoryEnabled   bool
	AutoDelete30Days bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultUserSettings returns the settings a new identity starts with.
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:           userID,
		HistoryEnabled:   true,
		AutoDelete30Days: false,
	}
}

// ShouldPersist reports whether a fresh summary may be written to history.
// It must be evaluated on the snapshot loaded before generation.
func (s UserSettings) ShouldPersist() bool {
	return s.HistoryEnabled
}

// VisibilityWindow returns the inclusive lower bound on created_at for
// history reads, or nil when history is unbounded. Rows outside the window
// are hidden, not deleted.
func (s UserSettings) VisibilityWindow(now time.Time) *time.Time {
	if !s.AutoDelete30Days {
		return nil
	}
	bound := now.Add(-RetentionWindow)
	return &bound
}

// SettingsPatch is a partial update of UserSettings. Nil means unchanged.
type SettingsPatch struct {
	HistoryEnabled   *bool
	AutoDelete30Days *bool
}

// IsEmpty reports whether the patch carries no fields.
func (p SettingsPatch) IsEmpty() bool {
	return p.HistoryEnabled == nil && p.AutoDelete30Days == nil
}
