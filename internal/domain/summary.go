package domain

import "time"

// Summary is one persisted (original instructions, explanation) pair.
type Summary struct {
	ID           int64
	UserID       string
	OriginalText string
	SummaryText  string
	CreatedAt    time.Time
}

// SummaryResult is the outcome of a single summarization request.
// Record is nil when history was disabled at generation time.
type SummaryResult struct {
	Summary string
	Saved   bool
	Record  *Summary
}

// Prompt is a single generation request: a fixed system message and the
// user-facing instructions prompt.
type Prompt struct {
	System string
	User   string
}
