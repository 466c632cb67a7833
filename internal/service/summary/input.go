package summary

import (
	"strings"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

// SummarizeInput holds the raw instructions to explain.
type SummarizeInput struct {
	Instructions string
}

// Validate checks that instructions are present and not blank.
func (i SummarizeInput) Validate() error {
	if strings.TrimSpace(i.Instructions) == "" {
		return domain.NewValidationError("instructions", "required")
	}
	return nil
}

// ListInput holds raw pagination values; Limit <= 0 selects the default page size.
type ListInput struct {
	Limit  int
	Offset int
}

// normalize applies defaults and clamps values.
func (i ListInput) normalize(def, maxSize int) (limit, offset int) {
	limit = i.Limit
	if limit <= 0 {
		limit = def
	}
	if limit > maxSize {
		limit = maxSize
	}

	offset = i.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListResult is one page of visible history plus the flag that shaped it.
type ListResult struct {
	Summaries        []domain.Summary
	AutoDelete30Days bool
}
