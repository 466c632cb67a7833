package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

const msgBodyTooLarge = "Request body too large"

// bodyTooLarge reports whether a decode failed on the server's body cap.
func bodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

type errorResponse struct {
	Error string `json:"error"`
}

type summaryResponse struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	OriginalText string    `json:"original_text"`
	SummaryText  string    `json:"summary_text"`
	CreatedAt    time.Time `json:"created_at"`
}

type settingsResponse struct {
	UserID           string    `json:"user_id"`
	HistoryEnabled   bool      `json:"history_enabled"`
	AutoDelete30Days bool      `json:"auto_delete_30_days"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toSummaryResponse(s domain.Summary) summaryResponse {
	return summaryResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		OriginalText: s.OriginalText,
		SummaryText:  s.SummaryText,
		CreatedAt:    s.CreatedAt,
	}
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{
		UserID:           s.UserID,
		HistoryEnabled:   s.HistoryEnabled,
		AutoDelete30Days: s.AutoDelete30Days,
		UpdatedAt:        s.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
