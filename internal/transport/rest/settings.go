package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

const (
	msgNoValidFields        = "No valid fields to update"
	msgSettingsFetchFailed  = "Failed to fetch user settings"
	msgSettingsUpdateFailed = "Failed to update user settings"
)

type settingsService interface {
	Get(ctx context.Context) (*domain.UserSettings, error)
	Patch(ctx context.Context, patch domain.SettingsPatch) (*domain.UserSettings, error)
}

// SettingsHandler serves the user-settings endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type settingsEnvelope struct {
	Settings settingsResponse `json:"settings"`
}

// Get handles GET /api/user-settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		h.log.ErrorContext(r.Context(), "get settings failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgSettingsFetchFailed)
		return
	}

	writeJSON(w, http.StatusOK, settingsEnvelope{Settings: toSettingsResponse(s)})
}

// Patch handles PATCH /api/user-settings. Only JSON booleans count as
// provided; any other value for a known field is ignored.
func (h *SettingsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeSettingsPatch(r)
	if err != nil {
		msg := "invalid request body"
		if bodyTooLarge(err) {
			msg = msgBodyTooLarge
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s, err := h.svc.Patch(r.Context(), patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFieldsProvided):
			writeError(w, http.StatusBadRequest, msgNoValidFields)
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
		default:
			h.log.ErrorContext(r.Context(), "patch settings failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, msgSettingsUpdateFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, settingsEnvelope{Settings: toSettingsResponse(s)})
}

func decodeSettingsPatch(r *http.Request) (domain.SettingsPatch, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return domain.SettingsPatch{}, err
	}

	return domain.SettingsPatch{
		HistoryEnabled:   boolField(raw, "history_enabled"),
		AutoDelete30Days: boolField(raw, "auto_delete_30_days"),
	}, nil
}

func boolField(raw map[string]json.RawMessage, key string) *bool {
	v, ok := raw[key]
	if !ok || string(v) == "null" {
		return nil
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return nil
	}
	return &b
}
