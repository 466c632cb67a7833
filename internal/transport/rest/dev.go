package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/clearcare-backend/pkg/ctxutil"
)

// ServerClock reads the database clock.
type ServerClock func(ctx context.Context) (time.Time, error)

// DevHandler serves diagnostic endpoints that prove auth and the database
// work end to end.
type DevHandler struct {
	clock ServerClock
	log   *slog.Logger
}

// NewDevHandler creates a DevHandler.
func NewDevHandler(clock ServerClock, logger *slog.Logger) *DevHandler {
	return &DevHandler{clock: clock, log: logger.With("handler", "dev")}
}

type secureTestResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
	Email   *string `json:"email"`
}

type dbTestResponse struct {
	Message    string    `json:"message"`
	ServerTime time.Time `json:"serverTime"`
	UID        string    `json:"uid"`
}

// SecureTest handles GET /api/secure-test.
func (h *DevHandler) SecureTest(w http.ResponseWriter, r *http.Request) {
	uid, _ := ctxutil.UserIDFromCtx(r.Context())
	resp := secureTestResponse{Message: "Secure route works!", UID: uid}
	if email := ctxutil.UserEmailFromCtx(r.Context()); email != "" {
		resp.Email = &email
	}
	writeJSON(w, http.StatusOK, resp)
}

// DBTest handles GET /api/db-test.
func (h *DevHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	now, err := h.clock(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "db test failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Database test failed")
		return
	}

	uid, _ := ctxutil.UserIDFromCtx(r.Context())
	writeJSON(w, http.StatusOK, dbTestResponse{
		Message:    "Database connection OK",
		ServerTime: now,
		UID:        uid,
	})
}
