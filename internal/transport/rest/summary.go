package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
	"github.com/heartmarshall/clearcare-backend/internal/service/summary"
)

// Client-facing messages for the summary endpoints.
const (
	msgInvalidInstructions = "Missing or invalid 'instructions' field"
	msgSummarizeFailed     = "Failed to summarize instructions"
	msgNoSummary           = "No summary generated"
	msgFetchFailed         = "Failed to fetch summaries"
	msgSummaryNotFound     = "Summary not found"
	msgDeleteFailed        = "Failed to delete summary"
	msgDeleteAllFailed     = "Failed to delete summaries"
	msgUnauthorized        = "Unauthorized"
)

type summaryService interface {
	Summarize(ctx context.Context, input summary.SummarizeInput) (*domain.SummaryResult, error)
	ListSummaries(ctx context.Context, input summary.ListInput) (*summary.ListResult, error)
	DeleteSummary(ctx context.Context, id int64) error
	DeleteAllSummaries(ctx context.Context) (int64, error)
}

// SummaryHandler serves summarization and history endpoints.
type SummaryHandler struct {
	svc summaryService
	log *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc summaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: logger.With("handler", "summary")}
}

type summarizeRequest struct {
	Instructions *string `json:"instructions"`
}

type summarizeResponse struct {
	Summary string           `json:"summary"`
	Saved   bool             `json:"saved"`
	Record  *summaryResponse `json:"record"`
}

type listResponse struct {
	Summaries        []summaryResponse `json:"summaries"`
	AutoDelete30Days bool              `json:"auto_delete_30_days"`
}

type deleteResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type deleteAllResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deleted_count"`
}

// Summarize handles POST /api/summarize.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Instructions == nil {
		msg := msgInvalidInstructions
		if bodyTooLarge(err) {
			msg = msgBodyTooLarge
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result, err := h.svc.Summarize(r.Context(), summary.SummarizeInput{Instructions: *req.Instructions})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, msgInvalidInstructions)
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
		case errors.Is(err, domain.ErrEmptyGeneration):
			h.log.WarnContext(r.Context(), "empty generation")
			writeError(w, http.StatusInternalServerError, msgNoSummary)
		default:
			h.log.ErrorContext(r.Context(), "summarize failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, msgSummarizeFailed)
		}
		return
	}

	resp := summarizeResponse{Summary: result.Summary, Saved: result.Saved}
	if result.Record != nil {
		rec := toSummaryResponse(*result.Record)
		resp.Record = &rec
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /api/summaries?limit=&offset=.
// Unparseable values fall back to the defaults.
func (h *SummaryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	result, err := h.svc.ListSummaries(r.Context(), summary.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		h.log.ErrorContext(r.Context(), "list summaries failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	items := make([]summaryResponse, 0, len(result.Summaries))
	for _, s := range result.Summaries {
		items = append(items, toSummaryResponse(s))
	}

	writeJSON(w, http.StatusOK, listResponse{
		Summaries:        items,
		AutoDelete30Days: result.AutoDelete30Days,
	})
}

// Delete handles DELETE /api/summaries/{id}. An id that does not parse can
// never match a record, so it is reported as not found.
func (h *SummaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, msgSummaryNotFound)
		return
	}

	if err := h.svc.DeleteSummary(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, msgSummaryNotFound)
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
		default:
			h.log.ErrorContext(r.Context(), "delete summary failed",
				slog.Int64("summary_id", id),
				slog.String("error", err.Error()),
			)
			writeError(w, http.StatusInternalServerError, msgDeleteFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true, ID: id})
}

// DeleteAll handles DELETE /api/summaries.
func (h *SummaryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAllSummaries(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		h.log.ErrorContext(r.Context(), "delete all summaries failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgDeleteAllFailed)
		return
	}

	writeJSON(w, http.StatusOK, deleteAllResponse{Success: true, DeletedCount: n})
}
