package reports

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"crashph/internal/domain"
	"crashph/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	ListActive(ctx context.Context, page, limit int) ([]domain.ReportView, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateReportStatusRequest) error
}

type Messages interface {
	Post(ctx context.Context, reportID uuid.UUID, req domain.CreateMessageRequest) (domain.Message, error)
	Thread(ctx context.Context, reportID uuid.UUID) ([]domain.Message, error)
}

type Handler struct {
	logger   *slog.Logger
	Reports  Reports
	Messages Messages
}

func NewHandler(logger *slog.Logger, reports Reports, messages Messages) *Handler {
	return &Handler{
		logger:   logger,
		Reports:  reports,
		Messages: messages,
	}
}

// ReportCreate is the citizen submission path.
func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}

	l.Info("creating report",
		slog.String("category", req.Category),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	id, err := h.Reports.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"report_id": id.String()})
}

// ReportList is the police dashboard: active reports only, newest first.
func (h *Handler) ReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	views, total, err := h.Reports.ListActive(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reports listed", slog.Int("count", len(views)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, domain.ListReportsResponse{
		Reports: views,
		Page:    page,
		Limit:   limit,
		Total:   total,
	})
}

// ReportStatusUpdate accepts status and remarks only. Identifying
// fields submitted here are dropped, never written.
func (h *Handler) ReportStatusUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportStatusUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateReportStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}

	if err := h.Reports.UpdateStatus(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report status updated", slog.String("id", id.String()), slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

// MessageList returns a report's thread, oldest first.
func (h *Handler) MessageList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("MessageList", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	messages, err := h.Messages.Thread(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("thread listed", slog.String("report_id", id.String()), slog.Int("count", len(messages)))
	h.writeJSON(w, http.StatusOK, domain.ThreadResponse{
		ReportID: id.String(),
		Messages: messages,
	})
}

func (h *Handler) MessageCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("MessageCreate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}

	msg, err := h.Messages.Post(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("message created", slog.String("report_id", id.String()), slog.String("message_id", msg.ID.String()))
	h.writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
