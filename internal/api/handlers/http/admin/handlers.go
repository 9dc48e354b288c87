package admin

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
type OfficeAdmin interface {
	Create(ctx context.Context, req domain.CreateOfficeRequest) (domain.OfficeView, error)
	List(ctx context.Context) ([]domain.OfficeView, error)
	Get(ctx context.Context, id uuid.UUID) (domain.OfficeView, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateOfficeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	logger  *slog.Logger
	Offices OfficeAdmin
}

func NewHandler(logger *slog.Logger, offices OfficeAdmin) *Handler {
	return &Handler{
		logger:  logger,
		Offices: offices,
	}
}

func (h *Handler) OfficeCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OfficeCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateOfficeRequest
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

	l.Info("creating office",
		slog.String("office_name", req.OfficeName),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	view, err := h.Offices.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("office created", slog.String("id", view.ID))
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) OfficeList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OfficeList", slog.String("remote", r.RemoteAddr))

	offices, err := h.Offices.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("offices listed", slog.Int("count", len(offices)))
	h.writeJSON(w, http.StatusOK, map[string]any{"offices": offices})
}

func (h *Handler) OfficeGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OfficeGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	office, err := h.Offices.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, office)
}

func (h *Handler) OfficeUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OfficeUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateOfficeRequest
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

	if err := h.Offices.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) OfficeDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OfficeDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Offices.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
