package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crashph/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	// 401 on any miss: the body never says whether the email exists.
	if errors.Is(err, e.ErrUnauthorized) {
		l.Warn("login rejected")
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials."})
		return
	}

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
