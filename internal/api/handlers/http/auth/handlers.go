package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"crashph/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Resolver interface {
	Resolve(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
}

type Handler struct {
	logger   *slog.Logger
	Resolver Resolver
}

func NewHandler(logger *slog.Logger, resolver Resolver) *Handler {
	return &Handler{
		logger:   logger,
		Resolver: resolver,
	}
}

// Login authenticates an admin or a police office against one endpoint.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Login", slog.String("remote", r.RemoteAddr))

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	if req.Email == "" || req.Password == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Email and password are required."})
		return
	}

	resp, err := h.Resolver.Resolve(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("login resolved", slog.String("role", string(resp.Role)))
	h.writeJSON(w, http.StatusOK, resp)
}
