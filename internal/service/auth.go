package service

import (
	"context"
	"errors"
	"log/slog"

	"crashph/internal/auth"
	"crashph/internal/domain"
	"crashph/pkg/e"
)

type authService struct {
	admins  AdminStore
	offices OfficeStore
	tokens  TokenIssuer
	logger  *slog.Logger
}

func NewAuthService(admins AdminStore, offices OfficeStore, tokens TokenIssuer, logger *slog.Logger) AuthService {
	return &authService{
		admins:  admins,
		offices: offices,
		tokens:  tokens,
		logger:  logger,
	}
}

// Resolve tries the admin store first, then the office store. Unknown
// email and wrong password collapse into the same ErrUnauthorized so
// the response never reveals which store matched.
func (s *authService) Resolve(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
			return domain.LoginResponse{}, e.ErrUnauthorized
		}
		token, err := s.tokens.Issue(admin.ID, domain.RoleAdmin)
		if err != nil {
			s.logger.Error("token issue failed", slog.Any("error", err))
			return domain.LoginResponse{}, e.ErrInternal
		}
		s.logger.Info("admin login", slog.String("admin_id", admin.ID.String()))
		return domain.LoginResponse{
			Message: "Admin login successful",
			Role:    domain.RoleAdmin,
			User:    domain.ToAdminView(admin),
			Token:   token,
		}, nil
	case !errors.Is(err, e.ErrNotFound):
		return domain.LoginResponse{}, err
	}

	office, err := s.offices.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if !auth.CheckPasswordHash(req.Password, office.PasswordHash) {
			return domain.LoginResponse{}, e.ErrUnauthorized
		}
		token, err := s.tokens.Issue(office.ID, domain.RolePolice)
		if err != nil {
			s.logger.Error("token issue failed", slog.Any("error", err))
			return domain.LoginResponse{}, e.ErrInternal
		}
		s.logger.Info("police login", slog.String("office_id", office.ID.String()))
		return domain.LoginResponse{
			Message: "Police login successful",
			Role:    domain.RolePolice,
			User:    domain.ToOfficeView(office),
			Token:   token,
		}, nil
	case !errors.Is(err, e.ErrNotFound):
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{}, e.ErrUnauthorized
}
