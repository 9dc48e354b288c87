package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"crashph/internal/auth"
	"crashph/internal/domain"
	"crashph/internal/service"
	"crashph/pkg/e"

	mock_service "crashph/internal/service/mocks"
)

// --- helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return hash
}

// --- Resolve ---

func TestAuthService_Resolve_AdminOK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock_service.NewMockAdminStore(ctrl)
	offices := mock_service.NewMockOfficeStore(ctrl)
	tokens := mock_service.NewMockTokenIssuer(ctrl)

	admin := &domain.Admin{
		ID:           uuid.New(),
		Username:     "root",
		Email:        "admin@crashph.ph",
		PasswordHash: mustHash(t, "secret123"),
	}

	admins.EXPECT().
		GetByEmail(gomock.Any(), admin.Email).
		Return(admin, nil).
		Times(1)
	tokens.EXPECT().
		Issue(admin.ID, domain.RoleAdmin).
		Return("signed-token", nil).
		Times(1)

	svc := service.NewAuthService(admins, offices, tokens, newTestLogger())

	resp, err := svc.Resolve(context.Background(), domain.LoginRequest{
		Email:    admin.Email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Role != domain.RoleAdmin {
		t.Fatalf("expected role=%q got=%q", domain.RoleAdmin, resp.Role)
	}
	if resp.Message != "Admin login successful" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token, got=%q", resp.Token)
	}

	view, ok := resp.User.(domain.AdminView)
	if !ok {
		t.Fatalf("expected AdminView, got %T", resp.User)
	}
	if view.ID != admin.ID.String() {
		t.Fatalf("expected admin_id=%s got=%s", admin.ID, view.ID)
	}
}

func TestAuthService_Resolve_PoliceOK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock_service.NewMockAdminStore(ctrl)
	offices := mock_service.NewMockOfficeStore(ctrl)
	tokens := mock_service.NewMockTokenIssuer(ctrl)

	office := &domain.PoliceOffice{
		ID:           uuid.New(),
		OfficeName:   "Makati Station 1",
		Email:        "station1@crashph.ph",
		PasswordHash: mustHash(t, "station-pass"),
	}

	admins.EXPECT().
		GetByEmail(gomock.Any(), office.Email).
		Return(nil, e.ErrNotFound).
		Times(1)
	offices.EXPECT().
		GetByEmail(gomock.Any(), office.Email).
		Return(office, nil).
		Times(1)
	tokens.EXPECT().
		Issue(office.ID, domain.RolePolice).
		Return("signed-token", nil).
		Times(1)

	svc := service.NewAuthService(admins, offices, tokens, newTestLogger())

	resp, err := svc.Resolve(context.Background(), domain.LoginRequest{
		Email:    office.Email,
		Password: "station-pass",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Role != domain.RolePolice {
		t.Fatalf("expected role=%q got=%q", domain.RolePolice, resp.Role)
	}
	if resp.Message != "Police login successful" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	view, ok := resp.User.(domain.OfficeView)
	if !ok {
		t.Fatalf("expected OfficeView, got %T", resp.User)
	}
	if view.ID != office.ID.String() {
		t.Fatalf("expected office_id=%s got=%s", office.ID, view.ID)
	}
}

func TestAuthService_Resolve_UnknownEmail_Unauthorized(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock_service.NewMockAdminStore(ctrl)
	offices := mock_service.NewMockOfficeStore(ctrl)
	tokens := mock_service.NewMockTokenIssuer(ctrl)

	admins.EXPECT().
		GetByEmail(gomock.Any(), "ghost@crashph.ph").
		Return(nil, e.ErrNotFound).
		Times(1)
	offices.EXPECT().
		GetByEmail(gomock.Any(), "ghost@crashph.ph").
		Return(nil, e.ErrNotFound).
		Times(1)

	svc := service.NewAuthService(admins, offices, tokens, newTestLogger())

	_, err := svc.Resolve(context.Background(), domain.LoginRequest{
		Email:    "ghost@crashph.ph",
		Password: "whatever",
	})
	if !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// Wrong password on a matched admin must look the same as an unknown
// email from the outside.
func TestAuthService_Resolve_WrongPassword_Unauthorized(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock_service.NewMockAdminStore(ctrl)
	offices := mock_service.NewMockOfficeStore(ctrl)
	tokens := mock_service.NewMockTokenIssuer(ctrl)

	admin := &domain.Admin{
		ID:           uuid.New(),
		Email:        "admin@crashph.ph",
		PasswordHash: mustHash(t, "right-password"),
	}

	admins.EXPECT().
		GetByEmail(gomock.Any(), admin.Email).
		Return(admin, nil).
		Times(1)
	// Office store and issuer must never be touched on a password miss.

	svc := service.NewAuthService(admins, offices, tokens, newTestLogger())

	_, err := svc.Resolve(context.Background(), domain.LoginRequest{
		Email:    admin.Email,
		Password: "wrong-password",
	})
	if !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Resolve_StoreError_Propagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock_service.NewMockAdminStore(ctrl)
	offices := mock_service.NewMockOfficeStore(ctrl)
	tokens := mock_service.NewMockTokenIssuer(ctrl)

	wantErr := errors.New("db down")
	admins.EXPECT().
		GetByEmail(gomock.Any(), gomock.Any()).
		Return(nil, wantErr).
		Times(1)

	svc := service.NewAuthService(admins, offices, tokens, newTestLogger())

	_, err := svc.Resolve(context.Background(), domain.LoginRequest{
		Email:    "admin@crashph.ph",
		Password: "secret123",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("store failure must not masquerade as unauthorized")
	}
}

func TestAuthService_Resolve_TokenError_Internal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admins := mock_service.NewMockAdminStore(ctrl)
	offices := mock_service.NewMockOfficeStore(ctrl)
	tokens := mock_service.NewMockTokenIssuer(ctrl)

	admin := &domain.Admin{
		ID:           uuid.New(),
		Email:        "admin@crashph.ph",
		PasswordHash: mustHash(t, "secret123"),
	}

	admins.EXPECT().
		GetByEmail(gomock.Any(), admin.Email).
		Return(admin, nil).
		Times(1)
	tokens.EXPECT().
		Issue(admin.ID, domain.RoleAdmin).
		Return("", errors.New("signer broken")).
		Times(1)

	svc := service.NewAuthService(admins, offices, tokens, newTestLogger())

	_, err := svc.Resolve(context.Background(), domain.LoginRequest{
		Email:    admin.Email,
		Password: "secret123",
	})
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
