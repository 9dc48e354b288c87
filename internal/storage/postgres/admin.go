package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crashph/internal/domain"
	"crashph/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAdminRepo(pool *pgxpool.Pool, logger *slog.Logger) *AdminRepo {
	return &AdminRepo{pool: pool, logger: logger}
}

func (p *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	const op = "postgres.Admin.GetByID"

	const query = `
		SELECT id, username, email, contact_no, password_hash
		FROM admins
		WHERE id = $1
	`

	var a domain.Admin
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.ContactNo,
		&a.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}

func (p *AdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const op = "postgres.Admin.GetByEmail"

	const query = `
		SELECT id, username, email, contact_no, password_hash
		FROM admins
		WHERE email = $1
	`

	var a domain.Admin
	err := p.pool.QueryRow(ctx, query, email).Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.ContactNo,
		&a.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}
