package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crashph/internal/domain"
	"crashph/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfficeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOfficeRepo(pool *pgxpool.Pool, logger *slog.Logger) *OfficeRepo {
	return &OfficeRepo{pool: pool, logger: logger}
}

const officeColumns = `id, office_name, email, password_hash, head_officer, contact_number, lat, lng, created_by, is_system, created_at`

func (p *OfficeRepo) Create(ctx context.Context, office *domain.PoliceOffice) error {
	const op = "postgres.Office.Create"

	const query = `
		INSERT INTO police_offices (id, office_name, email, password_hash, head_officer, contact_number, lat, lng, created_by, is_system, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if office.ID == uuid.Nil {
		office.ID = uuid.New()
	}
	if office.CreatedAt.IsZero() {
		office.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		office.ID,
		office.OfficeName,
		office.Email,
		office.PasswordHash,
		office.HeadOfficer,
		office.ContactNumber,
		office.Lat,
		office.Lng,
		office.CreatedBy,
		office.IsSystem,
		office.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// List returns every office except the reserved system account.
func (p *OfficeRepo) List(ctx context.Context) ([]*domain.PoliceOffice, error) {
	const op = "postgres.Office.List"

	const query = `
		SELECT ` + officeColumns + `
		FROM police_offices
		WHERE NOT is_system
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var offices []*domain.PoliceOffice
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		offices = append(offices, o)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return offices, nil
}

func (p *OfficeRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PoliceOffice, error) {
	const op = "postgres.Office.Get"

	const query = `
		SELECT ` + officeColumns + `
		FROM police_offices
		WHERE id = $1
	`

	o, err := scanOffice(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return o, nil
}

func (p *OfficeRepo) GetByEmail(ctx context.Context, email string) (*domain.PoliceOffice, error) {
	const op = "postgres.Office.GetByEmail"

	const query = `
		SELECT ` + officeColumns + `
		FROM police_offices
		WHERE email = $1
	`

	o, err := scanOffice(p.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return o, nil
}

func (p *OfficeRepo) Update(ctx context.Context, office *domain.PoliceOffice) error {
	const op = "postgres.Office.Update"

	const query = `
		UPDATE police_offices
		SET office_name    = $2,
			email          = $3,
			password_hash  = $4,
			head_officer   = $5,
			contact_number = $6,
			lat            = $7,
			lng            = $8
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		office.ID,
		office.OfficeName,
		office.Email,
		office.PasswordHash,
		office.HeadOfficer,
		office.ContactNumber,
		office.Lat,
		office.Lng,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", office.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *OfficeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Office.Delete"

	const query = `
		DELETE FROM police_offices
		WHERE id = $1 AND NOT is_system
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// EmailTaken checks the combined admin+office email space. Offices and
// admins must stay disjoint, not just unique within their own table.
func (p *OfficeRepo) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	const op = "postgres.Office.EmailTaken"

	const query = `
		SELECT EXISTS (SELECT 1 FROM admins WHERE email = $1)
			OR EXISTS (SELECT 1 FROM police_offices WHERE email = $1 AND id <> $2)
	`

	var taken bool
	if err := p.pool.QueryRow(ctx, query, email, exclude).Scan(&taken); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return taken, nil
}

func (p *OfficeRepo) ListLocations(ctx context.Context) ([]domain.OfficeLocation, error) {
	const op = "postgres.Office.ListLocations"

	const query = `
		SELECT id, lat, lng, created_at
		FROM police_offices
		WHERE NOT is_system
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	locations := make([]domain.OfficeLocation, 0, 8)
	for rows.Next() {
		var loc domain.OfficeLocation
		if err := rows.Scan(&loc.ID, &loc.Lat, &loc.Lng, &loc.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return locations, nil
}

func scanOffice(row pgx.Row) (*domain.PoliceOffice, error) {
	var o domain.PoliceOffice
	err := row.Scan(
		&o.ID,
		&o.OfficeName,
		&o.Email,
		&o.PasswordHash,
		&o.HeadOfficer,
		&o.ContactNumber,
		&o.Lat,
		&o.Lng,
		&o.CreatedBy,
		&o.IsSystem,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
