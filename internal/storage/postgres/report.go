package postgres

import (
	"context"
	"database/sql"
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

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO reports (id, category, description, lat, lng, status, remarks, reporter_id, assigned_office_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.ReportPending
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Category,
		report.Description,
		report.Lat,
		report.Lng,
		report.Status,
		report.Remarks,
		report.ReporterID,
		report.AssignedOfficeID,
		report.CreatedAt,
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

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	const query = `
		SELECT id, category, description, lat, lng, status, remarks, reporter_id, assigned_office_id, created_at
		FROM reports
		WHERE id = $1
	`

	var rep domain.Report
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&rep.ID,
		&rep.Category,
		&rep.Description,
		&rep.Lat,
		&rep.Lng,
		&rep.Status,
		&rep.Remarks,
		&rep.ReporterID,
		&rep.AssignedOfficeID,
		&rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &rep, nil
}

// ListActive is the police dashboard feed: non-terminal reports, newest
// first, with the assigned office name and reporter full name joined in.
func (p *ReportRepo) ListActive(ctx context.Context, page, limit int) ([]domain.ReportView, int64, error) {
	const op = "postgres.Report.ListActive"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `
		SELECT COUNT(*)
		FROM reports
		WHERE status NOT IN ('Resolved', 'Canceled')
	`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT r.id,
			   r.category,
			   r.status,
			   r.created_at,
			   r.lat,
			   r.lng,
			   r.description,
			   o.office_name,
			   c.first_name,
			   c.last_name
		FROM reports r
		LEFT JOIN police_offices o ON o.id = r.assigned_office_id
		LEFT JOIN citizens c ON c.id = r.reporter_id
		WHERE r.status NOT IN ('Resolved', 'Canceled')
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	views := make([]domain.ReportView, 0, limit)
	for rows.Next() {
		var (
			view       domain.ReportView
			id         uuid.UUID
			officeName sql.NullString
			firstName  sql.NullString
			lastName   sql.NullString
		)
		if err := rows.Scan(
			&id,
			&view.Category,
			&view.Status,
			&view.CreatedAt,
			&view.Lat,
			&view.Lng,
			&view.Description,
			&officeName,
			&firstName,
			&lastName,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		view.ID = id.String()
		view.AssignedOfficeName = officeName.String
		view.ReporterFullName = reporterFullName(firstName, lastName)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return views, total, nil
}

// UpdateStatus touches status and remarks only. Category, description
// and coordinates are immutable after creation.
func (p *ReportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, remarks *string) error {
	const op = "postgres.Report.UpdateStatus"

	const query = `
		UPDATE reports
		SET status  = $2,
			remarks = COALESCE($3, remarks)
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status, remarks)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// Reporter may be a deleted account; the dashboard shows a sentinel then.
func reporterFullName(first, last sql.NullString) string {
	if !first.Valid && !last.Valid {
		return "N/A"
	}
	return first.String + " " + last.String
}
