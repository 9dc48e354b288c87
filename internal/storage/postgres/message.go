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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewMessageRepo(pool *pgxpool.Pool, logger *slog.Logger) *MessageRepo {
	return &MessageRepo{pool: pool, logger: logger}
}

// Create relies on the report FK to validate the reference at write
// time, so a concurrent report deletion can't leave an orphaned row.
func (p *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	const op = "postgres.Message.Create"

	const query = `
		INSERT INTO messages (id, report_id, sender_id, sender_kind, receiver_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		msg.ID,
		msg.ReportID,
		msg.SenderID,
		msg.SenderKind,
		msg.ReceiverID,
		msg.Body,
		msg.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("report_id", msg.ReportID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *MessageRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Message, error) {
	const op = "postgres.Message.ListByReport"

	const query = `
		SELECT id, report_id, sender_id, sender_kind, receiver_id, body, created_at
		FROM messages
		WHERE report_id = $1
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query, reportID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0, 8)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(
			&m.ID,
			&m.ReportID,
			&m.SenderID,
			&m.SenderKind,
			&m.ReceiverID,
			&m.Body,
			&m.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return messages, nil
}
