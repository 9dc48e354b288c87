package postgres

import (
	"context"

	"crashph/internal/domain"

	"github.com/google/uuid"
)

type AdminRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type OfficeRepository interface {
	Create(ctx context.Context, office *domain.PoliceOffice) error
	List(ctx context.Context) ([]*domain.PoliceOffice, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PoliceOffice, error)
	GetByEmail(ctx context.Context, email string) (*domain.PoliceOffice, error)
	Update(ctx context.Context, office *domain.PoliceOffice) error
	Delete(ctx context.Context, id uuid.UUID) error
	EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	ListLocations(ctx context.Context) ([]domain.OfficeLocation, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListActive(ctx context.Context, page, limit int) ([]domain.ReportView, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, remarks *string) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Message, error)
}

func (p *Postgres) Admins() AdminRepository     { return p.Admin }
func (p *Postgres) Offices() OfficeRepository   { return p.Office }
func (p *Postgres) Reports() ReportRepository   { return p.Report }
func (p *Postgres) Messages() MessageRepository { return p.Message }
