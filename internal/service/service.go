package service

import (
	"context"
	"time"

	"crashph/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Consumer-facing use cases.
type AuthService interface {
	Resolve(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
}

type OfficeAdminService interface {
	Create(ctx context.Context, req domain.CreateOfficeRequest) (domain.OfficeView, error)
	List(ctx context.Context) ([]domain.OfficeView, error)
	Get(ctx context.Context, id uuid.UUID) (domain.OfficeView, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateOfficeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportService interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	ListActive(ctx context.Context, page, limit int) ([]domain.ReportView, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateReportStatusRequest) error
}

type MessageService interface {
	Post(ctx context.Context, reportID uuid.UUID, req domain.CreateMessageRequest) (domain.Message, error)
	Thread(ctx context.Context, reportID uuid.UUID) ([]domain.Message, error)
}

// Storage dependencies, satisfied by internal/storage/postgres.
type AdminStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type OfficeStore interface {
	Create(ctx context.Context, office *domain.PoliceOffice) error
	List(ctx context.Context) ([]*domain.PoliceOffice, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PoliceOffice, error)
	GetByEmail(ctx context.Context, email string) (*domain.PoliceOffice, error)
	Update(ctx context.Context, office *domain.PoliceOffice) error
	Delete(ctx context.Context, id uuid.UUID) error
	EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	ListLocations(ctx context.Context) ([]domain.OfficeLocation, error)
}

type ReportStore interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListActive(ctx context.Context, page, limit int) ([]domain.ReportView, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, remarks *string) error
}

type MessageStore interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Message, error)
}

// LocationCache backs the assignment policy, satisfied by internal/redis.
type LocationCache interface {
	Get(ctx context.Context) ([]domain.OfficeLocation, error)
	Set(ctx context.Context, locations []domain.OfficeLocation, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// TokenIssuer is the external proof-of-identity collaborator.
type TokenIssuer interface {
	Issue(subject uuid.UUID, role domain.Role) (string, error)
}

// AssignmentPolicy binds a new report to an office. A nil office id
// means no office exists; the report is still created unassigned.
type AssignmentPolicy interface {
	Assign(ctx context.Context, lat, lng float64) (*uuid.UUID, error)
}

type Service struct {
	AuthService        AuthService
	OfficeAdminService OfficeAdminService
	ReportService      ReportService
	MessageService     MessageService
}

func NewService(
	authService AuthService,
	officeAdminService OfficeAdminService,
	reportService ReportService,
	messageService MessageService,
) *Service {
	return &Service{
		AuthService:        authService,
		OfficeAdminService: officeAdminService,
		ReportService:      reportService,
		MessageService:     messageService,
	}
}
