package service

import (
	"context"
	"log/slog"

	"crashph/internal/domain"
	"crashph/pkg/e"

	"github.com/google/uuid"
)

type reportService struct {
	reports ReportStore
	policy  AssignmentPolicy
	logger  *slog.Logger
}

func NewReportService(reports ReportStore, policy AssignmentPolicy, logger *slog.Logger) ReportService {
	return &reportService{
		reports: reports,
		policy:  policy,
		logger:  logger,
	}
}

// Create stores a citizen submission. Assignment failure is not fatal:
// the report must land even when no office can be bound.
func (s *reportService) Create(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error) {
	var reporterID *uuid.UUID
	if req.Reporter != nil {
		id, err := uuid.Parse(*req.Reporter)
		if err != nil {
			return uuid.Nil, e.ErrInvalidInput
		}
		reporterID = &id
	}

	officeID, err := s.policy.Assign(ctx, req.Lat, req.Lng)
	if err != nil {
		s.logger.Warn("office assignment failed, creating unassigned", slog.Any("error", err))
		officeID = nil
	}

	report := &domain.Report{
		ID:               uuid.New(),
		Category:         req.Category,
		Description:      req.Description,
		Lat:              req.Lat,
		Lng:              req.Lng,
		Status:           domain.ReportPending,
		ReporterID:       reporterID,
		AssignedOfficeID: officeID,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("report created",
		slog.String("report_id", report.ID.String()),
		slog.String("category", report.Category),
		slog.Bool("assigned", officeID != nil),
	)

	return report.ID, nil
}

func (s *reportService) ListActive(ctx context.Context, page, limit int) ([]domain.ReportView, int64, error) {
	return s.reports.ListActive(ctx, page, limit)
}

func (s *reportService) UpdateStatus(ctx context.Context, id uuid.UUID, req domain.UpdateReportStatusRequest) error {
	return s.reports.UpdateStatus(ctx, id, req.Status, req.Remarks)
}
