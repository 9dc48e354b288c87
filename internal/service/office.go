package service

import (
	"context"
	"log/slog"

	"crashph/internal/auth"
	"crashph/internal/domain"
	"crashph/pkg/e"

	"github.com/google/uuid"
)

type officeAdminService struct {
	offices    OfficeStore
	admins     AdminStore
	cache      LocationCache
	bcryptCost int
	logger     *slog.Logger
}

func NewOfficeAdminService(offices OfficeStore, admins AdminStore, cache LocationCache, bcryptCost int, logger *slog.Logger) OfficeAdminService {
	return &officeAdminService{
		offices:    offices,
		admins:     admins,
		cache:      cache,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *officeAdminService) Create(ctx context.Context, req domain.CreateOfficeRequest) (domain.OfficeView, error) {
	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		return domain.OfficeView{}, e.ErrInvalidInput
	}

	// created_by must resolve to an existing admin.
	if _, err := s.admins.GetByID(ctx, createdBy); err != nil {
		return domain.OfficeView{}, err
	}

	taken, err := s.offices.EmailTaken(ctx, req.Email, uuid.Nil)
	if err != nil {
		return domain.OfficeView{}, err
	}
	if taken {
		return domain.OfficeView{}, e.ErrConflict
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("password hash failed", slog.Any("error", err))
		return domain.OfficeView{}, e.ErrInternal
	}

	office := &domain.PoliceOffice{
		ID:            uuid.New(),
		OfficeName:    req.OfficeName,
		Email:         req.Email,
		PasswordHash:  hash,
		HeadOfficer:   req.HeadOfficer,
		ContactNumber: req.ContactNumber,
		Lat:           req.Lat,
		Lng:           req.Lng,
		CreatedBy:     createdBy,
	}

	if err := s.offices.Create(ctx, office); err != nil {
		return domain.OfficeView{}, err
	}

	s.invalidateLocations(ctx)
	s.logger.Info("office created",
		slog.String("office_id", office.ID.String()),
		slog.String("office_name", office.OfficeName),
	)

	return domain.ToOfficeView(office), nil
}

func (s *officeAdminService) List(ctx context.Context) ([]domain.OfficeView, error) {
	offices, err := s.offices.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ToOfficeViews(offices), nil
}

func (s *officeAdminService) Get(ctx context.Context, id uuid.UUID) (domain.OfficeView, error) {
	office, err := s.offices.Get(ctx, id)
	if err != nil {
		return domain.OfficeView{}, err
	}
	return domain.ToOfficeView(office), nil
}

func (s *officeAdminService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateOfficeRequest) error {
	office, err := s.offices.Get(ctx, id)
	if err != nil {
		return err
	}

	if req.Email != nil && *req.Email != office.Email {
		taken, err := s.offices.EmailTaken(ctx, *req.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return e.ErrConflict
		}
		office.Email = *req.Email
	}
	if req.OfficeName != nil {
		office.OfficeName = *req.OfficeName
	}
	if req.HeadOfficer != nil {
		office.HeadOfficer = *req.HeadOfficer
	}
	if req.ContactNumber != nil {
		office.ContactNumber = *req.ContactNumber
	}
	if req.Lat != nil {
		office.Lat = *req.Lat
	}
	if req.Lng != nil {
		office.Lng = *req.Lng
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			s.logger.Error("password hash failed", slog.Any("error", err))
			return e.ErrInternal
		}
		office.PasswordHash = hash
	}

	if err := s.offices.Update(ctx, office); err != nil {
		return err
	}

	s.invalidateLocations(ctx)
	return nil
}

func (s *officeAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.offices.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLocations(ctx)
	return nil
}

// Cache invalidation is best effort: the entry expires on its own TTL.
func (s *officeAdminService) invalidateLocations(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("office location cache invalidate failed", slog.Any("error", err))
	}
}
