package service

import (
	"context"
	"log/slog"

	"crashph/internal/domain"
	"crashph/pkg/e"

	"github.com/google/uuid"
)

type messageService struct {
	messages MessageStore
	logger   *slog.Logger
}

func NewMessageService(messages MessageStore, logger *slog.Logger) MessageService {
	return &messageService{
		messages: messages,
		logger:   logger,
	}
}

// Post appends to a report's thread. The report reference is validated
// by the store at write time; a missing report surfaces as ErrNotFound
// and no row is created.
func (s *messageService) Post(ctx context.Context, reportID uuid.UUID, req domain.CreateMessageRequest) (domain.Message, error) {
	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		return domain.Message{}, e.ErrInvalidInput
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return domain.Message{}, e.ErrInvalidInput
	}

	msg := &domain.Message{
		ID:         uuid.New(),
		ReportID:   reportID,
		SenderID:   senderID,
		SenderKind: req.SenderKind,
		ReceiverID: receiverID,
		Body:       req.Body,
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.Message{}, err
	}

	s.logger.Info("message posted",
		slog.String("report_id", reportID.String()),
		slog.String("sender_type", string(msg.SenderKind)),
	)

	return *msg, nil
}

func (s *messageService) Thread(ctx context.Context, reportID uuid.UUID) ([]domain.Message, error) {
	return s.messages.ListByReport(ctx, reportID)
}
