package domain

import (
	"time"

	"github.com/google/uuid"
)

type SenderKind string

const (
	SenderCitizen SenderKind = "citizen"
	SenderPolice  SenderKind = "police"
)

type Message struct {
	ID         uuid.UUID  `json:"message_id"`
	ReportID   uuid.UUID  `json:"report_id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	SenderKind SenderKind `json:"sender_type"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"timestamp"`
}
