package domain

type CreateMessageRequest struct {
	SenderID   string     `json:"sender_id" validate:"required,uuid"`
	SenderKind SenderKind `json:"sender_type" validate:"required,oneof=citizen police"`
	ReceiverID string     `json:"receiver_id" validate:"required,uuid"`
	Body       string     `json:"body" validate:"required"`
}

type ThreadResponse struct {
	ReportID string    `json:"report_id"`
	Messages []Message `json:"messages"`
}
