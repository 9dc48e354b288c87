package domain

import "time"

type CreateReportRequest struct {
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Lat         float64 `json:"latitude" validate:"lat"`
	Lng         float64 `json:"longitude" validate:"lng"`
	// Reporter comes from the caller context until session auth lands.
	Reporter *string `json:"reporter" validate:"omitempty,uuid"`
}

// UpdateReportStatusRequest is the only mutation police get: status and
// remarks. Anything else submitted on the update path is dropped.
type UpdateReportStatusRequest struct {
	Status  ReportStatus `json:"status" validate:"required,oneof=Pending Assigned InProgress Resolved Canceled"`
	Remarks *string      `json:"remarks" validate:"omitempty"`
}

// ReportView is the dashboard listing shape, with the assigned office
// name and reporter full name denormalized in.
type ReportView struct {
	ID                 string       `json:"report_id"`
	Category           string       `json:"category"`
	Status             ReportStatus `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	Lat                float64      `json:"latitude"`
	Lng                float64      `json:"longitude"`
	Description        string       `json:"description"`
	AssignedOfficeName string       `json:"assigned_office_name"`
	ReporterFullName   string       `json:"reporter_full_name"`
}

type ListReportsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListReportsResponse struct {
	Reports []ReportView `json:"reports"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
	Total   int64        `json:"total"`
}
