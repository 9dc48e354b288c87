package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending    ReportStatus = "Pending"
	ReportAssigned   ReportStatus = "Assigned"
	ReportInProgress ReportStatus = "InProgress"
	ReportResolved   ReportStatus = "Resolved"
	ReportCanceled   ReportStatus = "Canceled"
)

// Terminal reports drop out of the police dashboard listing.
func (s ReportStatus) Terminal() bool {
	return s == ReportResolved || s == ReportCanceled
}

type Report struct {
	ID               uuid.UUID    `json:"report_id"`
	Category         string       `json:"category"`
	Description      string       `json:"description"`
	Lat              float64      `json:"latitude"`
	Lng              float64      `json:"longitude"`
	Status           ReportStatus `json:"status"`
	Remarks          string       `json:"remarks"`
	ReporterID       *uuid.UUID   `json:"reporter,omitempty"`
	AssignedOfficeID *uuid.UUID   `json:"assigned_office,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}
