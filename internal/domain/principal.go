package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RolePolice Role = "police"
)

type Admin struct {
	ID           uuid.UUID `json:"admin_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ContactNo    string    `json:"contact_no"`
	PasswordHash string    `json:"-"`
}

type PoliceOffice struct {
	ID            uuid.UUID `json:"office_id"`
	OfficeName    string    `json:"office_name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	HeadOfficer   string    `json:"head_officer"`
	ContactNumber string    `json:"contact_number"`
	Lat           float64   `json:"latitude"`
	Lng           float64   `json:"longitude"`
	CreatedBy     uuid.UUID `json:"created_by"`
	IsSystem      bool      `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Citizen is the reporter account. Managed by the mobile backend,
// read here only to render report listings.
type Citizen struct {
	ID        uuid.UUID `json:"citizen_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	ContactNo string    `json:"contact_no"`
}
