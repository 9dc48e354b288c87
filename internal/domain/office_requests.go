package domain

import "time"

// CreateOfficeRequest accepts the plaintext password on input only.
// It is hashed before storage and never echoed back.
type CreateOfficeRequest struct {
	OfficeName    string  `json:"office_name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	HeadOfficer   string  `json:"head_officer" validate:"required"`
	ContactNumber string  `json:"contact_number" validate:"required"`
	Lat           float64 `json:"latitude" validate:"lat"`
	Lng           float64 `json:"longitude" validate:"lng"`
	CreatedBy     string  `json:"created_by" validate:"required,uuid"`
}

type UpdateOfficeRequest struct {
	OfficeName    *string  `json:"office_name" validate:"omitempty"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Password      *string  `json:"password" validate:"omitempty,min=8"`
	HeadOfficer   *string  `json:"head_officer" validate:"omitempty"`
	ContactNumber *string  `json:"contact_number" validate:"omitempty"`
	Lat           *float64 `json:"latitude" validate:"omitempty,lat"`
	Lng           *float64 `json:"longitude" validate:"omitempty,lng"`
}

// OfficeView is the safe identification shape used for every read.
type OfficeView struct {
	ID            string    `json:"office_id"`
	OfficeName    string    `json:"office_name"`
	Email         string    `json:"email"`
	HeadOfficer   string    `json:"head_officer"`
	ContactNumber string    `json:"contact_number"`
	Lat           float64   `json:"latitude"`
	Lng           float64   `json:"longitude"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToOfficeView(o *PoliceOffice) OfficeView {
	return OfficeView{
		ID:            o.ID.String(),
		OfficeName:    o.OfficeName,
		Email:         o.Email,
		HeadOfficer:   o.HeadOfficer,
		ContactNumber: o.ContactNumber,
		Lat:           o.Lat,
		Lng:           o.Lng,
		CreatedBy:     o.CreatedBy.String(),
		CreatedAt:     o.CreatedAt,
	}
}

func ToOfficeViews(src []*PoliceOffice) []OfficeView {
	out := make([]OfficeView, 0, len(src))
	for _, o := range src {
		out = append(out, ToOfficeView(o))
	}
	return out
}
