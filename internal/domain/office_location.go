package domain

import (
	"time"

	"github.com/google/uuid"
)

// OfficeLocation is the slim shape cached for the assignment policy:
// enough to rank offices by distance and break ties by creation order.
type OfficeLocation struct {
	ID        uuid.UUID `json:"id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	CreatedAt time.Time `json:"created_at"`
}
