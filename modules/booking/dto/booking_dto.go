package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	OrganizerID  string  `json:"organizerId"`
	CompetitorID string  `json:"competitorId"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Notes        string  `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	OrganizerID   uuid.UUID  `json:"organizer_id"`
	CompetitorID  uuid.UUID  `json:"competitor_id"`
	Date          time.Time  `json:"date"`
	Amount        float64    `json:"amount"`
	Notes         string     `json:"notes"`
	Status        string     `json:"status"`
	Matched       bool       `json:"matched"`
	CompetitionID *uuid.UUID `json:"competition_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
