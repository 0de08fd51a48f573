package entity

import (
	"time"

	"utsav-api/core/entity"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusRejected:
		return true
	}
	return false
}

// Booking is an organizer's date-scoped offer to a competitor team. Once
// accepted it becomes eligible for pairing into a Competition exactly once;
// matched bookings are skipped by later pairing searches.
type Booking struct {
	OrganizerID   uuid.UUID     `db:"organizer_id" json:"organizer_id"`
	CompetitorID  uuid.UUID     `db:"competitor_id" json:"competitor_id"`
	Date          time.Time     `db:"date" json:"date"`
	Amount        float64       `db:"amount" json:"amount"`
	Notes         string        `db:"notes" json:"notes"`
	Status        BookingStatus `db:"status" json:"status"`
	Matched       bool          `db:"matched" json:"matched"`
	CompetitionID *uuid.UUID    `db:"competition_id" json:"competition_id"`
	entity.BaseEntity
}
