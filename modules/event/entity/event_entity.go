package entity

import (
	"time"

	"utsav-api/core/entity"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

type Event struct {
	Title       string      `db:"title" json:"title"`
	Description string      `db:"description" json:"description"`
	Date        time.Time   `db:"date" json:"date"`
	Location    string      `db:"location" json:"location"`
	Price       float64     `db:"price" json:"price"`
	ImageURL    string      `db:"image_url" json:"image_url"`
	Slug        string      `db:"slug" json:"slug"`
	CreatedBy   uuid.UUID   `db:"created_by" json:"created_by"`
	Status      EventStatus `db:"status" json:"status"`
	entity.BaseEntity
}

// AcceptsParticipation reports whether performers may request to join.
// Only admin-approved events are open.
func (e *Event) AcceptsParticipation() bool {
	return e.Status == EventStatusApproved
}
