package entity

import (
	"utsav-api/core/entity"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusBooked    TicketStatus = "booked"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type TransactionType string

const (
	TransactionUserToOrganizer  TransactionType = "user_to_organizer"
	TransactionOrganizerToAdmin TransactionType = "organizer_to_admin"
)

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
)

type Ticket struct {
	EventID uuid.UUID    `db:"event_id" json:"event_id"`
	UserID  uuid.UUID    `db:"user_id" json:"user_id"`
	Code    string       `db:"code" json:"code"`
	Qty     int          `db:"qty" json:"qty"`
	Amount  float64      `db:"amount" json:"amount"`
	Status  TicketStatus `db:"status" json:"status"`
	entity.BaseEntity
}

// Transaction is one leg of a ticket settlement: the full amount from the
// buyer to the organizer, and the commission from the organizer to the
// platform admin. Each leg is approved independently.
type Transaction struct {
	FromID     uuid.UUID         `db:"from_id" json:"from_id"`
	ToID       uuid.UUID         `db:"to_id" json:"to_id"`
	TicketID   uuid.UUID         `db:"ticket_id" json:"ticket_id"`
	Amount     float64           `db:"amount" json:"amount"`
	Type       TransactionType   `db:"type" json:"type"`
	Commission float64           `db:"commission" json:"commission"`
	Status     TransactionStatus `db:"status" json:"status"`
	entity.BaseEntity
}
