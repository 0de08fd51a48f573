package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookTicketRequest struct {
	EventID string  `json:"eventId"`
	UserID  string  `json:"userId"`
	Qty     int     `json:"qty"`
	Price   float64 `json:"price"`
}

type TicketResponse struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	UserID    uuid.UUID `json:"user_id"`
	Code      string    `json:"code"`
	Qty       int       `json:"qty"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type TransactionResponse struct {
	ID         uuid.UUID `json:"id"`
	FromID     uuid.UUID `json:"from_id"`
	ToID       uuid.UUID `json:"to_id"`
	TicketID   uuid.UUID `json:"ticket_id"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	Commission float64   `json:"commission"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrganizerSaleRow pairs a sold ticket with its commission transaction for
// the organizer's sales view.
type OrganizerSaleRow struct {
	Ticket      TicketResponse       `json:"ticket"`
	UserName    string               `json:"user_name"`
	UserEmail   string               `json:"user_email"`
	EventTitle  string               `json:"event_title"`
	Transaction *TransactionResponse `json:"transaction"`
}

// AdminCommissionRow is one organizer-to-admin commission with its context.
type AdminCommissionRow struct {
	Transaction    TransactionResponse `json:"transaction"`
	OrganizerName  string              `json:"organizer_name"`
	OrganizerEmail string              `json:"organizer_email"`
	EventTitle     string              `json:"event_title"`
	EventDate      time.Time           `json:"event_date"`
}
