package dto

import (
	"time"

	"github.com/google/uuid"
)

type RequestParticipationRequest struct {
	EventID     string `json:"eventId"`
	PerformerID string `json:"performerId"`
}

type DefinePaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Ref    string  `json:"ref"`
}

type SubmitPaymentProofRequest struct {
	Method string `json:"method"`
	Ref    string `json:"ref"`
}

type SetScheduleRequest struct {
	DatetimeISO string `json:"datetimeISO"`
	Stage       string `json:"stage"`
	Note        string `json:"note"`
}

type PaymentView struct {
	Amount                 float64    `json:"amount"`
	Method                 string     `json:"method"`
	Ref                    string     `json:"ref"`
	Status                 *string    `json:"status"`
	PaidAt                 *time.Time `json:"paidAt"`
	SubmittedByPerformerAt *time.Time `json:"submittedByPerformerAt"`
}

type ScheduleView struct {
	Date  time.Time `json:"date"`
	Stage string    `json:"stage"`
	Note  string    `json:"note"`
}

type ParticipationResponse struct {
	ID          uuid.UUID     `json:"id"`
	EventID     uuid.UUID     `json:"event_id"`
	PerformerID uuid.UUID     `json:"performer_id"`
	Status      string        `json:"status"`
	Payment     *PaymentView  `json:"payment,omitempty"`
	Schedule    *ScheduleView `json:"schedule,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PerformerSummary is the directory detail attached to organizer-facing rows.
type PerformerSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CompetitionType string    `json:"competitionType,omitempty"`
}

// OrganizerParticipationRow is one request across any of the organizer's
// events, flattened for the requests and sales views.
type OrganizerParticipationRow struct {
	EventID    uuid.UUID         `json:"eventId"`
	EventTitle string            `json:"eventTitle"`
	Performer  *PerformerSummary `json:"performer"`
	Status     string            `json:"status"`
	Payment    *PaymentView      `json:"payment,omitempty"`
	Schedule   *ScheduleView     `json:"schedule,omitempty"`
}

// PerformerParticipationRow is one participation from the performer's side.
type PerformerParticipationRow struct {
	Event    EventSummary  `json:"event"`
	Status   string        `json:"status"`
	Payment  *PaymentView  `json:"payment,omitempty"`
	Schedule *ScheduleView `json:"schedule,omitempty"`
}

type EventSummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
}
