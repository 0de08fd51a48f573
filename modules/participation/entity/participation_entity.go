package entity

import (
	"time"

	"utsav-api/core/entity"

	"github.com/google/uuid"
)

type ParticipationStatus string

const (
	ParticipationStatusRequested  ParticipationStatus = "requested"
	ParticipationStatusAccepted   ParticipationStatus = "accepted"
	ParticipationStatusPayPending ParticipationStatus = "pay_pending"
	ParticipationStatusPaid       ParticipationStatus = "paid"
	ParticipationStatusScheduled  ParticipationStatus = "scheduled"
	ParticipationStatusRejected   ParticipationStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodEsewa  PaymentMethod = "esewa"
	PaymentMethodKhalti PaymentMethod = "khalti"
	PaymentMethodMypay  PaymentMethod = "mypay"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodOther  PaymentMethod = "other"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodEsewa, PaymentMethodKhalti, PaymentMethodMypay, PaymentMethodBank, PaymentMethodOther:
		return true
	}
	return false
}

// Participation tracks one performer's journey through one event, from the
// initial request to the final stage schedule. Payment fields are null until
// the organizer defines the expected amount; payment_status refines the
// pay_pending and paid phases of the overall status.
type Participation struct {
	EventID                uuid.UUID           `db:"event_id" json:"event_id"`
	PerformerID            uuid.UUID           `db:"performer_id" json:"performer_id"`
	Status                 ParticipationStatus `db:"status" json:"status"`
	PaymentAmount          *float64            `db:"payment_amount" json:"payment_amount"`
	PaymentMethod          *PaymentMethod      `db:"payment_method" json:"payment_method"`
	PaymentRef             *string             `db:"payment_ref" json:"payment_ref"`
	PaymentStatus          *PaymentStatus      `db:"payment_status" json:"payment_status"`
	PaidAt                 *time.Time          `db:"paid_at" json:"paid_at"`
	SubmittedByPerformerAt *time.Time          `db:"submitted_by_performer_at" json:"submitted_by_performer_at"`
	ScheduleDate           *time.Time          `db:"schedule_date" json:"schedule_date"`
	ScheduleStage          *string             `db:"schedule_stage" json:"schedule_stage"`
	ScheduleNote           *string             `db:"schedule_note" json:"schedule_note"`
	entity.BaseEntity
}

// PaymentIs reports whether the payment has been defined and sits in the
// given state.
func (p *Participation) PaymentIs(status PaymentStatus) bool {
	return p.PaymentStatus != nil && *p.PaymentStatus == status
}
