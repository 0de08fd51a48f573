package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"utsav-api/core/database"
	"utsav-api/core/logger"
	"utsav-api/modules/participation/entity"

	"github.com/google/uuid"
)

// OrganizerRow is a participation joined with its event title and performer
// directory details, for the organizer's requests and sales views.
type OrganizerRow struct {
	entity.Participation
	EventTitle               string  `db:"event_title"`
	PerformerName            string  `db:"performer_name"`
	PerformerEmail           string  `db:"performer_email"`
	PerformerCompetitionType *string `db:"performer_competition_type"`
}

// PerformerRow is a participation joined with its event summary, for the
// performer's own view.
type PerformerRow struct {
	entity.Participation
	EventTitle    string `db:"event_title"`
	EventLocation string `db:"event_location"`
}

type ParticipationRepositoryInterface interface {
	Insert(ctx context.Context, p *entity.Participation) error
	GetByEventAndPerformer(ctx context.Context, eventID, performerID uuid.UUID) (*entity.Participation, error)
	Update(ctx context.Context, p *entity.Participation) error
	ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]OrganizerRow, error)
	ListForPerformer(ctx context.Context, performerID uuid.UUID) ([]PerformerRow, error)
	ListPaymentsForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]OrganizerRow, error)
}

type ParticipationRepository struct {
	db database.Database
}

func NewParticipationRepository(db database.Database) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

const participationColumns = `
	id, event_id, performer_id, status,
	payment_amount, payment_method, payment_ref, payment_status, paid_at, submitted_by_performer_at,
	schedule_date, schedule_stage, schedule_note,
	created_at, updated_at
`

func (r *ParticipationRepository) Insert(ctx context.Context, p *entity.Participation) error {
	query := `
		INSERT INTO participations (event_id, performer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query, p.EventID, p.PerformerID, p.Status, p.CreatedAt, p.UpdatedAt)
	return row.Scan(&p.ID)
}

func (r *ParticipationRepository) GetByEventAndPerformer(ctx context.Context, eventID, performerID uuid.UUID) (*entity.Participation, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM participations
		WHERE event_id = $1 AND performer_id = $2
	`
	var p entity.Participation
	err := r.db.GetContext(ctx, &p, query, eventID, performerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ParticipationRepository:GetByEventAndPerformer:Error:", err)
		return nil, err
	}
	return &p, nil
}

func (r *ParticipationRepository) Update(ctx context.Context, p *entity.Participation) error {
	query := `
		UPDATE participations
		SET status = $1,
		    payment_amount = $2, payment_method = $3, payment_ref = $4, payment_status = $5,
		    paid_at = $6, submitted_by_performer_at = $7,
		    schedule_date = $8, schedule_stage = $9, schedule_note = $10,
		    updated_at = $11
		WHERE id = $12
	`
	p.UpdatedAt = time.Now()
	err := r.db.ExecContext(ctx, query,
		p.Status,
		p.PaymentAmount, p.PaymentMethod, p.PaymentRef, p.PaymentStatus,
		p.PaidAt, p.SubmittedByPerformerAt,
		p.ScheduleDate, p.ScheduleStage, p.ScheduleNote,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		logger.Error("ParticipationRepository:Update:Error:", err)
	}
	return err
}

func (r *ParticipationRepository) ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]OrganizerRow, error) {
	query := `
		SELECT p.id, p.event_id, p.performer_id, p.status,
		       p.payment_amount, p.payment_method, p.payment_ref, p.payment_status, p.paid_at, p.submitted_by_performer_at,
		       p.schedule_date, p.schedule_stage, p.schedule_note,
		       p.created_at, p.updated_at,
		       e.title AS event_title,
		       u.name AS performer_name, u.email AS performer_email, u.competition_type AS performer_competition_type
		FROM participations p
		JOIN events e ON e.id = p.event_id
		JOIN users u ON u.id = p.performer_id
		WHERE e.created_by = $1
		ORDER BY p.created_at DESC
	`
	rows := []OrganizerRow{}
	if err := r.db.SelectContext(ctx, &rows, query, organizerID); err != nil {
		logger.Error("ParticipationRepository:ListForOrganizer:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *ParticipationRepository) ListForPerformer(ctx context.Context, performerID uuid.UUID) ([]PerformerRow, error) {
	query := `
		SELECT p.id, p.event_id, p.performer_id, p.status,
		       p.payment_amount, p.payment_method, p.payment_ref, p.payment_status, p.paid_at, p.submitted_by_performer_at,
		       p.schedule_date, p.schedule_stage, p.schedule_note,
		       p.created_at, p.updated_at,
		       e.title AS event_title, e.location AS event_location
		FROM participations p
		JOIN events e ON e.id = p.event_id
		WHERE p.performer_id = $1
		ORDER BY p.created_at DESC
	`
	rows := []PerformerRow{}
	if err := r.db.SelectContext(ctx, &rows, query, performerID); err != nil {
		logger.Error("ParticipationRepository:ListForPerformer:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *ParticipationRepository) ListPaymentsForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]OrganizerRow, error) {
	query := `
		SELECT p.id, p.event_id, p.performer_id, p.status,
		       p.payment_amount, p.payment_method, p.payment_ref, p.payment_status, p.paid_at, p.submitted_by_performer_at,
		       p.schedule_date, p.schedule_stage, p.schedule_note,
		       p.created_at, p.updated_at,
		       e.title AS event_title,
		       u.name AS performer_name, u.email AS performer_email, u.competition_type AS performer_competition_type
		FROM participations p
		JOIN events e ON e.id = p.event_id
		JOIN users u ON u.id = p.performer_id
		WHERE e.created_by = $1 AND p.payment_amount > 0
		ORDER BY p.paid_at DESC NULLS LAST
	`
	rows := []OrganizerRow{}
	if err := r.db.SelectContext(ctx, &rows, query, organizerID); err != nil {
		logger.Error("ParticipationRepository:ListPaymentsForOrganizer:Error:", err)
		return nil, err
	}
	return rows, nil
}
