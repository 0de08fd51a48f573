package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"utsav-api/core/database"
	"utsav-api/core/logger"
	"utsav-api/modules/booking/entity"
	compEntity "utsav-api/modules/competition/entity"

	"github.com/google/uuid"
)

// ErrPairingConflict is returned when a pairing commit loses the race: one
// of the two bookings was already matched by a concurrent acceptance.
var ErrPairingConflict = errors.New("booking already matched")

const pairingLockQuery = `
	SELECT id
	FROM bookings
	WHERE id IN ($1, $2) AND matched = false
	ORDER BY id
	FOR UPDATE
`

type BookingRepositoryInterface interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context, organizerID, competitorID *uuid.UUID) ([]entity.Booking, error)
	HasActiveForCompetitorBetween(ctx context.Context, competitorID uuid.UUID, dayStart, dayEnd time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	ListUnmatchedAccepted(ctx context.Context, organizerID, excludeID uuid.UUID) ([]entity.Booking, error)
	CommitPairing(ctx context.Context, comp *compEntity.Competition, bookingID, partnerID uuid.UUID) error
}

type BookingRepository struct {
	db database.Database
}

func NewBookingRepository(db database.Database) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (organizer_id, competitor_id, date, amount, notes, status, matched, competition_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.Status == "" {
		booking.Status = entity.BookingStatusPending
	}

	row := r.db.QueryRowContext(ctx, query,
		booking.OrganizerID,
		booking.CompetitorID,
		booking.Date,
		booking.Amount,
		booking.Notes,
		booking.Status,
		booking.Matched,
		booking.CompetitionID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	return row.Scan(&booking.ID)
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, organizer_id, competitor_id, date, amount, notes, status, matched, competition_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByID:Error:", err)
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) List(ctx context.Context, organizerID, competitorID *uuid.UUID) ([]entity.Booking, error) {
	query := `
		SELECT id, organizer_id, competitor_id, date, amount, notes, status, matched, competition_id, created_at, updated_at
		FROM bookings
		WHERE ($1::uuid IS NULL OR organizer_id = $1)
		  AND ($2::uuid IS NULL OR competitor_id = $2)
		ORDER BY created_at DESC
	`
	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, organizerID, competitorID); err != nil {
		logger.Error("BookingRepository:List:Error:", err)
		return nil, err
	}
	return bookings, nil
}

// HasActiveForCompetitorBetween reports whether the competitor already has a
// pending or accepted booking inside the given day window.
func (r *BookingRepository) HasActiveForCompetitorBetween(ctx context.Context, competitorID uuid.UUID, dayStart, dayEnd time.Time) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE competitor_id = $1
		  AND date >= $2 AND date <= $3
		  AND status IN ('pending', 'accepted')
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, competitorID, dayStart, dayEnd); err != nil {
		logger.Error("BookingRepository:HasActiveForCompetitorBetween:Error:", err)
		return false, err
	}
	return count > 0, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`
	err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		logger.Error("BookingRepository:UpdateStatus:Error:", err)
		return err
	}
	return nil
}

// ListUnmatchedAccepted returns the organizer's accepted, unmatched bookings
// other than excludeID, oldest first. The ordering is what makes pairing FIFO.
func (r *BookingRepository) ListUnmatchedAccepted(ctx context.Context, organizerID, excludeID uuid.UUID) ([]entity.Booking, error) {
	query := `
		SELECT id, organizer_id, competitor_id, date, amount, notes, status, matched, competition_id, created_at, updated_at
		FROM bookings
		WHERE organizer_id = $1
		  AND id <> $2
		  AND status = 'accepted'
		  AND matched = false
		ORDER BY created_at ASC
	`
	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, organizerID, excludeID); err != nil {
		logger.Error("BookingRepository:ListUnmatchedAccepted:Error:", err)
		return nil, err
	}
	return bookings, nil
}

// CommitPairing creates the competition and marks both bookings matched in a
// single transaction. If either booking was matched concurrently the whole
// commit rolls back and ErrPairingConflict is returned, leaving no partial
// state behind.
func (r *BookingRepository) CommitPairing(ctx context.Context, comp *compEntity.Competition, bookingID, partnerID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx)
	if err != nil {
		logger.Error("BookingRepository:CommitPairing:Begin:Error:", err)
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Lock both rows and re-check the matched flag inside the transaction.
	// Postgres rejects FOR UPDATE combined with aggregates, so the query
	// selects the raw ids and the count happens here.
	var lockedIDs []uuid.UUID
	if err := tx.SelectContext(ctx, &lockedIDs, pairingLockQuery, bookingID, partnerID); err != nil {
		logger.Error("BookingRepository:CommitPairing:Lock:Error:", err)
		return err
	}
	if len(lockedIDs) != 2 {
		return ErrPairingConflict
	}

	now := time.Now()
	comp.CreatedAt = now
	comp.UpdatedAt = now

	insertQuery := `
		INSERT INTO competitions (competitor1, competitor2, organizer_id, date, location, status, winner, prize, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	row := tx.QueryRowContext(ctx, insertQuery,
		comp.Competitor1,
		comp.Competitor2,
		comp.OrganizerID,
		comp.Date,
		comp.Location,
		comp.Status,
		comp.Winner,
		comp.Prize,
		comp.CreatedAt,
		comp.UpdatedAt,
	)
	if err := row.Scan(&comp.ID); err != nil {
		logger.Error("BookingRepository:CommitPairing:InsertCompetition:Error:", err)
		return err
	}

	updateQuery := `
		UPDATE bookings
		SET matched = true, competition_id = $1, updated_at = $2
		WHERE id IN ($3, $4)
	`
	res, err := tx.ExecContext(ctx, updateQuery, comp.ID, now, bookingID, partnerID)
	if err != nil {
		logger.Error("BookingRepository:CommitPairing:UpdateBookings:Error:", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n != 2 {
		return fmt.Errorf("expected to match 2 bookings, matched %d", n)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("BookingRepository:CommitPairing:Commit:Error:", err)
		return err
	}
	return nil
}
