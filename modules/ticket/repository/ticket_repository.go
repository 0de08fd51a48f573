package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"utsav-api/core/database"
	"utsav-api/core/logger"
	"utsav-api/modules/ticket/entity"

	"github.com/google/uuid"
)

// SaleRow is a sold ticket joined with buyer, event and the commission leg.
type SaleRow struct {
	entity.Ticket
	UserName   string `db:"user_name"`
	UserEmail  string `db:"user_email"`
	EventTitle string `db:"event_title"`

	CommissionTxID    *uuid.UUID `db:"commission_tx_id"`
	CommissionAmount  *float64   `db:"commission_amount"`
	CommissionStatus  *string    `db:"commission_status"`
	CommissionCreated *time.Time `db:"commission_created_at"`
	CommissionFromID  *uuid.UUID `db:"commission_from_id"`
	CommissionToID    *uuid.UUID `db:"commission_to_id"`
}

// CommissionRow is an organizer-to-admin transaction with organizer and
// event context.
type CommissionRow struct {
	entity.Transaction
	OrganizerName  string    `db:"organizer_name"`
	OrganizerEmail string    `db:"organizer_email"`
	EventTitle     string    `db:"event_title"`
	EventDate      time.Time `db:"event_date"`
}

type TicketRepositoryInterface interface {
	BookWithTransactions(ctx context.Context, ticket *entity.Ticket, legs []entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Ticket, error)
	ListSalesByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]SaleRow, error)
	ListAdminCommissions(ctx context.Context) ([]CommissionRow, error)
	ApproveTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
}

type TicketRepository struct {
	db database.Database
}

func NewTicketRepository(db database.Database) *TicketRepository {
	return &TicketRepository{db: db}
}

// BookWithTransactions writes the ticket and both settlement legs in one
// transaction so a failed leg never leaves a ticket without its invoice.
func (r *TicketRepository) BookWithTransactions(ctx context.Context, ticket *entity.Ticket, legs []entity.Transaction) error {
	tx, err := r.db.BeginTxx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	row := tx.QueryRowContext(ctx, `
		INSERT INTO tickets (event_id, user_id, code, qty, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, ticket.EventID, ticket.UserID, ticket.Code, ticket.Qty, ticket.Amount, ticket.Status, ticket.CreatedAt, ticket.UpdatedAt)
	if err := row.Scan(&ticket.ID); err != nil {
		logger.Error("TicketRepository:BookWithTransactions:InsertTicket:Error:", err)
		return err
	}

	for i := range legs {
		leg := &legs[i]
		leg.TicketID = ticket.ID
		leg.CreatedAt = now
		leg.UpdatedAt = now
		row := tx.QueryRowContext(ctx, `
			INSERT INTO transactions (from_id, to_id, ticket_id, amount, type, commission, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`, leg.FromID, leg.ToID, leg.TicketID, leg.Amount, leg.Type, leg.Commission, leg.Status, leg.CreatedAt, leg.UpdatedAt)
		if err := row.Scan(&leg.ID); err != nil {
			logger.Error("TicketRepository:BookWithTransactions:InsertLeg:Error:", err)
			return err
		}
	}

	return tx.Commit()
}

func (r *TicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT id, event_id, user_id, code, qty, amount, status, created_at, updated_at
		FROM tickets
		WHERE id = $1
	`
	var ticket entity.Ticket
	err := r.db.GetContext(ctx, &ticket, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("TicketRepository:GetByID:Error:", err)
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Ticket, error) {
	query := `
		SELECT id, event_id, user_id, code, qty, amount, status, created_at, updated_at
		FROM tickets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	tickets := []entity.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, query, userID); err != nil {
		logger.Error("TicketRepository:ListByUser:Error:", err)
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) ListSalesByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]SaleRow, error) {
	query := `
		SELECT t.id, t.event_id, t.user_id, t.code, t.qty, t.amount, t.status, t.created_at, t.updated_at,
		       u.name AS user_name, u.email AS user_email,
		       e.title AS event_title,
		       tr.id AS commission_tx_id, tr.amount AS commission_amount, tr.status AS commission_status,
		       tr.created_at AS commission_created_at, tr.from_id AS commission_from_id, tr.to_id AS commission_to_id
		FROM tickets t
		JOIN events e ON e.id = t.event_id
		JOIN users u ON u.id = t.user_id
		LEFT JOIN transactions tr ON tr.ticket_id = t.id AND tr.type = $1
		WHERE e.created_by = $2
		ORDER BY t.created_at DESC
	`
	rows := []SaleRow{}
	if err := r.db.SelectContext(ctx, &rows, query, entity.TransactionOrganizerToAdmin, organizerID); err != nil {
		logger.Error("TicketRepository:ListSalesByOrganizer:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *TicketRepository) ListAdminCommissions(ctx context.Context) ([]CommissionRow, error) {
	query := `
		SELECT tr.id, tr.from_id, tr.to_id, tr.ticket_id, tr.amount, tr.type, tr.commission, tr.status,
		       tr.created_at, tr.updated_at,
		       u.name AS organizer_name, u.email AS organizer_email,
		       e.title AS event_title, e.date AS event_date
		FROM transactions tr
		JOIN users u ON u.id = tr.from_id
		JOIN tickets t ON t.id = tr.ticket_id
		JOIN events e ON e.id = t.event_id
		WHERE tr.type = $1
		ORDER BY tr.created_at DESC
	`
	rows := []CommissionRow{}
	if err := r.db.SelectContext(ctx, &rows, query, entity.TransactionOrganizerToAdmin); err != nil {
		logger.Error("TicketRepository:ListAdminCommissions:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *TicketRepository) ApproveTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, from_id, to_id, ticket_id, amount, type, commission, status, created_at, updated_at
	`
	var t entity.Transaction
	err := r.db.GetContext(ctx, &t, query, entity.TransactionStatusApproved, time.Now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("TicketRepository:ApproveTransaction:Error:", err)
		return nil, fmt.Errorf("approve transaction %s: %w", id, err)
	}
	return &t, nil
}
