package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"utsav-api/core/database"
	"utsav-api/core/logger"
	"utsav-api/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, status string, createdBy *uuid.UUID) ([]entity.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error
}

type EventRepository struct {
	db database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, description, date, location, price, image_url, slug, created_by, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Status == "" {
		event.Status = entity.EventStatusPending
	}

	row := r.db.QueryRowContext(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Location,
		event.Price,
		event.ImageURL,
		event.Slug,
		event.CreatedBy,
		event.Status,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return row.Scan(&event.ID)
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, title, description, date, location, price, image_url, slug, created_by, status, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) List(ctx context.Context, status string, createdBy *uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, title, description, date, location, price, image_url, slug, created_by, status, created_at, updated_at
		FROM events
		WHERE ($1 = '' OR status = $1)
		  AND ($2::uuid IS NULL OR created_by = $2)
		ORDER BY date ASC
	`
	var events []entity.Event
	if err := r.db.SelectContext(ctx, &events, query, status, createdBy); err != nil {
		logger.Error("EventRepository:List:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error {
	query := `UPDATE events SET status = $1, updated_at = $2 WHERE id = $3`
	err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		logger.Error("EventRepository:UpdateStatus:Error:", err)
		return err
	}
	return nil
}
