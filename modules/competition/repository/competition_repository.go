package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"utsav-api/core/database"
	"utsav-api/core/logger"
	"utsav-api/modules/competition/entity"

	"github.com/google/uuid"
)

// CompetitionRow carries a competition joined with the names and emails of
// its two competitors, so list views do not need a lookup per row.
type CompetitionRow struct {
	entity.Competition
	Competitor1Name  string `db:"competitor1_name"`
	Competitor1Email string `db:"competitor1_email"`
	Competitor2Name  string `db:"competitor2_name"`
	Competitor2Email string `db:"competitor2_email"`
}

type CompetitionRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Competition, error)
	List(ctx context.Context, organizerID *uuid.UUID) ([]CompetitionRow, error)
	SetWinner(ctx context.Context, id, winnerID uuid.UUID, prize float64) error
}

type CompetitionRepository struct {
	db database.Database
}

func NewCompetitionRepository(db database.Database) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Competition, error) {
	query := `
		SELECT id, competitor1, competitor2, organizer_id, date, location, status, winner, prize, created_at, updated_at
		FROM competitions
		WHERE id = $1
	`
	var comp entity.Competition
	err := r.db.GetContext(ctx, &comp, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("CompetitionRepository:GetByID:Error:", err)
		return nil, err
	}
	return &comp, nil
}

func (r *CompetitionRepository) List(ctx context.Context, organizerID *uuid.UUID) ([]CompetitionRow, error) {
	query := `
		SELECT c.id, c.competitor1, c.competitor2, c.organizer_id, c.date, c.location, c.status, c.winner, c.prize,
		       c.created_at, c.updated_at,
		       u1.name AS competitor1_name, u1.email AS competitor1_email,
		       u2.name AS competitor2_name, u2.email AS competitor2_email
		FROM competitions c
		JOIN users u1 ON u1.id = c.competitor1
		JOIN users u2 ON u2.id = c.competitor2
	`
	args := []interface{}{}
	if organizerID != nil {
		query += ` WHERE c.organizer_id = $1`
		args = append(args, *organizerID)
	}
	query += ` ORDER BY c.created_at DESC`

	rows := []CompetitionRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Error("CompetitionRepository:List:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *CompetitionRepository) SetWinner(ctx context.Context, id, winnerID uuid.UUID, prize float64) error {
	query := `
		UPDATE competitions
		SET winner = $1, prize = $2, status = $3, updated_at = $4
		WHERE id = $5
	`
	err := r.db.ExecContext(ctx, query, winnerID, prize, entity.CompetitionStatusCompleted, time.Now(), id)
	if err != nil {
		logger.Error("CompetitionRepository:SetWinner:Error:", err)
	}
	return err
}
