package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"utsav-api/core/database"
	"utsav-api/core/logger"
	"utsav-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsWithRole(ctx context.Context, id uuid.UUID, roles ...entity.Role) (bool, error)
	List(ctx context.Context, role, status string) ([]entity.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error
}

type UserRepository struct {
	db database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, email, password, role, photo_url, competition_type, team_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.PhotoURL,
		user.CompetitionType,
		user.TeamName,
		user.Status,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return row.Scan(&user.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, role, photo_url, competition_type, team_name, status, approved_at, rejected_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, role, photo_url, competition_type, team_name, status, approved_at, rejected_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsWithRole(ctx context.Context, id uuid.UUID, roles ...entity.Role) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE id = $1`
	args := []any{id}
	if len(roles) > 0 {
		query += ` AND role = ANY($2)`
		roleStrs := make([]string, len(roles))
		for i, role := range roles {
			roleStrs[i] = string(role)
		}
		args = append(args, pq.Array(roleStrs))
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		logger.Error("UserRepository:ExistsWithRole:Error:", err)
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context, role, status string) ([]entity.User, error) {
	query := `
		SELECT id, name, email, password, role, photo_url, competition_type, team_name, status, approved_at, rejected_at, created_at, updated_at
		FROM users
		WHERE ($1 = '' OR role = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	var users []entity.User
	if err := r.db.SelectContext(ctx, &users, query, role, status); err != nil {
		logger.Error("UserRepository:List:Error:", err)
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error {
	query := `
		UPDATE users
		SET status = $1,
		    approved_at = CASE WHEN $1 = 'approved' THEN $2 ELSE approved_at END,
		    rejected_at = CASE WHEN $1 = 'rejected' THEN $2 ELSE rejected_at END,
		    updated_at = $2
		WHERE id = $3
	`
	err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		logger.Error("UserRepository:UpdateStatus:Error:", err)
		return err
	}
	return nil
}
