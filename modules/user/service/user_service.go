package service

import (
	"context"
	"strings"
	"time"

	"utsav-api/core/cache"
	"utsav-api/core/config"
	"utsav-api/core/constants"
	"utsav-api/core/errors"
	"utsav-api/core/logger"
	"utsav-api/core/utils"
	"utsav-api/modules/user/dto"
	"utsav-api/modules/user/entity"
	"utsav-api/modules/user/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

func NewUserService(repo repository.UserRepositoryInterface, cache cache.Cache) *UserService {
	return &UserService{repo: repo, cache: cache}
}

func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if len(name) < 2 || len(name) > 80 {
		return nil, errors.InvalidInput("name must be between 2 and 80 characters")
	}
	if !utils.IsValidEmail(email) {
		return nil, errors.InvalidInput("please provide a valid email")
	}
	if len(req.Password) < 6 {
		return nil, errors.InvalidInput("password must be at least 6 characters")
	}

	role := entity.Role(req.Role)
	if req.Role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, errors.InvalidInput("invalid role")
	}

	var compType *entity.CompetitionType
	if req.CompetitionType != "" {
		t := entity.CompetitionType(req.CompetitionType)
		if !entity.ValidCompetitionType(t) {
			return nil, errors.InvalidInput("invalid competition type")
		}
		compType = &t
	}
	if role == entity.RoleParticipant && compType == nil {
		return nil, errors.InvalidInput("competition_type is required for participant role")
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Internal("failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err)
	}

	user := &entity.User{
		Name:            name,
		Email:           email,
		Password:        string(hashed),
		Role:            role,
		CompetitionType: compType,
		TeamName:        strings.TrimSpace(req.TeamName),
		Status:          entity.DefaultStatus(role),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		logger.Error("UserService:Register:Create:Error", "error", err)
		return nil, errors.Internal("failed to create user", err)
	}

	logger.Info("UserService:Register:Success", "user_id", user.ID, "role", user.Role)
	return toUserResponse(user), nil
}

func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	loginKey := "login:attempts:" + email

	if s.cache != nil {
		attempts, err := s.cache.LoginAttempts(ctx, loginKey)
		if err == nil && attempts >= constants.MaxLoginAttempts {
			return nil, errors.NewAppError(errors.ErrTooManyAttempts, "too many failed login attempts, try again later", nil)
		}
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Internal("failed to look up user", err)
	}
	if user == nil {
		s.recordFailedLogin(ctx, loginKey)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.recordFailedLogin(ctx, loginKey)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	if user.Role == entity.RoleOrganizer && user.Status != entity.AccountStatusApproved {
		return nil, errors.NewAppError(errors.ErrForbidden, "organizer account is not approved yet", nil)
	}

	ttl := time.Duration(config.Get().JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateToken(user.ID, user.Email, string(user.Role), ttl)
	if err != nil {
		return nil, errors.Internal("failed to issue token", err)
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, loginKey)
	}

	logger.Info("UserService:Login:Success", "user_id", user.ID)
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func (s *UserService) recordFailedLogin(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.IncrementLoginAttempt(ctx, key); err != nil {
		logger.Error("UserService:recordFailedLogin:Error", "error", err)
		return
	}
	_ = s.cache.Expire(ctx, key, constants.BlockDuration)
}

func (s *UserService) Logout(ctx context.Context, token string) *errors.AppError {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.AddToTokenBlacklist(ctx, token); err != nil {
		return errors.Internal("failed to revoke token", err)
	}
	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Internal("failed to get user", err)
	}
	if user == nil {
		return nil, errors.NotFound("user not found")
	}
	return toUserResponse(user), nil
}

func (s *UserService) List(ctx context.Context, role, status string) ([]dto.UserResponse, *errors.AppError) {
	users, err := s.repo.List(ctx, role, status)
	if err != nil {
		return nil, errors.Internal("failed to list users", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

// UpdateStatus is the admin approval flow for organizer accounts.
func (s *UserService) UpdateStatus(ctx context.Context, userID uuid.UUID, status string) (*dto.UserResponse, *errors.AppError) {
	st := entity.AccountStatus(status)
	if st != entity.AccountStatusApproved && st != entity.AccountStatusRejected && st != entity.AccountStatusPending {
		return nil, errors.InvalidInput("invalid status")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Internal("failed to get user", err)
	}
	if user == nil {
		return nil, errors.NotFound("user not found")
	}

	if err := s.repo.UpdateStatus(ctx, userID, st); err != nil {
		return nil, errors.Internal("failed to update status", err)
	}
	user.Status = st
	logger.Info("UserService:UpdateStatus", "user_id", userID, "status", st)
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		PhotoURL:  u.PhotoURL,
		TeamName:  u.TeamName,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
	if u.CompetitionType != nil {
		resp.CompetitionType = string(*u.CompetitionType)
	}
	return resp
}
