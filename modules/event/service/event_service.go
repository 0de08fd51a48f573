package service

import (
	"context"
	"strings"
	"time"

	"utsav-api/core/errors"
	"utsav-api/core/logger"
	"utsav-api/core/utils"
	"utsav-api/modules/event/dto"
	"utsav-api/modules/event/entity"
	"utsav-api/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventService struct {
	repo repository.EventRepositoryInterface
}

func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.InvalidInput("title is required")
	}
	if req.Date == "" {
		return nil, errors.InvalidInput("date is required")
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, errors.InvalidInput("invalid date")
	}
	if req.Price < 0 {
		return nil, errors.InvalidInput("price must not be negative")
	}

	event := &entity.Event{
		Title:       title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Slug:        slug.Make(title) + "-" + strings.ToLower(utils.GenerateID()),
		CreatedBy:   organizerID,
		Status:      entity.EventStatusPending,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		logger.Error("EventService:Create:Error", "error", err)
		return nil, errors.Internal("failed to create event", err)
	}

	logger.Info("EventService:Create:Success", "event_id", event.ID, "organizer_id", organizerID)
	return toEventResponse(event), nil
}

// ListApproved is the public browse endpoint performers use before requesting
// participation.
func (s *EventService) ListApproved(ctx context.Context) ([]dto.EventResponse, *errors.AppError) {
	return s.list(ctx, string(entity.EventStatusApproved), nil)
}

func (s *EventService) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	return s.list(ctx, "", &organizerID)
}

func (s *EventService) ListAll(ctx context.Context, status string) ([]dto.EventResponse, *errors.AppError) {
	return s.list(ctx, status, nil)
}

func (s *EventService) list(ctx context.Context, status string, createdBy *uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	events, err := s.repo.List(ctx, status, createdBy)
	if err != nil {
		return nil, errors.Internal("failed to list events", err)
	}
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *toEventResponse(&events[i]))
	}
	return out, nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("failed to get event", err)
	}
	if event == nil {
		return nil, errors.NotFound("event not found")
	}
	return toEventResponse(event), nil
}

// UpdateStatus is the admin approve/reject flow. Only approved events accept
// participation requests.
func (s *EventService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.EventResponse, *errors.AppError) {
	st := entity.EventStatus(status)
	if st != entity.EventStatusApproved && st != entity.EventStatusRejected && st != entity.EventStatusPending {
		return nil, errors.InvalidInput("invalid status")
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("failed to get event", err)
	}
	if event == nil {
		return nil, errors.NotFound("event not found")
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, errors.Internal("failed to update event status", err)
	}
	event.Status = st
	logger.Info("EventService:UpdateStatus", "event_id", id, "status", st)
	return toEventResponse(event), nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Price:       e.Price,
		ImageURL:    e.ImageURL,
		Slug:        e.Slug,
		CreatedBy:   e.CreatedBy,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}
