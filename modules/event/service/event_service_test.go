package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"utsav-api/core/errors"
	"utsav-api/modules/event/dto"
	"utsav-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uuid.UUID]*entity.Event{}}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) List(ctx context.Context, status string, createdBy *uuid.UUID) ([]entity.Event, error) {
	out := []entity.Event{}
	for _, e := range f.events {
		if status != "" && string(e.Status) != status {
			continue
		}
		if createdBy != nil && e.CreatedBy != *createdBy {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error {
	f.events[id].Status = status
	return nil
}

func TestCreateEvent(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	organizerID := uuid.New()

	resp, appErr := svc.Create(context.Background(), organizerID, &dto.CreateEventRequest{
		Title:    "Kathmandu Food Festival",
		Date:     "2026-10-12T10:00:00Z",
		Location: "Tundikhel",
		Price:    500,
	})
	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, organizerID, resp.CreatedBy)
	assert.True(t, strings.HasPrefix(resp.Slug, "kathmandu-food-festival-"))
}

func TestCreateEventInvalidDate(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title: "Food Festival",
		Date:  "next tuesday",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestUpdateEventStatus(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title: "Lakeside Music Night",
		Date:  "2026-11-01T18:00:00Z",
	})
	require.Nil(t, appErr)

	resp, appErr := svc.UpdateStatus(context.Background(), created.ID, "approved")
	require.Nil(t, appErr)
	assert.Equal(t, "approved", resp.Status)

	_, appErr = svc.UpdateStatus(context.Background(), created.ID, "archived")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = svc.UpdateStatus(context.Background(), uuid.New(), "approved")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestListApprovedFiltersOutPending(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	a, _ := svc.Create(context.Background(), uuid.New(), &dto.CreateEventRequest{Title: "One", Date: "2026-10-12T10:00:00Z"})
	svc.Create(context.Background(), uuid.New(), &dto.CreateEventRequest{Title: "Two", Date: "2026-10-13T10:00:00Z"})
	_, appErr := svc.UpdateStatus(context.Background(), a.ID, "approved")
	require.Nil(t, appErr)

	events, appErr := svc.ListApproved(context.Background())
	require.Nil(t, appErr)
	require.Len(t, events, 1)
	assert.Equal(t, a.ID, events[0].ID)
}
