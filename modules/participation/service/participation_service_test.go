package service

import (
	"context"
	"testing"
	"time"

	apperrors "utsav-api/core/errors"
	"utsav-api/core/tasks"
	eventEntity "utsav-api/modules/event/entity"
	"utsav-api/modules/participation/dto"
	"utsav-api/modules/participation/entity"
	"utsav-api/modules/participation/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParticipationRepo struct {
	records map[string]*entity.Participation
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{records: map[string]*entity.Participation{}}
}

func key(eventID, performerID uuid.UUID) string {
	return eventID.String() + "/" + performerID.String()
}

func (f *fakeParticipationRepo) Insert(ctx context.Context, p *entity.Participation) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	copied := *p
	f.records[key(p.EventID, p.PerformerID)] = &copied
	return nil
}

func (f *fakeParticipationRepo) GetByEventAndPerformer(ctx context.Context, eventID, performerID uuid.UUID) (*entity.Participation, error) {
	p, ok := f.records[key(eventID, performerID)]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeParticipationRepo) Update(ctx context.Context, p *entity.Participation) error {
	copied := *p
	f.records[key(p.EventID, p.PerformerID)] = &copied
	return nil
}

func (f *fakeParticipationRepo) ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]repository.OrganizerRow, error) {
	return nil, nil
}

func (f *fakeParticipationRepo) ListForPerformer(ctx context.Context, performerID uuid.UUID) ([]repository.PerformerRow, error) {
	return nil, nil
}

func (f *fakeParticipationRepo) ListPaymentsForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]repository.OrganizerRow, error) {
	return nil, nil
}

type fakeEventStore struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEventStore) GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return f.events[id], nil
}

type fakeNotifier struct {
	payloads []tasks.NotificationPayload
}

func (f *fakeNotifier) Notify(ctx context.Context, p tasks.NotificationPayload) error {
	f.payloads = append(f.payloads, p)
	return nil
}

func newParticipationFixture(t *testing.T) (*ParticipationService, *fakeParticipationRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	repo := newFakeParticipationRepo()

	organizerID := uuid.New()
	event := &eventEntity.Event{CreatedBy: organizerID, Status: eventEntity.EventStatusApproved}
	event.ID = uuid.New()
	events := &fakeEventStore{events: map[uuid.UUID]*eventEntity.Event{event.ID: event}}

	svc := NewParticipationService(repo, events, &fakeNotifier{})
	svc.now = func() time.Time { return time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC) }
	return svc, repo, event.ID, uuid.New()
}

func TestRequestParticipation(t *testing.T) {
	svc, repo, eventID, performerID := newParticipationFixture(t)

	resp, already, appErr := svc.Request(context.Background(), &dto.RequestParticipationRequest{
		EventID:     eventID.String(),
		PerformerID: performerID.String(),
	})
	require.Nil(t, appErr)
	assert.False(t, already)
	assert.Equal(t, "requested", resp.Status)
	assert.Nil(t, resp.Payment)
	assert.Len(t, repo.records, 1)
}

func TestRequestParticipationIdempotent(t *testing.T) {
	svc, repo, eventID, performerID := newParticipationFixture(t)

	req := &dto.RequestParticipationRequest{EventID: eventID.String(), PerformerID: performerID.String()}

	_, already, appErr := svc.Request(context.Background(), req)
	require.Nil(t, appErr)
	assert.False(t, already)

	resp, already, appErr := svc.Request(context.Background(), req)
	require.Nil(t, appErr)
	assert.True(t, already)
	assert.Equal(t, "requested", resp.Status)
	assert.Len(t, repo.records, 1)
}

func TestRequestParticipationEventNotApproved(t *testing.T) {
	repo := newFakeParticipationRepo()
	event := &eventEntity.Event{Status: eventEntity.EventStatusPending}
	event.ID = uuid.New()
	events := &fakeEventStore{events: map[uuid.UUID]*eventEntity.Event{event.ID: event}}
	svc := NewParticipationService(repo, events, nil)

	_, _, appErr := svc.Request(context.Background(), &dto.RequestParticipationRequest{
		EventID:     event.ID.String(),
		PerformerID: uuid.New().String(),
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestRequestParticipationUnknownEvent(t *testing.T) {
	svc, _, _, performerID := newParticipationFixture(t)

	_, _, appErr := svc.Request(context.Background(), &dto.RequestParticipationRequest{
		EventID:     uuid.New().String(),
		PerformerID: performerID.String(),
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestAcceptUnknownParticipation(t *testing.T) {
	svc, _, eventID, performerID := newParticipationFixture(t)

	_, appErr := svc.Accept(context.Background(), eventID, performerID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

// Walks the whole workflow: request, accept, define payment, submit proof,
// confirm, schedule.
func TestParticipationWorkflow(t *testing.T) {
	svc, repo, eventID, performerID := newParticipationFixture(t)
	ctx := context.Background()

	_, _, appErr := svc.Request(ctx, &dto.RequestParticipationRequest{
		EventID: eventID.String(), PerformerID: performerID.String(),
	})
	require.Nil(t, appErr)

	resp, appErr := svc.Accept(ctx, eventID, performerID)
	require.Nil(t, appErr)
	assert.Equal(t, "accepted", resp.Status)

	resp, appErr = svc.DefinePayment(ctx, eventID, performerID, &dto.DefinePaymentRequest{
		Amount: 1000, Method: "esewa",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "pay_pending", resp.Status)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, 1000.0, resp.Payment.Amount)
	require.NotNil(t, resp.Payment.Status)
	assert.Equal(t, "pending", *resp.Payment.Status)
	assert.Nil(t, resp.Payment.PaidAt)

	resp, appErr = svc.SubmitPaymentProof(ctx, eventID, performerID, &dto.SubmitPaymentProofRequest{
		Method: "esewa", Ref: "ESW123",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "pay_pending", resp.Status)
	assert.Equal(t, "ESW123", resp.Payment.Ref)
	assert.Equal(t, "pending", *resp.Payment.Status)
	assert.NotNil(t, resp.Payment.SubmittedByPerformerAt)

	resp, appErr = svc.ConfirmPayment(ctx, eventID, performerID)
	require.Nil(t, appErr)
	assert.Equal(t, "paid", resp.Status)
	assert.Equal(t, "confirmed", *resp.Payment.Status)
	assert.NotNil(t, resp.Payment.PaidAt)

	resp, appErr = svc.SetSchedule(ctx, eventID, performerID, &dto.SetScheduleRequest{
		DatetimeISO: "2025-09-05T18:00:00Z", Stage: "Main", Note: "opening act",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "scheduled", resp.Status)
	require.NotNil(t, resp.Schedule)
	assert.Equal(t, "Main", resp.Schedule.Stage)

	// The organizer-defined amount survived the proof submission.
	stored := repo.records[key(eventID, performerID)]
	require.NotNil(t, stored.PaymentAmount)
	assert.Equal(t, 1000.0, *stored.PaymentAmount)
}

func TestSetScheduleRequiresConfirmedPayment(t *testing.T) {
	svc, _, eventID, performerID := newParticipationFixture(t)
	ctx := context.Background()

	_, _, appErr := svc.Request(ctx, &dto.RequestParticipationRequest{
		EventID: eventID.String(), PerformerID: performerID.String(),
	})
	require.Nil(t, appErr)

	schedule := &dto.SetScheduleRequest{DatetimeISO: "2025-09-05T18:00:00Z", Stage: "Main"}

	// No payment defined yet.
	_, appErr = svc.SetSchedule(ctx, eventID, performerID, schedule)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidState, appErr.Code)

	// Payment defined but still pending.
	_, appErr = svc.DefinePayment(ctx, eventID, performerID, &dto.DefinePaymentRequest{Amount: 500})
	require.Nil(t, appErr)
	_, appErr = svc.SetSchedule(ctx, eventID, performerID, schedule)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidState, appErr.Code)
}

func TestConfirmPaymentRequiresPending(t *testing.T) {
	svc, _, eventID, performerID := newParticipationFixture(t)
	ctx := context.Background()

	_, _, appErr := svc.Request(ctx, &dto.RequestParticipationRequest{
		EventID: eventID.String(), PerformerID: performerID.String(),
	})
	require.Nil(t, appErr)

	// No payment defined.
	_, appErr = svc.ConfirmPayment(ctx, eventID, performerID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidState, appErr.Code)

	_, appErr = svc.DefinePayment(ctx, eventID, performerID, &dto.DefinePaymentRequest{Amount: 500})
	require.Nil(t, appErr)
	_, appErr = svc.ConfirmPayment(ctx, eventID, performerID)
	require.Nil(t, appErr)

	// Already confirmed.
	_, appErr = svc.ConfirmPayment(ctx, eventID, performerID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidState, appErr.Code)
}

func TestDefinePaymentInvalidMethod(t *testing.T) {
	svc, _, eventID, performerID := newParticipationFixture(t)

	_, appErr := svc.DefinePayment(context.Background(), eventID, performerID, &dto.DefinePaymentRequest{
		Amount: 500, Method: "bitcoin",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestRejectBeforePayment(t *testing.T) {
	svc, _, eventID, performerID := newParticipationFixture(t)
	ctx := context.Background()

	_, _, appErr := svc.Request(ctx, &dto.RequestParticipationRequest{
		EventID: eventID.String(), PerformerID: performerID.String(),
	})
	require.Nil(t, appErr)

	resp, appErr := svc.Reject(ctx, eventID, performerID)
	require.Nil(t, appErr)
	assert.Equal(t, "rejected", resp.Status)
}

func TestRejectAfterPaymentStartedFails(t *testing.T) {
	svc, _, eventID, performerID := newParticipationFixture(t)
	ctx := context.Background()

	_, _, appErr := svc.Request(ctx, &dto.RequestParticipationRequest{
		EventID: eventID.String(), PerformerID: performerID.String(),
	})
	require.Nil(t, appErr)
	_, appErr = svc.DefinePayment(ctx, eventID, performerID, &dto.DefinePaymentRequest{Amount: 500})
	require.Nil(t, appErr)

	_, appErr = svc.Reject(ctx, eventID, performerID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidState, appErr.Code)
}

func TestSubmitPaymentProofKeepsPaidStatus(t *testing.T) {
	svc, _, eventID, performerID := newParticipationFixture(t)
	ctx := context.Background()

	_, _, appErr := svc.Request(ctx, &dto.RequestParticipationRequest{
		EventID: eventID.String(), PerformerID: performerID.String(),
	})
	require.Nil(t, appErr)
	_, appErr = svc.DefinePayment(ctx, eventID, performerID, &dto.DefinePaymentRequest{Amount: 500})
	require.Nil(t, appErr)
	_, appErr = svc.ConfirmPayment(ctx, eventID, performerID)
	require.Nil(t, appErr)

	// A late proof submission after confirmation must not demote the status.
	resp, appErr := svc.SubmitPaymentProof(ctx, eventID, performerID, &dto.SubmitPaymentProofRequest{Ref: "LATE1"})
	require.Nil(t, appErr)
	assert.Equal(t, "paid", resp.Status)
}
