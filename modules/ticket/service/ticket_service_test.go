package service

import (
	"context"
	"strings"
	"testing"

	apperrors "utsav-api/core/errors"
	eventEntity "utsav-api/modules/event/entity"
	"utsav-api/modules/ticket/dto"
	"utsav-api/modules/ticket/entity"
	"utsav-api/modules/ticket/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicketRepo struct {
	tickets      map[uuid.UUID]*entity.Ticket
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets:      map[uuid.UUID]*entity.Ticket{},
		transactions: map[uuid.UUID]*entity.Transaction{},
	}
}

func (f *fakeTicketRepo) BookWithTransactions(ctx context.Context, ticket *entity.Ticket, legs []entity.Transaction) error {
	ticket.ID = uuid.New()
	f.tickets[ticket.ID] = ticket
	for i := range legs {
		legs[i].ID = uuid.New()
		legs[i].TicketID = ticket.ID
		leg := legs[i]
		f.transactions[leg.ID] = &leg
	}
	return nil
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTicketRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Ticket, error) {
	out := []entity.Ticket{}
	for _, t := range f.tickets {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListSalesByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]repository.SaleRow, error) {
	return nil, nil
}

func (f *fakeTicketRepo) ListAdminCommissions(ctx context.Context) ([]repository.CommissionRow, error) {
	return nil, nil
}

func (f *fakeTicketRepo) ApproveTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := f.transactions[id]
	if !ok {
		return nil, nil
	}
	t.Status = entity.TransactionStatusApproved
	return t, nil
}

type fakeEventStore struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEventStore) GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return f.events[id], nil
}

func newTicketFixture() (*TicketService, *fakeTicketRepo, uuid.UUID, uuid.UUID, uuid.UUID) {
	repo := newFakeTicketRepo()

	organizerID := uuid.New()
	adminID := uuid.New()
	event := &eventEntity.Event{CreatedBy: organizerID}
	event.ID = uuid.New()
	events := &fakeEventStore{events: map[uuid.UUID]*eventEntity.Event{event.ID: event}}

	svc := NewTicketService(repo, events, adminID, 0.13)
	return svc, repo, event.ID, organizerID, adminID
}

func TestBookTicketCreatesBothSettlementLegs(t *testing.T) {
	svc, repo, eventID, organizerID, adminID := newTicketFixture()
	buyerID := uuid.New()

	resp, appErr := svc.Book(context.Background(), &dto.BookTicketRequest{
		EventID: eventID.String(),
		UserID:  buyerID.String(),
		Qty:     2,
		Price:   500,
	})
	require.Nil(t, appErr)
	assert.Equal(t, 1000.0, resp.Amount)
	assert.Equal(t, "booked", resp.Status)
	assert.True(t, strings.HasPrefix(resp.Code, "TKT-"))

	require.Len(t, repo.transactions, 2)
	var userLeg, commissionLeg *entity.Transaction
	for _, tr := range repo.transactions {
		switch tr.Type {
		case entity.TransactionUserToOrganizer:
			userLeg = tr
		case entity.TransactionOrganizerToAdmin:
			commissionLeg = tr
		}
	}

	require.NotNil(t, userLeg)
	assert.Equal(t, buyerID, userLeg.FromID)
	assert.Equal(t, organizerID, userLeg.ToID)
	assert.Equal(t, 1000.0, userLeg.Amount)
	assert.Zero(t, userLeg.Commission)
	assert.Equal(t, entity.TransactionStatusPending, userLeg.Status)

	require.NotNil(t, commissionLeg)
	assert.Equal(t, organizerID, commissionLeg.FromID)
	assert.Equal(t, adminID, commissionLeg.ToID)
	assert.InDelta(t, 130.0, commissionLeg.Amount, 1e-9)
	assert.InDelta(t, 130.0, commissionLeg.Commission, 1e-9)
	assert.Equal(t, entity.TransactionStatusPending, commissionLeg.Status)
}

func TestBookTicketUnknownEvent(t *testing.T) {
	svc, _, _, _, _ := newTicketFixture()

	_, appErr := svc.Book(context.Background(), &dto.BookTicketRequest{
		EventID: uuid.New().String(),
		UserID:  uuid.New().String(),
		Qty:     1,
		Price:   100,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestBookTicketInvalidQty(t *testing.T) {
	svc, _, eventID, _, _ := newTicketFixture()

	_, appErr := svc.Book(context.Background(), &dto.BookTicketRequest{
		EventID: eventID.String(),
		UserID:  uuid.New().String(),
		Qty:     0,
		Price:   100,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestApproveTransaction(t *testing.T) {
	svc, repo, eventID, _, _ := newTicketFixture()

	_, appErr := svc.Book(context.Background(), &dto.BookTicketRequest{
		EventID: eventID.String(),
		UserID:  uuid.New().String(),
		Qty:     1,
		Price:   100,
	})
	require.Nil(t, appErr)

	var commissionID uuid.UUID
	for _, tr := range repo.transactions {
		if tr.Type == entity.TransactionOrganizerToAdmin {
			commissionID = tr.ID
		}
	}

	resp, appErr := svc.ApproveTransaction(context.Background(), commissionID)
	require.Nil(t, appErr)
	assert.Equal(t, "approved", resp.Status)
}

func TestApproveTransactionNotFound(t *testing.T) {
	svc, _, _, _, _ := newTicketFixture()

	_, appErr := svc.ApproveTransaction(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}
