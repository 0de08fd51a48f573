package service

import (
	"context"

	apperrors "utsav-api/core/errors"
	"utsav-api/core/logger"
	"utsav-api/core/utils"
	eventEntity "utsav-api/modules/event/entity"
	"utsav-api/modules/ticket/dto"
	"utsav-api/modules/ticket/entity"
	"utsav-api/modules/ticket/repository"

	"github.com/google/uuid"
)

// EventStore is the slice of the event repository needed to resolve the
// organizer behind a booked event.
type EventStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

type TicketService struct {
	repo           repository.TicketRepositoryInterface
	events         EventStore
	adminUserID    uuid.UUID
	commissionRate float64
}

func NewTicketService(repo repository.TicketRepositoryInterface, events EventStore, adminUserID uuid.UUID, commissionRate float64) *TicketService {
	return &TicketService{
		repo:           repo,
		events:         events,
		adminUserID:    adminUserID,
		commissionRate: commissionRate,
	}
}

// Book creates a ticket and its two settlement legs: the full amount from
// the buyer to the organizer, and the platform commission from the organizer
// to the admin account. Both legs start pending.
func (s *TicketService) Book(ctx context.Context, req *dto.BookTicketRequest) (*dto.TicketResponse, *apperrors.AppError) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid eventId")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid userId")
	}
	if req.Qty <= 0 {
		return nil, apperrors.InvalidInput("qty must be positive")
	}
	if req.Price < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to get event", err)
	}
	if event == nil {
		return nil, apperrors.NotFound("event not found")
	}

	totalAmount := req.Price * float64(req.Qty)
	commission := totalAmount * s.commissionRate

	ticket := &entity.Ticket{
		EventID: eventID,
		UserID:  userID,
		Code:    utils.GenerateTicketCode(),
		Qty:     req.Qty,
		Amount:  totalAmount,
		Status:  entity.TicketStatusBooked,
	}
	legs := []entity.Transaction{
		{
			FromID:     userID,
			ToID:       event.CreatedBy,
			Amount:     totalAmount,
			Type:       entity.TransactionUserToOrganizer,
			Commission: 0,
			Status:     entity.TransactionStatusPending,
		},
		{
			FromID:     event.CreatedBy,
			ToID:       s.adminUserID,
			Amount:     commission,
			Type:       entity.TransactionOrganizerToAdmin,
			Commission: commission,
			Status:     entity.TransactionStatusPending,
		},
	}

	if err := s.repo.BookWithTransactions(ctx, ticket, legs); err != nil {
		logger.Error("TicketService:Book:Error", "error", err)
		return nil, apperrors.Internal("failed to book ticket", err)
	}

	logger.Info("TicketService:Book:Success",
		"ticket_id", ticket.ID,
		"event_id", eventID,
		"user_id", userID,
		"amount", totalAmount,
		"commission", commission,
	)
	return toTicketResponse(ticket), nil
}

func (s *TicketService) Get(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, *apperrors.AppError) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to get ticket", err)
	}
	if ticket == nil {
		return nil, apperrors.NotFound("ticket not found")
	}
	return toTicketResponse(ticket), nil
}

func (s *TicketService) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.TicketResponse, *apperrors.AppError) {
	tickets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list tickets", err)
	}
	out := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, *toTicketResponse(&tickets[i]))
	}
	return out, nil
}

func (s *TicketService) ListSalesByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.OrganizerSaleRow, *apperrors.AppError) {
	rows, err := s.repo.ListSalesByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, apperrors.Internal("failed to list organizer sales", err)
	}

	out := make([]dto.OrganizerSaleRow, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		sale := dto.OrganizerSaleRow{
			Ticket:     *toTicketResponse(&r.Ticket),
			UserName:   r.UserName,
			UserEmail:  r.UserEmail,
			EventTitle: r.EventTitle,
		}
		if r.CommissionTxID != nil {
			tx := dto.TransactionResponse{
				ID:         *r.CommissionTxID,
				TicketID:   r.Ticket.ID,
				Amount:     *r.CommissionAmount,
				Type:       string(entity.TransactionOrganizerToAdmin),
				Commission: *r.CommissionAmount,
				Status:     *r.CommissionStatus,
			}
			if r.CommissionFromID != nil {
				tx.FromID = *r.CommissionFromID
			}
			if r.CommissionToID != nil {
				tx.ToID = *r.CommissionToID
			}
			if r.CommissionCreated != nil {
				tx.CreatedAt = *r.CommissionCreated
			}
			sale.Transaction = &tx
		}
		out = append(out, sale)
	}
	return out, nil
}

func (s *TicketService) ListAdminCommissions(ctx context.Context) ([]dto.AdminCommissionRow, *apperrors.AppError) {
	rows, err := s.repo.ListAdminCommissions(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list admin commissions", err)
	}

	out := make([]dto.AdminCommissionRow, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, dto.AdminCommissionRow{
			Transaction:    *toTransactionResponse(&r.Transaction),
			OrganizerName:  r.OrganizerName,
			OrganizerEmail: r.OrganizerEmail,
			EventTitle:     r.EventTitle,
			EventDate:      r.EventDate,
		})
	}
	return out, nil
}

func (s *TicketService) ApproveTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, *apperrors.AppError) {
	t, err := s.repo.ApproveTransaction(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to approve transaction", err)
	}
	if t == nil {
		return nil, apperrors.NotFound("transaction not found")
	}

	logger.Info("TicketService:ApproveTransaction:Success", "transaction_id", id)
	return toTransactionResponse(t), nil
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:        t.ID,
		EventID:   t.EventID,
		UserID:    t.UserID,
		Code:      t.Code,
		Qty:       t.Qty,
		Amount:    t.Amount,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:         t.ID,
		FromID:     t.FromID,
		ToID:       t.ToID,
		TicketID:   t.TicketID,
		Amount:     t.Amount,
		Type:       string(t.Type),
		Commission: t.Commission,
		Status:     string(t.Status),
		CreatedAt:  t.CreatedAt,
	}
}
