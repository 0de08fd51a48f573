package service

import (
	"context"
	"strings"
	"time"

	apperrors "utsav-api/core/errors"
	"utsav-api/core/logger"
	"utsav-api/core/tasks"
	eventEntity "utsav-api/modules/event/entity"
	notifEntity "utsav-api/modules/notification/entity"
	"utsav-api/modules/participation/dto"
	"utsav-api/modules/participation/entity"
	"utsav-api/modules/participation/repository"

	"github.com/google/uuid"
)

// EventStore is the slice of the event repository the workflow needs.
type EventStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

type ParticipationService struct {
	repo     repository.ParticipationRepositoryInterface
	events   EventStore
	notifier tasks.Notifier
	now      func() time.Time
}

func NewParticipationService(repo repository.ParticipationRepositoryInterface, events EventStore, notifier tasks.Notifier) *ParticipationService {
	return &ParticipationService{
		repo:     repo,
		events:   events,
		notifier: notifier,
		now:      time.Now,
	}
}

// Request records a performer's participation request against an approved
// event. A repeat request for the same event returns the existing record
// unchanged; alreadyRequested tells the caller to answer 200 instead of 201.
func (s *ParticipationService) Request(ctx context.Context, req *dto.RequestParticipationRequest) (resp *dto.ParticipationResponse, alreadyRequested bool, appErr *apperrors.AppError) {
	if req.EventID == "" || req.PerformerID == "" {
		return nil, false, apperrors.InvalidInput("eventId and performerId are required")
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, false, apperrors.InvalidInput("invalid eventId")
	}
	performerID, err := uuid.Parse(req.PerformerID)
	if err != nil {
		return nil, false, apperrors.InvalidInput("invalid performerId")
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, false, apperrors.Internal("failed to get event", err)
	}
	if event == nil {
		return nil, false, apperrors.NotFound("event not found")
	}
	if !event.AcceptsParticipation() {
		return nil, false, apperrors.InvalidInput("event not approved")
	}

	existing, err := s.repo.GetByEventAndPerformer(ctx, eventID, performerID)
	if err != nil {
		return nil, false, apperrors.Internal("failed to get participation", err)
	}
	if existing != nil {
		return toParticipationResponse(existing), true, nil
	}

	p := &entity.Participation{
		EventID:     eventID,
		PerformerID: performerID,
		Status:      entity.ParticipationStatusRequested,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		logger.Error("ParticipationService:Request:Error", "error", err)
		return nil, false, apperrors.Internal("failed to create participation", err)
	}

	logger.Info("ParticipationService:Request:Success",
		"event_id", eventID,
		"performer_id", performerID,
	)
	s.notify(ctx, event.CreatedBy, "New participation request",
		"A performer requested to join your event.", notifEntity.TypeParticipationRequested, eventID, performerID)
	return toParticipationResponse(p), false, nil
}

func (s *ParticipationService) Accept(ctx context.Context, eventID, performerID uuid.UUID) (*dto.ParticipationResponse, *apperrors.AppError) {
	p, appErr := s.get(ctx, eventID, performerID)
	if appErr != nil {
		return nil, appErr
	}

	p.Status = entity.ParticipationStatusAccepted
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Internal("failed to update participation", err)
	}

	logger.Info("ParticipationService:Accept:Success", "event_id", eventID, "performer_id", performerID)
	s.notify(ctx, performerID, "Participation accepted",
		"The organizer accepted your participation request.", notifEntity.TypeParticipationAccepted, eventID, performerID)
	return toParticipationResponse(p), nil
}

// Reject closes a request before any payment has been defined. Once the
// workflow has entered the payment phase the request can no longer be
// rejected.
func (s *ParticipationService) Reject(ctx context.Context, eventID, performerID uuid.UUID) (*dto.ParticipationResponse, *apperrors.AppError) {
	p, appErr := s.get(ctx, eventID, performerID)
	if appErr != nil {
		return nil, appErr
	}
	if p.Status != entity.ParticipationStatusRequested && p.Status != entity.ParticipationStatusAccepted {
		return nil, apperrors.InvalidState("cannot reject after payment has started")
	}

	p.Status = entity.ParticipationStatusRejected
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Internal("failed to update participation", err)
	}

	logger.Info("ParticipationService:Reject:Success", "event_id", eventID, "performer_id", performerID)
	s.notify(ctx, performerID, "Participation rejected",
		"The organizer rejected your participation request.", notifEntity.TypeParticipationRejected, eventID, performerID)
	return toParticipationResponse(p), nil
}

// DefinePayment records the amount the organizer expects and opens the
// payment confirmation window. The payment sits pending until the organizer
// confirms receipt.
func (s *ParticipationService) DefinePayment(ctx context.Context, eventID, performerID uuid.UUID, req *dto.DefinePaymentRequest) (*dto.ParticipationResponse, *apperrors.AppError) {
	method := entity.PaymentMethod(strings.TrimSpace(req.Method))
	if method == "" {
		method = entity.PaymentMethodCash
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, apperrors.InvalidInput("invalid payment method")
	}
	if req.Amount < 0 {
		return nil, apperrors.InvalidInput("amount must not be negative")
	}

	p, appErr := s.get(ctx, eventID, performerID)
	if appErr != nil {
		return nil, appErr
	}

	amount := req.Amount
	ref := req.Ref
	pending := entity.PaymentStatusPending
	p.PaymentAmount = &amount
	p.PaymentMethod = &method
	p.PaymentRef = &ref
	p.PaymentStatus = &pending
	p.PaidAt = nil
	p.Status = entity.ParticipationStatusPayPending

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Internal("failed to update participation", err)
	}

	logger.Info("ParticipationService:DefinePayment:Success",
		"event_id", eventID,
		"performer_id", performerID,
		"amount", amount,
		"method", method,
	)
	s.notify(ctx, performerID, "Payment requested",
		"The organizer defined the participation fee. Please pay and submit your reference.", notifEntity.TypePaymentDefined, eventID, performerID)
	return toParticipationResponse(p), nil
}

// SubmitPaymentProof attaches the performer's off-band payment reference.
// The amount is untouched; only the organizer's confirmation moves the
// payment out of pending.
func (s *ParticipationService) SubmitPaymentProof(ctx context.Context, eventID, performerID uuid.UUID, req *dto.SubmitPaymentProofRequest) (*dto.ParticipationResponse, *apperrors.AppError) {
	p, appErr := s.get(ctx, eventID, performerID)
	if appErr != nil {
		return nil, appErr
	}

	method := entity.PaymentMethod(strings.TrimSpace(req.Method))
	if method == "" {
		if p.PaymentMethod != nil {
			method = *p.PaymentMethod
		} else {
			method = entity.PaymentMethodEsewa
		}
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, apperrors.InvalidInput("invalid payment method")
	}

	ref := req.Ref
	if ref == "" && p.PaymentRef != nil {
		ref = *p.PaymentRef
	}
	p.PaymentMethod = &method
	p.PaymentRef = &ref
	if p.PaymentStatus == nil {
		pending := entity.PaymentStatusPending
		p.PaymentStatus = &pending
	}
	submittedAt := s.now()
	p.SubmittedByPerformerAt = &submittedAt

	if p.Status != entity.ParticipationStatusPaid && p.Status != entity.ParticipationStatusScheduled {
		p.Status = entity.ParticipationStatusPayPending
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Internal("failed to update participation", err)
	}

	logger.Info("ParticipationService:SubmitPaymentProof:Success",
		"event_id", eventID,
		"performer_id", performerID,
		"method", method,
	)
	return toParticipationResponse(p), nil
}

func (s *ParticipationService) ConfirmPayment(ctx context.Context, eventID, performerID uuid.UUID) (*dto.ParticipationResponse, *apperrors.AppError) {
	p, appErr := s.get(ctx, eventID, performerID)
	if appErr != nil {
		return nil, appErr
	}
	if !p.PaymentIs(entity.PaymentStatusPending) {
		return nil, apperrors.InvalidState("payment is not pending")
	}

	confirmed := entity.PaymentStatusConfirmed
	paidAt := s.now()
	p.PaymentStatus = &confirmed
	p.PaidAt = &paidAt
	p.Status = entity.ParticipationStatusPaid

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Internal("failed to update participation", err)
	}

	logger.Info("ParticipationService:ConfirmPayment:Success", "event_id", eventID, "performer_id", performerID)
	s.notify(ctx, performerID, "Payment confirmed",
		"The organizer confirmed your payment.", notifEntity.TypePaymentConfirmed, eventID, performerID)
	return toParticipationResponse(p), nil
}

func (s *ParticipationService) SetSchedule(ctx context.Context, eventID, performerID uuid.UUID, req *dto.SetScheduleRequest) (*dto.ParticipationResponse, *apperrors.AppError) {
	when, err := time.Parse(time.RFC3339, req.DatetimeISO)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid datetimeISO")
	}

	p, appErr := s.get(ctx, eventID, performerID)
	if appErr != nil {
		return nil, appErr
	}
	if !p.PaymentIs(entity.PaymentStatusConfirmed) {
		return nil, apperrors.InvalidState("cannot schedule before payment confirmation")
	}

	stage := req.Stage
	note := req.Note
	p.ScheduleDate = &when
	p.ScheduleStage = &stage
	p.ScheduleNote = &note
	p.Status = entity.ParticipationStatusScheduled

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Internal("failed to update participation", err)
	}

	logger.Info("ParticipationService:SetSchedule:Success",
		"event_id", eventID,
		"performer_id", performerID,
		"stage", stage,
	)
	s.notify(ctx, performerID, "You are scheduled",
		"The organizer scheduled your performance.", notifEntity.TypeParticipationScheduled, eventID, performerID)
	return toParticipationResponse(p), nil
}

func (s *ParticipationService) ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.OrganizerParticipationRow, *apperrors.AppError) {
	rows, err := s.repo.ListForOrganizer(ctx, organizerID)
	if err != nil {
		return nil, apperrors.Internal("failed to list participations", err)
	}
	out := make([]dto.OrganizerParticipationRow, 0, len(rows))
	for i := range rows {
		out = append(out, toOrganizerRow(&rows[i]))
	}
	return out, nil
}

func (s *ParticipationService) ListForPerformer(ctx context.Context, performerID uuid.UUID) ([]dto.PerformerParticipationRow, *apperrors.AppError) {
	rows, err := s.repo.ListForPerformer(ctx, performerID)
	if err != nil {
		return nil, apperrors.Internal("failed to list participations", err)
	}
	out := make([]dto.PerformerParticipationRow, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, dto.PerformerParticipationRow{
			Event: dto.EventSummary{
				ID:       r.EventID,
				Title:    r.EventTitle,
				Location: r.EventLocation,
			},
			Status:   string(r.Status),
			Payment:  toPaymentView(&r.Participation),
			Schedule: toScheduleView(&r.Participation),
		})
	}
	return out, nil
}

func (s *ParticipationService) ListPaymentsForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.OrganizerParticipationRow, *apperrors.AppError) {
	rows, err := s.repo.ListPaymentsForOrganizer(ctx, organizerID)
	if err != nil {
		return nil, apperrors.Internal("failed to list payments", err)
	}
	out := make([]dto.OrganizerParticipationRow, 0, len(rows))
	for i := range rows {
		out = append(out, toOrganizerRow(&rows[i]))
	}
	return out, nil
}

func (s *ParticipationService) get(ctx context.Context, eventID, performerID uuid.UUID) (*entity.Participation, *apperrors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to get event", err)
	}
	if event == nil {
		return nil, apperrors.NotFound("event not found")
	}

	p, err := s.repo.GetByEventAndPerformer(ctx, eventID, performerID)
	if err != nil {
		return nil, apperrors.Internal("failed to get participation", err)
	}
	if p == nil {
		return nil, apperrors.NotFound("participation request not found")
	}
	return p, nil
}

func (s *ParticipationService) notify(ctx context.Context, userID uuid.UUID, title, message, typ string, eventID, performerID uuid.UUID) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, tasks.NotificationPayload{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
		Data: map[string]any{
			"event_id":     eventID.String(),
			"performer_id": performerID.String(),
		},
	})
	if err != nil {
		logger.Error("ParticipationService:notify:Error", "error", err, "user_id", userID)
	}
}

func toParticipationResponse(p *entity.Participation) *dto.ParticipationResponse {
	return &dto.ParticipationResponse{
		ID:          p.ID,
		EventID:     p.EventID,
		PerformerID: p.PerformerID,
		Status:      string(p.Status),
		Payment:     toPaymentView(p),
		Schedule:    toScheduleView(p),
		CreatedAt:   p.CreatedAt,
	}
}

func toPaymentView(p *entity.Participation) *dto.PaymentView {
	if p.PaymentAmount == nil && p.PaymentStatus == nil {
		return nil
	}
	view := &dto.PaymentView{
		PaidAt:                 p.PaidAt,
		SubmittedByPerformerAt: p.SubmittedByPerformerAt,
	}
	if p.PaymentAmount != nil {
		view.Amount = *p.PaymentAmount
	}
	if p.PaymentMethod != nil {
		view.Method = string(*p.PaymentMethod)
	}
	if p.PaymentRef != nil {
		view.Ref = *p.PaymentRef
	}
	if p.PaymentStatus != nil {
		status := string(*p.PaymentStatus)
		view.Status = &status
	}
	return view
}

func toScheduleView(p *entity.Participation) *dto.ScheduleView {
	if p.ScheduleDate == nil {
		return nil
	}
	view := &dto.ScheduleView{Date: *p.ScheduleDate}
	if p.ScheduleStage != nil {
		view.Stage = *p.ScheduleStage
	}
	if p.ScheduleNote != nil {
		view.Note = *p.ScheduleNote
	}
	return view
}

func toOrganizerRow(r *repository.OrganizerRow) dto.OrganizerParticipationRow {
	performer := &dto.PerformerSummary{
		ID:    r.PerformerID,
		Name:  r.PerformerName,
		Email: r.PerformerEmail,
	}
	if r.PerformerCompetitionType != nil {
		performer.CompetitionType = *r.PerformerCompetitionType
	}
	return dto.OrganizerParticipationRow{
		EventID:    r.EventID,
		EventTitle: r.EventTitle,
		Performer:  performer,
		Status:     string(r.Status),
		Payment:    toPaymentView(&r.Participation),
		Schedule:   toScheduleView(&r.Participation),
	}
}
