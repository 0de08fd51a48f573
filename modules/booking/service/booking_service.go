package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "utsav-api/core/errors"
	"utsav-api/core/logger"
	"utsav-api/core/tasks"
	"utsav-api/modules/booking/dto"
	"utsav-api/modules/booking/entity"
	"utsav-api/modules/booking/repository"
	compEntity "utsav-api/modules/competition/entity"
	notifEntity "utsav-api/modules/notification/entity"
	userEntity "utsav-api/modules/user/entity"

	"github.com/google/uuid"
)

// UserDirectory is the slice of the user repository the booking ledger needs:
// existence checks for the organizer and competitor references.
type UserDirectory interface {
	ExistsWithRole(ctx context.Context, id uuid.UUID, roles ...userEntity.Role) (bool, error)
}

type BookingService struct {
	repo     repository.BookingRepositoryInterface
	users    UserDirectory
	notifier tasks.Notifier
	now      func() time.Time
}

func NewBookingService(repo repository.BookingRepositoryInterface, users UserDirectory, notifier tasks.Notifier) *BookingService {
	return &BookingService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, *apperrors.AppError) {
	if req.OrganizerID == "" || req.CompetitorID == "" || req.Date == "" {
		return nil, apperrors.InvalidInput("organizerId, competitorId and date are required")
	}

	organizerID, err := uuid.Parse(req.OrganizerID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid organizerId")
	}
	competitorID, err := uuid.Parse(req.CompetitorID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid competitorId")
	}

	when, err := parseDate(req.Date)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid date")
	}

	orgExists, err := s.users.ExistsWithRole(ctx, organizerID)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve organizer", err)
	}
	if !orgExists {
		return nil, apperrors.NotFound("organizer not found")
	}
	compExists, err := s.users.ExistsWithRole(ctx, competitorID)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve competitor", err)
	}
	if !compExists {
		return nil, apperrors.NotFound("competitor not found")
	}

	// Same-competitor clash check over the local calendar day while any
	// pending or accepted booking exists.
	dayStart := time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, when.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	clash, err := s.repo.HasActiveForCompetitorBetween(ctx, competitorID, dayStart, dayEnd)
	if err != nil {
		return nil, apperrors.Internal("failed to check booking clash", err)
	}
	if clash {
		return nil, apperrors.Conflict("competitor already has a booking for that date")
	}

	amount := req.Amount
	if amount < 0 {
		amount = 0
	}
	booking := &entity.Booking{
		OrganizerID:  organizerID,
		CompetitorID: competitorID,
		Date:         when,
		Amount:       amount,
		Notes:        strings.TrimSpace(req.Notes),
		Status:       entity.BookingStatusPending,
		Matched:      false,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		logger.Error("BookingService:Create:Error", "error", err)
		return nil, apperrors.Internal("failed to create booking", err)
	}

	logger.Info("BookingService:Create:Success",
		"booking_id", booking.ID,
		"organizer_id", organizerID,
		"competitor_id", competitorID,
		"date", when.Format(time.RFC3339),
	)
	return toBookingResponse(booking), nil
}

func (s *BookingService) List(ctx context.Context, organizerID, competitorID *uuid.UUID) ([]dto.BookingResponse, *apperrors.AppError) {
	bookings, err := s.repo.List(ctx, organizerID, competitorID)
	if err != nil {
		return nil, apperrors.Internal("failed to list bookings", err)
	}
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *toBookingResponse(&bookings[i]))
	}
	return out, nil
}

// SetStatus applies the requested status and, on acceptance of a not yet
// matched booking, runs the pairing search. The status write itself has no
// transition guard beyond the allowed-value check; re-accepting a matched
// booking is a harmless no-op for pairing because matched bookings are
// filtered out of the candidate search.
func (s *BookingService) SetStatus(ctx context.Context, bookingID uuid.UUID, statusStr string) (*dto.BookingResponse, *apperrors.AppError) {
	status := entity.BookingStatus(statusStr)
	if !entity.ValidBookingStatus(status) {
		return nil, apperrors.InvalidInput("invalid status")
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, apperrors.Internal("failed to get booking", err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking not found")
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, apperrors.Internal("failed to update booking status", err)
	}
	booking.Status = status

	if status == entity.BookingStatusAccepted && !booking.Matched {
		s.tryPair(ctx, booking)
	}

	// Callers wanting the matched flag after a pairing attempt should
	// re-read; the response reflects this booking's own status write.
	return toBookingResponse(booking), nil
}

// tryPair searches the organizer's accepted unmatched bookings for the oldest
// one against a different competitor and pairs the two into a competition.
// Finding no partner is not an error; the booking simply stays accepted and
// unmatched until a later acceptance pairs it.
func (s *BookingService) tryPair(ctx context.Context, booking *entity.Booking) {
	candidates, err := s.repo.ListUnmatchedAccepted(ctx, booking.OrganizerID, booking.ID)
	if err != nil {
		logger.Error("BookingService:tryPair:ListCandidates:Error", "error", err, "booking_id", booking.ID)
		return
	}

	for i := range candidates {
		other := &candidates[i]
		if other.CompetitorID == booking.CompetitorID {
			continue
		}

		comp := compEntity.NewFromPairing(
			booking.CompetitorID,
			other.CompetitorID,
			booking.OrganizerID,
			booking.Date,
			other.Date,
			s.now(),
		)
		if err := s.repo.CommitPairing(ctx, comp, booking.ID, other.ID); err != nil {
			if errors.Is(err, repository.ErrPairingConflict) {
				// Lost the race for this candidate; try the next oldest.
				continue
			}
			logger.Error("BookingService:tryPair:Commit:Error", "error", err, "booking_id", booking.ID)
			return
		}

		booking.Matched = true
		booking.CompetitionID = &comp.ID

		logger.Info("BookingService:tryPair:Paired",
			"competition_id", comp.ID,
			"booking_id", booking.ID,
			"partner_booking_id", other.ID,
			"organizer_id", booking.OrganizerID,
		)
		s.notifyPaired(ctx, comp)
		return
	}
}

func (s *BookingService) notifyPaired(ctx context.Context, comp *compEntity.Competition) {
	if s.notifier == nil {
		return
	}
	for _, competitorID := range []uuid.UUID{comp.Competitor1, comp.Competitor2} {
		err := s.notifier.Notify(ctx, tasks.NotificationPayload{
			UserID:  competitorID,
			Title:   "You have been paired into a competition",
			Message: "Another team accepted a booking from the same organizer. Check your competition schedule.",
			Type:    notifEntity.TypeCompetitionPaired,
			Data: map[string]any{
				"competition_id": comp.ID.String(),
				"date":           comp.Date.Format(time.RFC3339),
			},
		})
		if err != nil {
			logger.Error("BookingService:notifyPaired:Error", "error", err, "competitor_id", competitorID)
		}
	}
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:            b.ID,
		OrganizerID:   b.OrganizerID,
		CompetitorID:  b.CompetitorID,
		Date:          b.Date,
		Amount:        b.Amount,
		Notes:         b.Notes,
		Status:        string(b.Status),
		Matched:       b.Matched,
		CompetitionID: b.CompetitionID,
		CreatedAt:     b.CreatedAt,
	}
}
