package service

import (
	"context"
	"sort"
	"testing"
	"time"

	apperrors "utsav-api/core/errors"
	"utsav-api/core/tasks"
	"utsav-api/modules/booking/dto"
	"utsav-api/modules/booking/entity"
	"utsav-api/modules/booking/repository"
	compEntity "utsav-api/modules/competition/entity"
	userEntity "utsav-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings     map[uuid.UUID]*entity.Booking
	competitions []*compEntity.Competition
	seq          int

	// partner booking IDs whose first CommitPairing attempt loses the race
	conflictOnce map[uuid.UUID]bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:     map[uuid.UUID]*entity.Booking{},
		conflictOnce: map[uuid.UUID]bool{},
	}
}

func (f *fakeBookingRepo) add(organizerID, competitorID uuid.UUID, status entity.BookingStatus, date time.Time) *entity.Booking {
	f.seq++
	b := &entity.Booking{
		OrganizerID:  organizerID,
		CompetitorID: competitorID,
		Date:         date,
		Status:       status,
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
	f.bookings[b.ID] = b
	return b
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	f.seq++
	b.ID = uuid.New()
	b.CreatedAt = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, organizerID, competitorID *uuid.UUID) ([]entity.Booking, error) {
	out := []entity.Booking{}
	for _, b := range f.bookings {
		if organizerID != nil && b.OrganizerID != *organizerID {
			continue
		}
		if competitorID != nil && b.CompetitorID != *competitorID {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookingRepo) HasActiveForCompetitorBetween(ctx context.Context, competitorID uuid.UUID, dayStart, dayEnd time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.CompetitorID != competitorID {
			continue
		}
		if b.Status != entity.BookingStatusPending && b.Status != entity.BookingStatusAccepted {
			continue
		}
		if !b.Date.Before(dayStart) && !b.Date.After(dayEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) ListUnmatchedAccepted(ctx context.Context, organizerID, excludeID uuid.UUID) ([]entity.Booking, error) {
	out := []entity.Booking{}
	for _, b := range f.bookings {
		if b.ID == excludeID || b.OrganizerID != organizerID || b.Matched || b.Status != entity.BookingStatusAccepted {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookingRepo) CommitPairing(ctx context.Context, comp *compEntity.Competition, bookingID, partnerID uuid.UUID) error {
	if f.conflictOnce[partnerID] {
		delete(f.conflictOnce, partnerID)
		return repository.ErrPairingConflict
	}
	b, other := f.bookings[bookingID], f.bookings[partnerID]
	if b.Matched || other.Matched {
		return repository.ErrPairingConflict
	}
	comp.ID = uuid.New()
	f.competitions = append(f.competitions, comp)
	for _, booking := range []*entity.Booking{b, other} {
		booking.Matched = true
		booking.CompetitionID = &comp.ID
	}
	return nil
}

type fakeUserDirectory struct {
	known map[uuid.UUID]bool
}

func (f *fakeUserDirectory) ExistsWithRole(ctx context.Context, id uuid.UUID, roles ...userEntity.Role) (bool, error) {
	return f.known[id], nil
}

type fakeNotifier struct {
	payloads []tasks.NotificationPayload
}

func (f *fakeNotifier) Notify(ctx context.Context, p tasks.NotificationPayload) error {
	f.payloads = append(f.payloads, p)
	return nil
}

func newBookingFixture(userIDs ...uuid.UUID) (*BookingService, *fakeBookingRepo, *fakeNotifier) {
	repo := newFakeBookingRepo()
	users := &fakeUserDirectory{known: map[uuid.UUID]bool{}}
	for _, id := range userIDs {
		users.known[id] = true
	}
	notifier := &fakeNotifier{}
	svc := NewBookingService(repo, users, notifier)
	svc.now = func() time.Time { return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC) }
	return svc, repo, notifier
}

func TestCreateBooking(t *testing.T) {
	organizer, competitor := uuid.New(), uuid.New()
	svc, _, _ := newBookingFixture(organizer, competitor)

	resp, appErr := svc.Create(context.Background(), &dto.CreateBookingRequest{
		OrganizerID:  organizer.String(),
		CompetitorID: competitor.String(),
		Date:         "2025-08-20",
		Amount:       500,
		Notes:        "morning slot",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
	assert.False(t, resp.Matched)
	assert.Equal(t, 500.0, resp.Amount)
}

func TestCreateBookingInvalidDate(t *testing.T) {
	organizer, competitor := uuid.New(), uuid.New()
	svc, _, _ := newBookingFixture(organizer, competitor)

	_, appErr := svc.Create(context.Background(), &dto.CreateBookingRequest{
		OrganizerID:  organizer.String(),
		CompetitorID: competitor.String(),
		Date:         "not-a-date",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestCreateBookingUnknownCompetitor(t *testing.T) {
	organizer := uuid.New()
	svc, _, _ := newBookingFixture(organizer)

	_, appErr := svc.Create(context.Background(), &dto.CreateBookingRequest{
		OrganizerID:  organizer.String(),
		CompetitorID: uuid.New().String(),
		Date:         "2025-08-20",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestCreateBookingSameDayClash(t *testing.T) {
	organizer, competitor := uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture(organizer, competitor)

	day := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	repo.add(organizer, competitor, entity.BookingStatusPending, day)

	_, appErr := svc.Create(context.Background(), &dto.CreateBookingRequest{
		OrganizerID:  organizer.String(),
		CompetitorID: competitor.String(),
		Date:         "2025-08-20T18:00:00Z",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
}

func TestCreateBookingRejectedDoesNotClash(t *testing.T) {
	organizer, competitor := uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture(organizer, competitor)

	day := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	repo.add(organizer, competitor, entity.BookingStatusRejected, day)

	_, appErr := svc.Create(context.Background(), &dto.CreateBookingRequest{
		OrganizerID:  organizer.String(),
		CompetitorID: competitor.String(),
		Date:         "2025-08-20",
	})
	assert.Nil(t, appErr)
}

func TestSetStatusInvalidValue(t *testing.T) {
	svc, repo, _ := newBookingFixture()
	b := repo.add(uuid.New(), uuid.New(), entity.BookingStatusPending, time.Now())

	_, appErr := svc.SetStatus(context.Background(), b.ID, "cancelled")
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestSetStatusUnknownBooking(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, appErr := svc.SetStatus(context.Background(), uuid.New(), "accepted")
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestAcceptingSecondBookingPairsBoth(t *testing.T) {
	organizer, c1, c2 := uuid.New(), uuid.New(), uuid.New()
	svc, repo, notifier := newBookingFixture(organizer, c1, c2)

	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	b1 := repo.add(organizer, c1, entity.BookingStatusPending, day)
	b2 := repo.add(organizer, c2, entity.BookingStatusPending, day)

	// First acceptance has no partner yet.
	resp, appErr := svc.SetStatus(context.Background(), b1.ID, "accepted")
	require.Nil(t, appErr)
	assert.False(t, resp.Matched)
	assert.Empty(t, repo.competitions)

	// Second acceptance pairs with the first.
	resp, appErr = svc.SetStatus(context.Background(), b2.ID, "accepted")
	require.Nil(t, appErr)
	assert.True(t, resp.Matched)

	require.Len(t, repo.competitions, 1)
	comp := repo.competitions[0]
	assert.True(t, comp.HasCompetitor(c1))
	assert.True(t, comp.HasCompetitor(c2))
	assert.Equal(t, organizer, comp.OrganizerID)
	assert.Equal(t, day, comp.Date)
	assert.Equal(t, compEntity.CompetitionStatusPending, comp.Status)
	assert.Zero(t, comp.Prize)

	assert.True(t, repo.bookings[b1.ID].Matched)
	assert.True(t, repo.bookings[b2.ID].Matched)
	assert.Equal(t, &comp.ID, repo.bookings[b1.ID].CompetitionID)
	assert.Equal(t, &comp.ID, repo.bookings[b2.ID].CompetitionID)

	// Both competitors are told about the pairing.
	require.Len(t, notifier.payloads, 2)
	notified := map[uuid.UUID]bool{}
	for _, p := range notifier.payloads {
		notified[p.UserID] = true
	}
	assert.True(t, notified[c1])
	assert.True(t, notified[c2])
}

func TestPairingPicksOldestCandidate(t *testing.T) {
	organizer, c1, c2, c3 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture(organizer, c1, c2, c3)

	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	oldest := repo.add(organizer, c1, entity.BookingStatusAccepted, day)
	middle := repo.add(organizer, c2, entity.BookingStatusAccepted, day)
	newest := repo.add(organizer, c3, entity.BookingStatusPending, day)

	_, appErr := svc.SetStatus(context.Background(), newest.ID, "accepted")
	require.Nil(t, appErr)

	require.Len(t, repo.competitions, 1)
	comp := repo.competitions[0]
	assert.True(t, comp.HasCompetitor(c3))
	assert.True(t, comp.HasCompetitor(c1))
	assert.True(t, repo.bookings[oldest.ID].Matched)
	assert.False(t, repo.bookings[middle.ID].Matched)
}

func TestPairingSkipsSameCompetitor(t *testing.T) {
	organizer, c1 := uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture(organizer, c1)

	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	repo.add(organizer, c1, entity.BookingStatusAccepted, day)
	b := repo.add(organizer, c1, entity.BookingStatusPending, day.Add(48*time.Hour))

	_, appErr := svc.SetStatus(context.Background(), b.ID, "accepted")
	require.Nil(t, appErr)
	assert.Empty(t, repo.competitions)
}

func TestPairingRetriesNextCandidateOnConflict(t *testing.T) {
	organizer, c1, c2, c3 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture(organizer, c1, c2, c3)

	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	oldest := repo.add(organizer, c1, entity.BookingStatusAccepted, day)
	second := repo.add(organizer, c2, entity.BookingStatusAccepted, day)
	b := repo.add(organizer, c3, entity.BookingStatusPending, day)

	// Another request wins the race for the oldest candidate.
	repo.conflictOnce[oldest.ID] = true

	_, appErr := svc.SetStatus(context.Background(), b.ID, "accepted")
	require.Nil(t, appErr)

	require.Len(t, repo.competitions, 1)
	assert.True(t, repo.competitions[0].HasCompetitor(c2))
	assert.True(t, repo.bookings[second.ID].Matched)
	assert.False(t, repo.bookings[oldest.ID].Matched)
}

func TestReacceptingMatchedBookingDoesNotRepair(t *testing.T) {
	organizer, c1, c2 := uuid.New(), uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture(organizer, c1, c2)

	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	b1 := repo.add(organizer, c1, entity.BookingStatusPending, day)
	b2 := repo.add(organizer, c2, entity.BookingStatusPending, day)

	_, appErr := svc.SetStatus(context.Background(), b1.ID, "accepted")
	require.Nil(t, appErr)
	_, appErr = svc.SetStatus(context.Background(), b2.ID, "accepted")
	require.Nil(t, appErr)
	require.Len(t, repo.competitions, 1)

	// Re-accepting a matched booking leaves the ledger unchanged.
	_, appErr = svc.SetStatus(context.Background(), b2.ID, "accepted")
	require.Nil(t, appErr)
	assert.Len(t, repo.competitions, 1)
}

func TestCompetitionDateFallsBackToPartner(t *testing.T) {
	organizer, c1, c2 := uuid.New(), uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture(organizer, c1, c2)

	partnerDay := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	repo.add(organizer, c1, entity.BookingStatusAccepted, partnerDay)
	b := repo.add(organizer, c2, entity.BookingStatusPending, time.Time{})

	_, appErr := svc.SetStatus(context.Background(), b.ID, "accepted")
	require.Nil(t, appErr)

	require.Len(t, repo.competitions, 1)
	assert.Equal(t, partnerDay, repo.competitions[0].Date)
}

func TestListBookingsFiltered(t *testing.T) {
	organizer, other, competitor := uuid.New(), uuid.New(), uuid.New()
	svc, repo, _ := newBookingFixture()

	repo.add(organizer, competitor, entity.BookingStatusPending, time.Now())
	repo.add(other, competitor, entity.BookingStatusPending, time.Now())

	result, appErr := svc.List(context.Background(), &organizer, nil)
	require.Nil(t, appErr)
	require.Len(t, result, 1)
	assert.Equal(t, organizer, result[0].OrganizerID)
}
