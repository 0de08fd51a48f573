package service

import (
	"context"
	"testing"
	"time"

	apperrors "utsav-api/core/errors"
	"utsav-api/modules/competition/dto"
	"utsav-api/modules/competition/entity"
	"utsav-api/modules/competition/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompetitionRepo struct {
	competitions map[uuid.UUID]*entity.Competition
	rows         []repository.CompetitionRow
}

func (f *fakeCompetitionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Competition, error) {
	c, ok := f.competitions[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCompetitionRepo) List(ctx context.Context, organizerID *uuid.UUID) ([]repository.CompetitionRow, error) {
	return f.rows, nil
}

func (f *fakeCompetitionRepo) SetWinner(ctx context.Context, id, winnerID uuid.UUID, prize float64) error {
	c := f.competitions[id]
	c.Winner = &winnerID
	c.Prize = prize
	c.Status = entity.CompetitionStatusCompleted
	return nil
}

func newCompetitionFixture() (*CompetitionService, *fakeCompetitionRepo, *entity.Competition) {
	comp := entity.NewFromPairing(uuid.New(), uuid.New(), uuid.New(),
		time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), time.Time{}, time.Now())
	comp.ID = uuid.New()

	repo := &fakeCompetitionRepo{competitions: map[uuid.UUID]*entity.Competition{comp.ID: comp}}
	return NewCompetitionService(repo), repo, comp
}

func TestSetWinner(t *testing.T) {
	svc, repo, comp := newCompetitionFixture()

	resp, appErr := svc.SetWinner(context.Background(), comp.ID, &dto.SetWinnerRequest{
		WinnerID: comp.Competitor1.String(),
		Prize:    5000,
	})
	require.Nil(t, appErr)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 5000.0, resp.Prize)
	require.NotNil(t, resp.Winner)
	assert.Equal(t, comp.Competitor1, *resp.Winner)

	stored := repo.competitions[comp.ID]
	assert.Equal(t, entity.CompetitionStatusCompleted, stored.Status)
}

func TestSetWinnerOverwrites(t *testing.T) {
	svc, repo, comp := newCompetitionFixture()
	ctx := context.Background()

	_, appErr := svc.SetWinner(ctx, comp.ID, &dto.SetWinnerRequest{WinnerID: comp.Competitor1.String(), Prize: 100})
	require.Nil(t, appErr)

	resp, appErr := svc.SetWinner(ctx, comp.ID, &dto.SetWinnerRequest{WinnerID: comp.Competitor2.String(), Prize: 200})
	require.Nil(t, appErr)
	assert.Equal(t, comp.Competitor2, *resp.Winner)
	assert.Equal(t, 200.0, resp.Prize)
	assert.Equal(t, comp.Competitor2, *repo.competitions[comp.ID].Winner)
}

func TestSetWinnerMustBeACompetitor(t *testing.T) {
	svc, _, comp := newCompetitionFixture()

	_, appErr := svc.SetWinner(context.Background(), comp.ID, &dto.SetWinnerRequest{
		WinnerID: uuid.New().String(),
		Prize:    1000,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestSetWinnerNegativePrizeClampedToZero(t *testing.T) {
	svc, _, comp := newCompetitionFixture()

	resp, appErr := svc.SetWinner(context.Background(), comp.ID, &dto.SetWinnerRequest{
		WinnerID: comp.Competitor2.String(),
		Prize:    -50,
	})
	require.Nil(t, appErr)
	assert.Zero(t, resp.Prize)
}

func TestSetWinnerUnknownCompetition(t *testing.T) {
	svc, _, comp := newCompetitionFixture()

	_, appErr := svc.SetWinner(context.Background(), uuid.New(), &dto.SetWinnerRequest{
		WinnerID: comp.Competitor1.String(),
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestListMapsCompetitorDetails(t *testing.T) {
	svc, repo, comp := newCompetitionFixture()

	row := repository.CompetitionRow{Competition: *comp}
	row.Competitor1Name = "Team Alpha"
	row.Competitor1Email = "alpha@example.com"
	row.Competitor2Name = "Team Beta"
	row.Competitor2Email = "beta@example.com"
	repo.rows = []repository.CompetitionRow{row}

	result, appErr := svc.List(context.Background(), nil)
	require.Nil(t, appErr)
	require.Len(t, result, 1)
	assert.Equal(t, "Team Alpha", result[0].Competitor1.Name)
	assert.Equal(t, "beta@example.com", result[0].Competitor2.Email)
	assert.Equal(t, comp.OrganizerID, result[0].OrganizerID)
}

func TestNewFromPairingDateFallback(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)
	d1 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)

	comp := entity.NewFromPairing(uuid.New(), uuid.New(), uuid.New(), d1, d2, now)
	assert.Equal(t, d1, comp.Date)

	comp = entity.NewFromPairing(uuid.New(), uuid.New(), uuid.New(), time.Time{}, d2, now)
	assert.Equal(t, d2, comp.Date)

	comp = entity.NewFromPairing(uuid.New(), uuid.New(), uuid.New(), time.Time{}, time.Time{}, now)
	assert.Equal(t, now, comp.Date)
}
