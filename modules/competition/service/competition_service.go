package service

import (
	"context"

	apperrors "utsav-api/core/errors"
	"utsav-api/core/logger"
	"utsav-api/modules/competition/dto"
	"utsav-api/modules/competition/entity"
	"utsav-api/modules/competition/repository"

	"github.com/google/uuid"
)

type CompetitionService struct {
	repo repository.CompetitionRepositoryInterface
}

func NewCompetitionService(repo repository.CompetitionRepositoryInterface) *CompetitionService {
	return &CompetitionService{repo: repo}
}

func (s *CompetitionService) List(ctx context.Context, organizerID *uuid.UUID) ([]dto.CompetitionResponse, *apperrors.AppError) {
	rows, err := s.repo.List(ctx, organizerID)
	if err != nil {
		return nil, apperrors.Internal("failed to list competitions", err)
	}

	out := make([]dto.CompetitionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toCompetitionResponse(&rows[i]))
	}
	return out, nil
}

// SetWinner records the winner and prize, completing the competition. The
// winner must be one of the two paired competitors. Calling it again simply
// overwrites the previous result.
func (s *CompetitionService) SetWinner(ctx context.Context, id uuid.UUID, req *dto.SetWinnerRequest) (*dto.CompetitionResponse, *apperrors.AppError) {
	winnerID, err := uuid.Parse(req.WinnerID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid winnerId")
	}

	comp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to get competition", err)
	}
	if comp == nil {
		return nil, apperrors.NotFound("competition not found")
	}
	if !comp.HasCompetitor(winnerID) {
		return nil, apperrors.InvalidInput("winner must be one of the paired competitors")
	}

	prize := req.Prize
	if prize < 0 {
		prize = 0
	}

	if err := s.repo.SetWinner(ctx, id, winnerID, prize); err != nil {
		return nil, apperrors.Internal("failed to set winner", err)
	}

	logger.Info("CompetitionService:SetWinner:Success",
		"competition_id", id,
		"winner_id", winnerID,
		"prize", prize,
	)

	comp.Winner = &winnerID
	comp.Prize = prize
	comp.Status = entity.CompetitionStatusCompleted
	return toCompetitionResponsePlain(comp), nil
}

func toCompetitionResponse(row *repository.CompetitionRow) dto.CompetitionResponse {
	return dto.CompetitionResponse{
		ID: row.ID,
		Competitor1: dto.CompetitorSummary{
			ID:    row.Competitor1,
			Name:  row.Competitor1Name,
			Email: row.Competitor1Email,
		},
		Competitor2: dto.CompetitorSummary{
			ID:    row.Competitor2,
			Name:  row.Competitor2Name,
			Email: row.Competitor2Email,
		},
		OrganizerID: row.OrganizerID,
		Date:        row.Date,
		Location:    row.Location,
		Status:      string(row.Status),
		Winner:      row.Winner,
		Prize:       row.Prize,
		CreatedAt:   row.CreatedAt,
	}
}

func toCompetitionResponsePlain(comp *entity.Competition) *dto.CompetitionResponse {
	return &dto.CompetitionResponse{
		ID:          comp.ID,
		Competitor1: dto.CompetitorSummary{ID: comp.Competitor1},
		Competitor2: dto.CompetitorSummary{ID: comp.Competitor2},
		OrganizerID: comp.OrganizerID,
		Date:        comp.Date,
		Location:    comp.Location,
		Status:      string(comp.Status),
		Winner:      comp.Winner,
		Prize:       comp.Prize,
		CreatedAt:   comp.CreatedAt,
	}
}
