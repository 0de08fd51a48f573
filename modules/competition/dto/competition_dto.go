package dto

import (
	"time"

	"github.com/google/uuid"
)

type SetWinnerRequest struct {
	WinnerID string  `json:"winnerId"`
	Prize    float64 `json:"prize"`
}

// CompetitorSummary is the populated view of a paired competitor.
type CompetitorSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type CompetitionResponse struct {
	ID          uuid.UUID         `json:"id"`
	Competitor1 CompetitorSummary `json:"competitor1"`
	Competitor2 CompetitorSummary `json:"competitor2"`
	OrganizerID uuid.UUID         `json:"organizer_id"`
	Date        time.Time         `json:"date"`
	Location    string            `json:"location"`
	Status      string            `json:"status"`
	Winner      *uuid.UUID        `json:"winner,omitempty"`
	Prize       float64           `json:"prize"`
	CreatedAt   time.Time         `json:"created_at"`
}
