package entity

import (
	"time"

	"utsav-api/core/entity"

	"github.com/google/uuid"
)

type CompetitionStatus string

const (
	CompetitionStatusPending    CompetitionStatus = "pending"
	CompetitionStatusInProgress CompetitionStatus = "in_progress"
	CompetitionStatusCompleted  CompetitionStatus = "completed"
)

type Competition struct {
	Competitor1 uuid.UUID         `db:"competitor1" json:"competitor1"`
	Competitor2 uuid.UUID         `db:"competitor2" json:"competitor2"`
	OrganizerID uuid.UUID         `db:"organizer_id" json:"organizer_id"`
	Date        time.Time         `db:"date" json:"date"`
	Location    string            `db:"location" json:"location"`
	Status      CompetitionStatus `db:"status" json:"status"`
	Winner      *uuid.UUID        `db:"winner" json:"winner"`
	Prize       float64           `db:"prize" json:"prize"`
	entity.BaseEntity
}

// HasCompetitor reports whether id is one of the two paired competitors.
func (c *Competition) HasCompetitor(id uuid.UUID) bool {
	return c.Competitor1 == id || c.Competitor2 == id
}

// NewFromPairing builds the competition produced when an accepted booking is
// paired with an earlier accepted booking of the same organizer. The paired
// date falls back from the accepting booking's date to the partner's, then
// to the current time.
func NewFromPairing(competitor1, competitor2, organizerID uuid.UUID, date1, date2 time.Time, now time.Time) *Competition {
	date := date1
	if date.IsZero() {
		date = date2
	}
	if date.IsZero() {
		date = now
	}
	return &Competition{
		Competitor1: competitor1,
		Competitor2: competitor2,
		OrganizerID: organizerID,
		Date:        date,
		Status:      CompetitionStatusPending,
		Prize:       0,
	}
}
