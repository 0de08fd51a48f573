package entity

import (
	"time"

	"utsav-api/core/entity"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleOrganizer   Role = "organizer"
	RoleContributor Role = "contributor"
	RoleUser        Role = "user"
	RoleParticipant Role = "participant"
)

type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusRejected AccountStatus = "rejected"
)

type CompetitionType string

const (
	CompetitionTypeFood  CompetitionType = "food"
	CompetitionTypeDance CompetitionType = "dance"
	CompetitionTypeMusic CompetitionType = "music"
	CompetitionTypeArt   CompetitionType = "art"
	CompetitionTypeOther CompetitionType = "other"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleContributor, RoleUser, RoleParticipant:
		return true
	}
	return false
}

func ValidCompetitionType(t CompetitionType) bool {
	switch t {
	case CompetitionTypeFood, CompetitionTypeDance, CompetitionTypeMusic, CompetitionTypeArt, CompetitionTypeOther:
		return true
	}
	return false
}

type User struct {
	Name            string           `db:"name" json:"name"`
	Email           string           `db:"email" json:"email"`
	Password        string           `db:"password" json:"-"`
	Role            Role             `db:"role" json:"role"`
	PhotoURL        string           `db:"photo_url" json:"photo_url"`
	CompetitionType *CompetitionType `db:"competition_type" json:"competition_type"`
	TeamName        string           `db:"team_name" json:"team_name"`
	Status          AccountStatus    `db:"status" json:"status"`
	ApprovedAt      *time.Time       `db:"approved_at" json:"approved_at"`
	RejectedAt      *time.Time       `db:"rejected_at" json:"rejected_at"`
	entity.BaseEntity
}

// DefaultStatus mirrors the signup policy: organizers wait for admin
// approval, everyone else is usable immediately.
func DefaultStatus(role Role) AccountStatus {
	if role == RoleOrganizer {
		return AccountStatusPending
	}
	return AccountStatusApproved
}

type PaginatedUserEntity = entity.Pagination[User]
