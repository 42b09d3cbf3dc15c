package domain

import (
	"time"

	"github.com/google/uuid"
)

// Variant is the size/color a participant selected.
type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// ParticipationEntry records one user's join. Entries are never deleted,
// only revoked.
type ParticipationEntry struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	UserID      string
	Variant     Variant
	JoinedAt    time.Time
	IsInitiator bool
	Revoked     bool
	RevokedAt   *time.Time
}

// JoinResult is returned by a successful join.
type JoinResult struct {
	Entry                  ParticipationEntry
	Campaign               Campaign
	NewlyReachedMilestones []Milestone
}
