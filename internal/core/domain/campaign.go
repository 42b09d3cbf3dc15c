package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CampaignType selects the default window and discount curve of a campaign.
// It has no other effect on the engine.
type CampaignType string

const (
	TypeStandard  CampaignType = "standard"
	TypeFlash     CampaignType = "flash"
	TypeExclusive CampaignType = "exclusive"
)

// Valid reports whether t is a known campaign type.
func (t CampaignType) Valid() bool {
	switch t {
	case TypeStandard, TypeFlash, TypeExclusive:
		return true
	default:
		return false
	}
}

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusActive  Status = "active"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusExpired Status = "expired"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusActive, StatusSuccess, StatusFailed, StatusExpired:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusExpired
}

// AcceptsJoins reports whether a campaign in status s may gain participants.
func (s Status) AcceptsJoins() bool {
	return s == StatusWaiting || s == StatusActive
}

// ProductRef identifies the pooled item together with a display snapshot
// taken at creation time.
type ProductRef struct {
	ID       string
	Name     string
	ImageURL string
}

// Campaign is one collective-purchase wish.
// Prices are stored in integer minor units (e.g. cents).
type Campaign struct {
	ID            uuid.UUID
	Product       ProductRef
	Type          CampaignType
	Status        Status
	TargetCount   int
	CurrentCount  int // mirror of the ledger's active entries
	OriginalPrice int64
	GroupPrice    int64
	Milestones    []Milestone
	WindowStart   time.Time
	WindowEnd     time.Time
	CreatedBy     string
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProgressPercent is min(100, round(current/target*100)). It is always
// derived and never stored.
func (c Campaign) ProgressPercent() int {
	if c.TargetCount <= 0 {
		return 0
	}
	p := int(math.Round(float64(c.CurrentCount) / float64(c.TargetCount) * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// SavingsPercent is the rounded discount of the group price against the
// original price.
func (c Campaign) SavingsPercent() int {
	return savingsPercent(c.OriginalPrice, c.GroupPrice)
}

// Remaining returns the time left until the window closes, never negative.
func (c Campaign) Remaining(now time.Time) time.Duration {
	if d := c.WindowEnd.Sub(now); d > 0 {
		return d
	}
	return 0
}

// InWindow reports whether now lies within [WindowStart, WindowEnd].
func (c Campaign) InWindow(now time.Time) bool {
	return !now.Before(c.WindowStart) && !now.After(c.WindowEnd)
}

// WindowElapsed reports whether now is past WindowEnd.
func (c Campaign) WindowElapsed(now time.Time) bool {
	return now.After(c.WindowEnd)
}

// Clone returns a copy that shares no mutable state with c.
func (c Campaign) Clone() Campaign {
	out := c
	out.Milestones = cloneMilestones(c.Milestones)
	return out
}

func savingsPercent(original, group int64) int {
	if original <= 0 || group >= original {
		return 0
	}
	return int(math.Round(float64(original-group) / float64(original) * 100))
}
