package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default windows per campaign type when the creator leaves WindowEnd unset.
var defaultWindows = map[CampaignType]time.Duration{
	TypeStandard:  7 * 24 * time.Hour,
	TypeFlash:     48 * time.Hour,
	TypeExclusive: 14 * 24 * time.Hour,
}

// DefaultWindow returns the default campaign duration for t.
func DefaultWindow(t CampaignType) time.Duration {
	if d, ok := defaultWindows[t]; ok {
		return d
	}
	return defaultWindows[TypeStandard]
}

// CampaignSpec is the input for creating a campaign. The creator is joined
// as the first participant with InitiatorVariant.
type CampaignSpec struct {
	Product          ProductRef
	Type             CampaignType
	TargetCount      int
	OriginalPrice    int64
	GroupPrice       int64
	Milestones       []Milestone
	WindowStart      time.Time
	WindowEnd        time.Time
	CreatedBy        string
	InitiatorVariant Variant
}

// Build validates the spec, fills defaults and returns a new waiting
// campaign with no participants counted yet.
func (s CampaignSpec) Build(now time.Time) (Campaign, error) {
	if strings.TrimSpace(s.Product.ID) == "" {
		return Campaign{}, &ValidationError{Field: "product.id", Message: "is required"}
	}
	if strings.TrimSpace(s.Product.Name) == "" {
		return Campaign{}, &ValidationError{Field: "product.name", Message: "is required"}
	}
	if strings.TrimSpace(s.CreatedBy) == "" {
		return Campaign{}, &ValidationError{Field: "created_by", Message: "is required"}
	}
	if s.Type == "" {
		s.Type = TypeStandard
	}
	if !s.Type.Valid() {
		return Campaign{}, &ValidationError{Field: "type", Message: "unknown campaign type"}
	}
	if s.TargetCount < 2 {
		return Campaign{}, &ValidationError{Field: "target_count", Message: "must be at least 2"}
	}
	if s.OriginalPrice <= 0 || s.GroupPrice <= 0 {
		return Campaign{}, &ValidationError{Field: "price", Message: "prices must be positive"}
	}
	if s.GroupPrice > s.OriginalPrice {
		return Campaign{}, &ValidationError{Field: "group_price", Message: "must not exceed original_price"}
	}

	start := s.WindowStart
	if start.IsZero() {
		start = now
	}
	end := s.WindowEnd
	if end.IsZero() {
		end = start.Add(DefaultWindow(s.Type))
	}
	if !end.After(start) {
		return Campaign{}, &ValidationError{Field: "window_end", Message: "must be after window_start"}
	}

	milestones := cloneMilestones(s.Milestones)
	if len(milestones) == 0 {
		milestones = DefaultMilestones(s.Type, s.TargetCount, savingsPercent(s.OriginalPrice, s.GroupPrice))
	}
	for i := range milestones {
		milestones[i].Reached = false
		milestones[i].ReachedAt = nil
	}
	if err := ValidateMilestones(milestones, s.TargetCount); err != nil {
		return Campaign{}, err
	}

	return Campaign{
		ID:            uuid.New(),
		Product:       s.Product,
		Type:          s.Type,
		Status:        StatusWaiting,
		TargetCount:   s.TargetCount,
		OriginalPrice: s.OriginalPrice,
		GroupPrice:    s.GroupPrice,
		Milestones:    milestones,
		WindowStart:   start.UTC(),
		WindowEnd:     end.UTC(),
		CreatedBy:     s.CreatedBy,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}, nil
}
