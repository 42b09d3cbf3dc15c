package domain

import "time"

// Milestone is a participant-count threshold unlocking a discount tier.
// Once Reached it stays reached.
type Milestone struct {
	ThresholdCount  int        `json:"threshold_count"`
	DiscountPercent int        `json:"discount_percent"`
	Reached         bool       `json:"reached"`
	ReachedAt       *time.Time `json:"reached_at,omitempty"`
}

func cloneMilestones(in []Milestone) []Milestone {
	if in == nil {
		return nil
	}
	out := make([]Milestone, len(in))
	for i, m := range in {
		out[i] = m
		if m.ReachedAt != nil {
			at := *m.ReachedAt
			out[i].ReachedAt = &at
		}
	}
	return out
}

// ValidateMilestones checks that thresholds are strictly increasing from 2,
// that the last one equals target and that discounts stay within 0..100. A
// threshold of 1 would be met by the initiator alone.
func ValidateMilestones(ms []Milestone, target int) error {
	if len(ms) == 0 {
		return &ValidationError{Field: "milestones", Message: "at least one milestone is required"}
	}
	prev := 1
	for _, m := range ms {
		if m.ThresholdCount <= prev {
			return &ValidationError{Field: "milestones", Message: "thresholds must be at least 2 and strictly increasing"}
		}
		if m.DiscountPercent < 0 || m.DiscountPercent > 100 {
			return &ValidationError{Field: "milestones", Message: "discount_percent must be between 0 and 100"}
		}
		prev = m.ThresholdCount
	}
	if prev != target {
		return &ValidationError{Field: "milestones", Message: "last threshold must equal target_count"}
	}
	return nil
}

// curvePoint is a fraction of the target with a share of the savings.
type curvePoint struct {
	fraction float64
	share    float64
}

var defaultCurves = map[CampaignType][]curvePoint{
	TypeStandard:  {{0.5, 0.5}, {1, 1}},
	TypeFlash:     {{1, 1}},
	TypeExclusive: {{0.25, 0.25}, {0.5, 0.5}, {1, 1}},
}

// DefaultMilestones builds the type's discount curve for a campaign with the
// given target and savings.
func DefaultMilestones(t CampaignType, target, savings int) []Milestone {
	curve, ok := defaultCurves[t]
	if !ok {
		curve = defaultCurves[TypeStandard]
	}
	out := make([]Milestone, 0, len(curve))
	prev := 1
	for _, p := range curve {
		threshold := ceilFraction(target, p.fraction)
		if p.fraction >= 1 {
			threshold = target
		}
		if threshold <= prev || (threshold >= target && p.fraction < 1) {
			continue
		}
		out = append(out, Milestone{
			ThresholdCount:  threshold,
			DiscountPercent: int(float64(savings)*p.share + 0.5),
		})
		prev = threshold
	}
	return out
}

func ceilFraction(n int, f float64) int {
	v := float64(n) * f
	c := int(v)
	if float64(c) < v {
		c++
	}
	return c
}
