package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMilestones(t *testing.T) {
	tests := []struct {
		name    string
		ms      []Milestone
		target  int
		wantErr bool
	}{
		{"single at target", []Milestone{{ThresholdCount: 5, DiscountPercent: 30}}, 5, false},
		{"increasing", []Milestone{{ThresholdCount: 2, DiscountPercent: 10}, {ThresholdCount: 5, DiscountPercent: 30}}, 5, false},
		{"empty", nil, 5, true},
		{"last below target", []Milestone{{ThresholdCount: 4, DiscountPercent: 30}}, 5, true},
		{"not increasing", []Milestone{{ThresholdCount: 3}, {ThresholdCount: 3}, {ThresholdCount: 5}}, 5, true},
		{"zero threshold", []Milestone{{ThresholdCount: 0}, {ThresholdCount: 5}}, 5, true},
		{"initiator threshold", []Milestone{{ThresholdCount: 1}, {ThresholdCount: 5}}, 5, true},
		{"discount over 100", []Milestone{{ThresholdCount: 5, DiscountPercent: 101}}, 5, true},
		{"negative discount", []Milestone{{ThresholdCount: 5, DiscountPercent: -1}}, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMilestones(tt.ms, tt.target)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "milestones", verr.Field)
		})
	}
}

func TestDefaultMilestones(t *testing.T) {
	thresholds := func(ms []Milestone) []int {
		out := make([]int, len(ms))
		for i, m := range ms {
			out[i] = m.ThresholdCount
		}
		return out
	}

	standard := DefaultMilestones(TypeStandard, 10, 40)
	assert.Equal(t, []int{5, 10}, thresholds(standard))
	assert.Equal(t, 20, standard[0].DiscountPercent)
	assert.Equal(t, 40, standard[1].DiscountPercent)

	assert.Equal(t, []int{10}, thresholds(DefaultMilestones(TypeFlash, 10, 40)))
	assert.Equal(t, []int{3, 5, 10}, thresholds(DefaultMilestones(TypeExclusive, 10, 40)))

	// small targets collapse duplicate thresholds
	assert.Equal(t, []int{2}, thresholds(DefaultMilestones(TypeExclusive, 2, 40)))
	assert.Equal(t, []int{2, 4}, thresholds(DefaultMilestones(TypeExclusive, 4, 40)))

	for _, typ := range []CampaignType{TypeStandard, TypeFlash, TypeExclusive} {
		for target := 2; target <= 12; target++ {
			require.NoError(t, ValidateMilestones(DefaultMilestones(typ, target, 25), target), "%s/%d", typ, target)
		}
	}
}
