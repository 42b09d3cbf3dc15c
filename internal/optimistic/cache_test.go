package optimistic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupbuy/internal/core/domain"
)

func cachedCampaign(current, target int) domain.Campaign {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return domain.Campaign{
		ID:           uuid.New(),
		Status:       domain.StatusActive,
		TargetCount:  target,
		CurrentCount: current,
		Milestones:   []domain.Milestone{{ThresholdCount: target, DiscountPercent: 25}},
		WindowStart:  now,
		WindowEnd:    now.Add(time.Hour),
		Version:      4,
	}
}

func TestApplyOptimistic(t *testing.T) {
	c := New()
	camp := cachedCampaign(9, 10)
	require.NoError(t, c.Put(camp))

	snap, err := c.ApplyOptimistic(camp.ID)
	require.NoError(t, err)
	assert.Equal(t, camp, snap.Campaign)

	got, pending, err := c.Get(camp.ID)
	require.NoError(t, err)
	assert.True(t, pending)
	assert.Equal(t, 10, got.CurrentCount)
	assert.Equal(t, 100, got.ProgressPercent())
	assert.Equal(t, domain.StatusSuccess, got.Status)

	_, err = c.ApplyOptimistic(camp.ID)
	assert.ErrorIs(t, err, ErrPending)
	assert.ErrorIs(t, c.Put(camp), ErrPending)
}

func TestApplyOptimisticRejects(t *testing.T) {
	c := New()
	_, err := c.ApplyOptimistic(uuid.New())
	assert.ErrorIs(t, err, ErrNotCached)

	closed := cachedCampaign(3, 10)
	closed.Status = domain.StatusExpired
	require.NoError(t, c.Put(closed))
	_, err = c.ApplyOptimistic(closed.ID)
	assert.ErrorIs(t, err, domain.ErrCampaignClosed)
}

func TestJoinRollsBackOnFailure(t *testing.T) {
	c := New()
	camp := cachedCampaign(3, 10)
	require.NoError(t, c.Put(camp))

	j := JoinerFunc(func(context.Context, uuid.UUID, string, domain.Variant) (domain.JoinResult, error) {
		mid, pending, err := c.Get(camp.ID)
		require.NoError(t, err)
		assert.True(t, pending)
		assert.Equal(t, 4, mid.CurrentCount)

		_, err = c.ApplyOptimistic(camp.ID)
		assert.ErrorIs(t, err, ErrPending, "a second join is blocked until the first settles")
		return domain.JoinResult{}, domain.ErrWindowClosed
	})

	_, err := c.Join(context.Background(), j, camp.ID, "bob", domain.Variant{})
	require.ErrorIs(t, err, domain.ErrWindowClosed)

	got, pending, err := c.Get(camp.ID)
	require.NoError(t, err)
	assert.False(t, pending)
	assert.Equal(t, camp.CurrentCount, got.CurrentCount)
	assert.Equal(t, camp.Status, got.Status)
	assert.Equal(t, camp, got)
}

func TestJoinReconcilesWithServerState(t *testing.T) {
	c := New()
	camp := cachedCampaign(3, 10)
	require.NoError(t, c.Put(camp))

	server := camp.Clone()
	server.CurrentCount = 6 // others joined meanwhile
	server.Version = 9
	j := JoinerFunc(func(context.Context, uuid.UUID, string, domain.Variant) (domain.JoinResult, error) {
		return domain.JoinResult{Campaign: server}, nil
	})

	_, err := c.Join(context.Background(), j, camp.ID, "bob", domain.Variant{})
	require.NoError(t, err)

	got, pending, err := c.Get(camp.ID)
	require.NoError(t, err)
	assert.False(t, pending)
	assert.Equal(t, server, got)

	_, err = c.ApplyOptimistic(camp.ID)
	assert.NoError(t, err, "the guard lifts after reconciliation")
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	c := New()
	camp := cachedCampaign(1, 2)

	var counts []int
	c.Subscribe(func(got domain.Campaign) { counts = append(counts, got.CurrentCount) })

	require.NoError(t, c.Put(camp))
	j := JoinerFunc(func(context.Context, uuid.UUID, string, domain.Variant) (domain.JoinResult, error) {
		return domain.JoinResult{}, errors.New("network unreachable")
	})
	_, err := c.Join(context.Background(), j, camp.ID, "bob", domain.Variant{})
	require.Error(t, err)

	assert.Equal(t, []int{1, 2, 1}, counts)
}
