package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupbuy/internal/core/domain"
)

func entry(campaignID uuid.UUID, user string, at time.Time) domain.ParticipationEntry {
	return domain.ParticipationEntry{ID: uuid.New(), CampaignID: campaignID, UserID: user, JoinedAt: at}
}

func TestLedgerAppendRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	cid := uuid.New()
	now := time.Now()

	require.NoError(t, l.Append(ctx, entry(cid, "bob", now)))
	assert.ErrorIs(t, l.Append(ctx, entry(cid, "bob", now)), domain.ErrAlreadyJoined)
	require.NoError(t, l.Append(ctx, entry(uuid.New(), "bob", now)), "other campaigns are independent")

	n, err := l.CountActive(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLedgerRevokeAllowsRejoin(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	cid := uuid.New()
	now := time.Now()

	first := entry(cid, "bob", now)
	require.NoError(t, l.Append(ctx, first))

	revoked, err := l.Revoke(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, revoked.Revoked)
	require.NotNil(t, revoked.RevokedAt)

	again, err := l.Revoke(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, revoked.RevokedAt, again.RevokedAt, "second revoke is a no-op")

	n, err := l.CountActive(ctx, cid)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, l.Append(ctx, entry(cid, "bob", now.Add(time.Minute))))
	entries, err := l.ListByCampaign(ctx, cid)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Revoked)
	assert.False(t, entries[1].Revoked)

	_, err = l.Revoke(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerConcurrentAppendSameUser(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	cid := uuid.New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Append(ctx, entry(cid, "carol", time.Now())) == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	n, err := l.CountActive(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
