package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"groupbuy/internal/adapter/memory"
	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
	"groupbuy/internal/core/port/mocks"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// conflictingStore injects save conflicts in front of the memory store.
type conflictingStore struct {
	*memory.CampaignStore
	mu         sync.Mutex
	conflicts  int
	beforeSave func()
}

func (s *conflictingStore) Save(ctx context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	hook := s.beforeSave
	s.beforeSave = nil
	inject := s.conflicts > 0
	if inject {
		s.conflicts--
	}
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	if inject {
		return domain.ErrConflict
	}
	return s.CampaignStore.Save(ctx, c)
}

type fixture struct {
	uc     *WishUseCase
	store  *conflictingStore
	ledger *memory.Ledger
	clock  *clock
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		store:  &conflictingStore{CampaignStore: memory.NewCampaignStore()},
		ledger: memory.NewLedger(),
		clock:  &clock{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
	}
	opts = append([]Option{WithClock(f.clock.Now)}, opts...)
	f.uc = NewWishUseCase(f.store, f.ledger, opts...)
	return f
}

func (f *fixture) spec(target int) domain.CampaignSpec {
	return domain.CampaignSpec{
		Product:       domain.ProductRef{ID: "sku-42", Name: "Espresso machine"},
		TargetCount:   target,
		OriginalPrice: 50000,
		GroupPrice:    35000,
		CreatedBy:     "initiator",
		WindowEnd:     f.clock.Now().Add(time.Hour),
	}
}

// campaignWith creates a campaign and joins users until it holds count
// participants, the initiator included.
func (f *fixture) campaignWith(t *testing.T, target, count int) domain.Campaign {
	t.Helper()
	ctx := context.Background()
	c, err := f.uc.Create(ctx, f.spec(target))
	require.NoError(t, err)
	for i := 1; i < count; i++ {
		res, err := f.uc.Join(ctx, c.ID, fmt.Sprintf("user-%d", i), domain.Variant{})
		require.NoError(t, err)
		c = res.Campaign
	}
	return c
}

func (f *fixture) assertCountConsistent(t *testing.T, id uuid.UUID) {
	t.Helper()
	c, err := f.store.CampaignStore.Get(context.Background(), id)
	require.NoError(t, err)
	n, err := f.ledger.CountActive(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, n, c.CurrentCount, "campaign count must mirror the ledger")
}

func TestCreateAutoJoinsInitiator(t *testing.T) {
	f := newFixture(t)
	c, err := f.uc.Create(context.Background(), f.spec(5))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusWaiting, c.Status)
	assert.Equal(t, 1, c.CurrentCount)
	assert.Equal(t, 20, c.ProgressPercent())

	entries, err := f.uc.Participants(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "initiator", entries[0].UserID)
	assert.True(t, entries[0].IsInitiator)
	f.assertCountConsistent(t, c.ID)
}

func TestCreateRejectsInvalidSpec(t *testing.T) {
	f := newFixture(t)
	spec := f.spec(1)
	_, err := f.uc.Create(context.Background(), spec)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "target_count", verr.Field)
}

func TestJoinReachingTargetSucceeds(t *testing.T) {
	f := newFixture(t)
	c := f.campaignWith(t, 10, 9)
	require.Equal(t, domain.StatusActive, c.Status)

	res, err := f.uc.Join(context.Background(), c.ID, "last", domain.Variant{Size: "M"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, res.Campaign.Status)
	assert.Equal(t, 10, res.Campaign.CurrentCount)
	assert.Equal(t, 100, res.Campaign.ProgressPercent())
	last := res.Campaign.Milestones[len(res.Campaign.Milestones)-1]
	assert.Equal(t, 10, last.ThresholdCount)
	assert.True(t, last.Reached)
	require.Len(t, res.NewlyReachedMilestones, 1)
	assert.Equal(t, 10, res.NewlyReachedMilestones[0].ThresholdCount)
	assert.Equal(t, "last", res.Entry.UserID)
	f.assertCountConsistent(t, c.ID)
}

func TestJoinTwiceIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 5, 1)

	_, err := f.uc.Join(ctx, c.ID, "alice", domain.Variant{})
	require.NoError(t, err)
	_, err = f.uc.Join(ctx, c.ID, "alice", domain.Variant{})
	require.ErrorIs(t, err, domain.ErrAlreadyJoined)

	got, err := f.uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentCount)

	_, err = f.uc.Join(ctx, c.ID, "initiator", domain.Variant{})
	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)
}

func TestJoinPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown campaign", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Join(ctx, uuid.New(), "bob", domain.Variant{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("blank user", func(t *testing.T) {
		f := newFixture(t)
		c := f.campaignWith(t, 5, 1)
		_, err := f.uc.Join(ctx, c.ID, " ", domain.Variant{})
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("before window", func(t *testing.T) {
		f := newFixture(t)
		spec := f.spec(5)
		spec.WindowStart = f.clock.Now().Add(time.Hour)
		spec.WindowEnd = f.clock.Now().Add(2 * time.Hour)
		c, err := f.uc.Create(ctx, spec)
		require.NoError(t, err)
		_, err = f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
		assert.ErrorIs(t, err, domain.ErrWindowClosed)
		f.assertCountConsistent(t, c.ID)
	})

	t.Run("after window before sweep", func(t *testing.T) {
		f := newFixture(t)
		c := f.campaignWith(t, 5, 2)
		f.clock.Advance(2 * time.Hour)
		_, err := f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
		assert.ErrorIs(t, err, domain.ErrWindowClosed)
		f.assertCountConsistent(t, c.ID)
	})

	t.Run("terminal campaign", func(t *testing.T) {
		f := newFixture(t)
		c := f.campaignWith(t, 2, 2)
		require.Equal(t, domain.StatusSuccess, c.Status)
		_, err := f.uc.Join(ctx, c.ID, "late", domain.Variant{})
		assert.ErrorIs(t, err, domain.ErrCampaignClosed)

		got, err := f.uc.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, got.Status)
		assert.Equal(t, 2, got.CurrentCount)
	})
}

func TestGetExpiresElapsedCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 10, 3)
	require.Equal(t, domain.StatusActive, c.Status)

	f.clock.Advance(time.Hour + time.Second)
	got, err := f.uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, got.Status)
	assert.Equal(t, 3, got.CurrentCount)

	stored, err := f.store.CampaignStore.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, stored.Status, "check-on-read persists the transition")
}

func TestConcurrentJoinsReachTarget(t *testing.T) {
	const n = 16
	f := newFixture(t, WithMaxAttempts(n))
	c := f.campaignWith(t, n+1, 1)

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			_, err := f.uc.Join(context.Background(), c.ID, fmt.Sprintf("racer-%d", i), domain.Variant{})
			return err
		})
	}
	require.NoError(t, g.Wait())

	got, err := f.uc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, n+1, got.CurrentCount)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	f.assertCountConsistent(t, c.ID)

	entries, err := f.uc.Participants(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, entries, n+1)
}

func TestTwoRacingJoinsFromEight(t *testing.T) {
	f := newFixture(t)
	c := f.campaignWith(t, 10, 8)

	var g errgroup.Group
	for _, user := range []string{"racer-a", "racer-b"} {
		g.Go(func() error {
			_, err := f.uc.Join(context.Background(), c.ID, user, domain.Variant{})
			return err
		})
	}
	require.NoError(t, g.Wait())

	got, err := f.uc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurrentCount)
	assert.Equal(t, domain.StatusSuccess, got.Status)

	entries, err := f.uc.Participants(context.Background(), c.ID)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, e.Revoked)
	}
}

func TestJoinRetriesOnConflict(t *testing.T) {
	f := newFixture(t)
	c := f.campaignWith(t, 5, 1)
	f.store.conflicts = 2

	res, err := f.uc.Join(context.Background(), c.ID, "bob", domain.Variant{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Campaign.CurrentCount)
	f.assertCountConsistent(t, c.ID)
}

func TestJoinRetriesExhaustedSelfHeals(t *testing.T) {
	f := newFixture(t, WithMaxAttempts(2))
	ctx := context.Background()
	c := f.campaignWith(t, 2, 1)
	f.store.conflicts = 2

	_, err := f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
	require.ErrorIs(t, err, domain.ErrConcurrentUpdate)

	n, err := f.ledger.CountActive(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "the ledger entry stays as the source of truth")

	got, err := f.uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentCount)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	assert.True(t, got.Milestones[len(got.Milestones)-1].Reached)
	f.assertCountConsistent(t, c.ID)
}

func TestJoinConflictExhaustionWithMocks(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	ledger := mocks.NewMockParticipationLedger(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	c := domain.Campaign{
		ID:           uuid.New(),
		Status:       domain.StatusActive,
		TargetCount:  5,
		CurrentCount: 1,
		Milestones:   []domain.Milestone{{ThresholdCount: 5, DiscountPercent: 20}},
		WindowStart:  now.Add(-time.Hour),
		WindowEnd:    now.Add(time.Hour),
		Version:      3,
	}

	store.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Times(3)
	ledger.EXPECT().Append(mock.Anything, mock.AnythingOfType("domain.ParticipationEntry")).Return(nil).Once()
	ledger.EXPECT().CountActive(mock.Anything, c.ID).Return(2, nil).Times(3)
	store.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, saved *domain.Campaign) {
			assert.Equal(t, 2, saved.CurrentCount)
			assert.EqualValues(t, 3, saved.Version)
		}).
		Return(domain.ErrConflict).Times(3)

	uc := NewWishUseCase(store, ledger, WithClock(func() time.Time { return now }))
	_, err := uc.Join(context.Background(), c.ID, "bob", domain.Variant{})
	require.ErrorIs(t, err, domain.ErrConcurrentUpdate)
}

func TestJoinSurfacesStoreFailure(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	ledger := mocks.NewMockParticipationLedger(t)
	boom := errors.New("connection reset")

	store.EXPECT().Get(mock.Anything, mock.Anything).Return(domain.Campaign{}, boom).Once()

	uc := NewWishUseCase(store, ledger)
	_, err := uc.Join(context.Background(), uuid.New(), "bob", domain.Variant{})
	require.ErrorIs(t, err, boom)
}

func TestJoinIntoCampaignCancelledMidway(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 5, 2)

	f.store.beforeSave = func() {
		_, err := f.uc.Cancel(ctx, c.ID, "initiator")
		require.NoError(t, err)
	}
	_, err := f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
	require.ErrorIs(t, err, domain.ErrCampaignClosed)

	got, err := f.uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, got.Status)
	assert.Equal(t, 2, got.CurrentCount)
	f.assertCountConsistent(t, c.ID)
}

func TestJoinLosingRaceToTargetIsClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 3, 2)

	var (
		lateRes domain.JoinResult
		lateErr error
	)
	f.store.beforeSave = func() {
		lateRes, lateErr = f.uc.Join(ctx, c.ID, "late", domain.Variant{})
	}
	res, err := f.uc.Join(ctx, c.ID, "first", domain.Variant{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, res.Campaign.Status)
	assert.Equal(t, 3, res.Campaign.CurrentCount)

	require.ErrorIs(t, lateErr, domain.ErrCampaignClosed)
	assert.Equal(t, uuid.Nil, lateRes.Entry.ID)

	got, err := f.uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	assert.Equal(t, 3, got.CurrentCount)
	f.assertCountConsistent(t, c.ID)

	entries, err := f.uc.Participants(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, e.UserID == "late", e.Revoked, e.UserID)
	}
}

func TestJoinRereadingFilledCampaignIsClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 2, 1)

	// another participant fills the campaign ahead of bob while bob saves
	f.store.beforeSave = func() {
		early := domain.ParticipationEntry{
			ID:         uuid.New(),
			CampaignID: c.ID,
			UserID:     "early",
			JoinedAt:   f.clock.Now().Add(-time.Minute),
		}
		require.NoError(t, f.ledger.Append(ctx, early))
		filled, err := f.store.CampaignStore.Get(ctx, c.ID)
		require.NoError(t, err)
		filled.CurrentCount = 2
		domain.ApplyTo(&filled, domain.Joined(2, f.clock.Now()))
		require.NoError(t, f.store.CampaignStore.Save(ctx, &filled))
	}
	_, err := f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
	require.ErrorIs(t, err, domain.ErrCampaignClosed)

	got, err := f.uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	assert.Equal(t, 2, got.CurrentCount)
	assert.LessOrEqual(t, got.CurrentCount, got.TargetCount)
	f.assertCountConsistent(t, c.ID)
}

func TestCreateFailsCampaignWhenInitiatorNotRecorded(t *testing.T) {
	store := memory.NewCampaignStore()
	ledger := mocks.NewMockParticipationLedger(t)
	boom := errors.New("ledger unavailable")

	ledger.EXPECT().Append(mock.Anything, mock.AnythingOfType("domain.ParticipationEntry")).Return(boom).Once()
	ledger.EXPECT().CountActive(mock.Anything, mock.Anything).Return(0, nil).Once()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	uc := NewWishUseCase(store, ledger, WithClock(func() time.Time { return now }))
	_, err := uc.Create(context.Background(), domain.CampaignSpec{
		Product:       domain.ProductRef{ID: "sku-1", Name: "Kettle"},
		TargetCount:   3,
		OriginalPrice: 8000,
		GroupPrice:    6000,
		CreatedBy:     "alice",
	})
	require.ErrorIs(t, err, boom)

	items, total, err := store.List(context.Background(), port.ListQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, domain.StatusFailed, items[0].Status)
	assert.Zero(t, items[0].CurrentCount)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 5, 3)

	_, err := f.uc.Cancel(ctx, c.ID, "user-1")
	require.ErrorIs(t, err, domain.ErrNotCreator)

	cancelled, err := f.uc.Cancel(ctx, c.ID, "initiator")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, cancelled.Status)

	again, err := f.uc.Cancel(ctx, c.ID, "initiator")
	require.NoError(t, err)
	assert.Equal(t, cancelled.Version, again.Version, "cancelling twice writes nothing")

	_, err = f.uc.Join(ctx, c.ID, "late", domain.Variant{})
	assert.ErrorIs(t, err, domain.ErrCampaignClosed)

	_, err = f.uc.Cancel(ctx, uuid.New(), "initiator")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRevokeResyncsCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 4, 2)

	res, err := f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
	require.NoError(t, err)
	require.Equal(t, 3, res.Campaign.CurrentCount)
	reachedBefore := res.Campaign.Milestones[0].Reached

	entry, after, err := f.uc.Revoke(ctx, res.Entry.ID)
	require.NoError(t, err)
	assert.True(t, entry.Revoked)
	assert.Equal(t, 2, after.CurrentCount)
	assert.Equal(t, domain.StatusActive, after.Status)
	assert.Equal(t, reachedBefore, after.Milestones[0].Reached, "milestones stay reached")
	f.assertCountConsistent(t, c.ID)

	_, err = f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
	require.NoError(t, err, "a revoked user may join again")

	_, _, err = f.uc.Revoke(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpireDueIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	short := f.campaignWith(t, 10, 3)
	reached := f.campaignWith(t, 3, 3)
	require.Equal(t, domain.StatusSuccess, reached.Status)

	spec := f.spec(5)
	spec.WindowEnd = f.clock.Now().Add(48 * time.Hour)
	long, err := f.uc.Create(ctx, spec)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	changed, err := f.uc.ExpireDue(ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	first, err := f.store.CampaignStore.Get(ctx, short.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, first.Status)

	changed, err = f.uc.ExpireDue(ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Zero(t, changed)

	second, err := f.store.CampaignStore.Get(ctx, short.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stillOpen, err := f.uc.Get(ctx, long.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaiting, stillOpen.Status)
}

func TestListSettlesElapsedItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaignWith(t, 10, 2)
	f.clock.Advance(2 * time.Hour)

	page, err := f.uc.List(ctx, port.ListQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, c.ID, page.Items[0].ID)
	assert.Equal(t, domain.StatusExpired, page.Items[0].Status)
	assert.Equal(t, port.DefaultPageSize, page.PageSize)

	_, err = f.uc.List(ctx, port.ListQuery{Sort: "random"})
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))

	bad := domain.Status("paused")
	_, err = f.uc.List(ctx, port.ListQuery{Status: &bad})
	assert.True(t, errors.As(err, &verr))
}

func TestListStatusFilterAppliesAfterSettling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	short := f.campaignWith(t, 10, 2)

	spec := f.spec(10)
	spec.WindowEnd = f.clock.Now().Add(48 * time.Hour)
	long, err := f.uc.Create(ctx, spec)
	require.NoError(t, err)
	_, err = f.uc.Join(ctx, long.ID, "bob", domain.Variant{})
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	active := domain.StatusActive
	page, err := f.uc.List(ctx, port.ListQuery{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, long.ID, page.Items[0].ID)

	stored, err := f.store.CampaignStore.Get(ctx, short.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, stored.Status)
}

func TestMilestonesNeverUnset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spec := f.spec(6)
	spec.Milestones = []domain.Milestone{
		{ThresholdCount: 3, DiscountPercent: 10},
		{ThresholdCount: 6, DiscountPercent: 30},
	}
	c, err := f.uc.Create(ctx, spec)
	require.NoError(t, err)

	var entries []domain.ParticipationEntry
	for _, u := range []string{"a", "b"} {
		res, err := f.uc.Join(ctx, c.ID, u, domain.Variant{})
		require.NoError(t, err)
		entries = append(entries, res.Entry)
	}
	for _, e := range entries {
		_, after, err := f.uc.Revoke(ctx, e.ID)
		require.NoError(t, err)
		assert.True(t, after.Milestones[0].Reached)
	}
	got, err := f.uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentCount)
	assert.True(t, got.Milestones[0].Reached)
}

func TestJoinPublishesEvents(t *testing.T) {
	publisher := mocks.NewMockEventPublisher(t)
	f := newFixture(t, WithEventPublisher(publisher))
	ctx := context.Background()
	c := f.campaignWith(t, 2, 1)

	var got []port.CampaignEvent
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, events ...port.CampaignEvent) { got = events }).
		Return(errors.New("broker down")).Once()

	res, err := f.uc.Join(ctx, c.ID, "bob", domain.Variant{})
	require.NoError(t, err, "publish failures do not fail the join")
	assert.Equal(t, domain.StatusSuccess, res.Campaign.Status)

	require.Len(t, got, 2)
	assert.Equal(t, port.EventMilestoneReached, got[0].Kind)
	require.NotNil(t, got[0].Milestone)
	assert.Equal(t, 2, got[0].Milestone.ThresholdCount)
	assert.Equal(t, port.EventStatusChanged, got[1].Kind)
	assert.Equal(t, domain.StatusSuccess, got[1].Status)
	assert.Equal(t, c.ID, got[1].CampaignID)
}

func TestParticipantsUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Participants(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
