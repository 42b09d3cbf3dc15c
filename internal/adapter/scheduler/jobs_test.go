package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"groupbuy/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExpireCampaignsPassesClock(t *testing.T) {
	svc := mocks.NewMockWishUseCase(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	svc.EXPECT().ExpireDue(mock.Anything, now).
		Run(func(ctx context.Context, _ time.Time) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "sweeps run with a deadline")
		}).
		Return(2, nil).Once()

	jobs := NewJobs(svc, discardLogger(), time.Minute)
	jobs.now = func() time.Time { return now }
	jobs.ExpireCampaigns()
}

func TestExpireCampaignsSurvivesErrors(t *testing.T) {
	svc := mocks.NewMockWishUseCase(t)
	svc.EXPECT().ExpireDue(mock.Anything, mock.Anything).Return(1, errors.New("db down")).Once()

	jobs := NewJobs(svc, discardLogger(), 0)
	assert.NotPanics(t, jobs.ExpireCampaigns)
}

type countingSweeper struct{ calls atomic.Int32 }

func (s *countingSweeper) ExpireDue(context.Context, time.Time) (int, error) {
	s.calls.Add(1)
	return 0, nil
}

func TestSchedulerRunsSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(NewJobs(sweeper, discardLogger(), time.Second), discardLogger(), "@every 1s")
	require.NoError(t, s.Start())
	t.Cleanup(func() { <-s.Stop().Done() })

	assert.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := NewScheduler(NewJobs(&countingSweeper{}, discardLogger(), 0), discardLogger(), "every now and then")
	assert.Error(t, s.Start())
}
