package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper settles campaigns whose window has ended.
type Sweeper interface {
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}

// Jobs contains the logic for the scheduled tasks.
type Jobs struct {
	sweeper Sweeper
	logger  *slog.Logger
	now     func() time.Time
	timeout time.Duration
}

// NewJobs creates a new Jobs runner. timeout bounds a single sweep.
func NewJobs(sweeper Sweeper, logger *slog.Logger, timeout time.Duration) *Jobs {
	return &Jobs{
		sweeper: sweeper,
		logger:  logger,
		now:     time.Now,
		timeout: timeout,
	}
}

// ExpireCampaigns runs one expiry sweep.
func (j *Jobs) ExpireCampaigns() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	started := j.now()
	changed, err := j.sweeper.ExpireDue(ctx, started)
	if err != nil {
		j.logger.Error("expiry sweep finished with errors",
			slog.Int("changed", changed), slog.Any("error", err))
		return
	}
	if changed > 0 {
		j.logger.Info("expiry sweep settled campaigns",
			slog.Int("changed", changed), slog.Duration("took", time.Since(started)))
		return
	}
	j.logger.Debug("expiry sweep found nothing to settle")
}
