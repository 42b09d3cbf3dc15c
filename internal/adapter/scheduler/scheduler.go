package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the jobs on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	jobs     *Jobs
	logger   *slog.Logger
	schedule string
}

// NewScheduler creates a new scheduler. Overlapping sweeps are skipped.
func NewScheduler(jobs *Jobs, logger *slog.Logger, schedule string) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	return &Scheduler{
		cron:     c,
		jobs:     jobs,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the jobs and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.jobs.ExpireCampaigns); err != nil {
		return fmt.Errorf("schedule expiry sweep %q: %w", s.schedule, err)
	}
	s.logger.Info("scheduled expiry sweep", slog.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
