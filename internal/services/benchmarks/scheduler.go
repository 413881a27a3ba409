package benchmarks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/interfaces"
)

const refreshTimeout = 10 * time.Minute

// Scheduler refreshes sector benchmarks on a cron schedule
type Scheduler struct {
	service interfaces.BenchmarkService
	cron    *cron.Cron
	logger  arbor.ILogger
}

// NewScheduler creates a benchmark refresh scheduler
func NewScheduler(service interfaces.BenchmarkService, logger arbor.ILogger) *Scheduler {
	return &Scheduler{
		service: service,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
	}
}

// Start begins the scheduled refresh
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		// Default: daily at 02:00
		schedule = "0 0 2 * * *"
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		common.SafeGo(s.logger, "benchmark-refresh", s.runRefresh)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().
		Str("schedule", schedule).
		Msg("Benchmark refresh scheduler started")

	return nil
}

// Stop stops the scheduler. A refresh already running is left to finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info().Msg("Benchmark refresh scheduler stopped")
}

// RunNow triggers an immediate refresh in the background
func (s *Scheduler) RunNow() {
	s.logger.Info().Msg("Triggering immediate benchmark refresh")
	common.SafeGo(s.logger, "benchmark-refresh", s.runRefresh)
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := s.service.Refresh(ctx); err != nil {
		s.logger.Error().
			Err(err).
			Msg("Scheduled benchmark refresh failed")
		return
	}

	s.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("Scheduled benchmark refresh completed")
}
