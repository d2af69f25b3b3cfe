// Package scheduler runs periodic background jobs for morsely serve.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// Job is one unit of periodic work. Errors are logged, never fatal.
type Job func(ctx context.Context) error

// Scheduler wraps a gocron scheduler running in UTC.
type Scheduler struct {
	cron *gocron.Scheduler
	log  zerolog.Logger

	mu  sync.Mutex
	ctx context.Context
}

// New creates a scheduler with no jobs.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: gocron.NewScheduler(time.UTC),
		log:  log,
		ctx:  context.Background(),
	}
}

// Every registers job to run each interval, first firing one interval
// from start. Overlapping runs of the same job are skipped.
func (s *Scheduler) Every(interval time.Duration, name string, job Job) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive", name)
	}
	_, err := s.cron.Every(interval).
		WaitForSchedule().
		SingletonMode().
		Tag(name).
		Do(func() {
			started := time.Now()
			if err := job(s.jobContext()); err != nil {
				s.log.Error().Err(err).Str("job", name).Msg("scheduled job failed")
				return
			}
			s.log.Debug().Str("job", name).Dur("took", time.Since(started)).Msg("scheduled job done")
		})
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	return nil
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return s.cron.Len()
}

// Run starts the scheduler and blocks until ctx is cancelled, then stops
// it. Jobs receive ctx.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.cron.StartAsync()
	s.log.Info().Int("jobs", s.cron.Len()).Msg("scheduler started")

	<-ctx.Done()
	s.cron.Stop()
	s.log.Info().Msg("scheduler stopped")
	return nil
}

func (s *Scheduler) jobContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}
