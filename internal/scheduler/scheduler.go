// Package scheduler republishes live leaderboards on a cron schedule so
// submission ages and emphasis stay current between submissions.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/services/race"
)

// defaultJobTimeout bounds a single refresh of every active race
const defaultJobTimeout = 2 * time.Minute

// Config holds the dependencies of the scheduler
type Config struct {
	// Schedule is a standard five field cron spec
	Schedule string

	RaceService race.Service

	// JobTimeout defaults to two minutes
	JobTimeout time.Duration

	Logger logrus.FieldLogger
}

// Scheduler runs the leaderboard refresh job
type Scheduler struct {
	cron        *cron.Cron
	raceService race.Service
	timeout     time.Duration
	log         logrus.FieldLogger

	mu      sync.Mutex
	running bool
}

// New creates a scheduler with the refresh job registered
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RaceService == nil {
		return nil, errors.New("race service cannot be nil")
	}

	timeout := cfg.JobTimeout
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}

	s := &Scheduler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		raceService: cfg.RaceService,
		timeout:     timeout,
		log:         logger.Component(cfg.Logger, "scheduler"),
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.refresh); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// Start begins running the job in the background
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
	s.log.Info("Scheduler started")
}

// Stop waits for a running job to finish or ctx to end
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	select {
	case <-s.cron.Stop().Done():
		s.log.Info("Scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("Scheduler stopped before the refresh job finished")
	}
}

// Next returns when the job runs next, or the zero time when stopped
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.runOnce(ctx)
}

// runOnce refreshes every active race. Failures of single races are
// logged; the others are still refreshed
func (s *Scheduler) runOnce(ctx context.Context) int {
	out, err := s.raceService.RefreshActiveRaces(ctx, &race.RefreshActiveRacesInput{})

	refreshed := 0
	if out != nil {
		refreshed = out.Refreshed
	}

	log := s.log.WithField("refreshed", refreshed)
	if err != nil {
		log.WithError(err).Error("Leaderboard refresh failed")
		return refreshed
	}
	log.Debug("Leaderboards refreshed")

	return refreshed
}
