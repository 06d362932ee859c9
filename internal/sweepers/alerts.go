// Package sweepers runs periodic maintenance jobs.
package sweepers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kosarica/price-comparator/internal/catalog"
)

const defaultSweepTimeout = time.Minute

// AlertTrigger marks every due alert as triggered.
type AlertTrigger interface {
	TriggerDue(ctx context.Context) ([]catalog.PriceAlert, error)
}

// AlertSweeper triggers due price alerts on a cron schedule
type AlertSweeper struct {
	trigger  AlertTrigger
	schedule string
	timeout  time.Duration
	logger   zerolog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewAlertSweeper creates a sweeper for the given standard cron expression or
// descriptor such as "@every 5m".
func NewAlertSweeper(trigger AlertTrigger, schedule string, timeout time.Duration) (*AlertSweeper, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid alert sweep schedule %q: %w", schedule, err)
	}
	if timeout <= 0 {
		timeout = defaultSweepTimeout
	}
	return &AlertSweeper{
		trigger:  trigger,
		schedule: schedule,
		timeout:  timeout,
		logger:   log.With().Str("component", "alert_sweeper").Logger(),
	}, nil
}

// Start begins the scheduled sweeps. Calling Start twice is a no-op.
func (s *AlertSweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return nil
	}

	cronLogger := cron.PrintfLogger(&s.logger)
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	))
	if _, err := c.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("failed to schedule alert sweep: %w", err)
	}
	c.Start()
	s.cron = c

	s.logger.Info().Str("schedule", s.schedule).Msg("Starting alert sweeper")
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *AlertSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
	s.logger.Info().Msg("Alert sweeper stopped")
}

func (s *AlertSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.Sweep(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to trigger due alerts")
	}
}

// Sweep triggers due alerts once and returns how many were triggered
func (s *AlertSweeper) Sweep(ctx context.Context) (int, error) {
	triggered, err := s.trigger.TriggerDue(ctx)
	if err != nil {
		return len(triggered), err
	}

	if len(triggered) > 0 {
		s.logger.Info().Int("triggered", len(triggered)).Msg("Triggered due alerts")
	}
	return len(triggered), nil
}
