// Package scheduler refreshes the forecast in the background so the
// cache stays warm between requests.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/saltline/surfcast/internal/forecast"
	"go.uber.org/zap"
)

type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *forecast.Service
	interval  time.Duration
	logger    *zap.SugaredLogger
}

func New(service *forecast.Service, interval time.Duration, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if _, err := s.service.RefreshNow(ctx); err != nil {
			s.logger.Warnw("scheduled refresh failed", "error", err)
			return
		}
		s.logger.Infow("scheduled refresh completed")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
