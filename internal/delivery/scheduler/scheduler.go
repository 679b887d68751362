// Package scheduler hosts the in-process sweep that publishes and
// unpublishes listings whose schedule has come due.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the sweep scheduler.
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config         *config.Config
	Logger         *slog.Logger
	ProductUsecase usecase.ProductUsecase
}

type sweepScheduler struct {
	interval time.Duration
	enabled  bool
	logger   *slog.Logger
	products usecase.ProductUsecase
	stop     chan struct{}
	done     chan struct{}
}

// NewScheduler creates the sweep scheduler delivery.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	interval := time.Minute
	enabled := true
	if params.Config.Scheduler != nil {
		enabled = params.Config.Scheduler.Enabled
		if params.Config.Scheduler.SweepInterval > 0 {
			interval = params.Config.Scheduler.SweepInterval
		}
	}

	scheduler := &sweepScheduler{
		interval: interval,
		enabled:  enabled,
		logger:   params.Logger,
		products: params.ProductUsecase,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: scheduler.shutdown,
	})

	return scheduler, nil
}

// Serve runs the sweep loop until the scheduler is stopped.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("Sweep scheduler disabled")
		<-s.stop

		return nil
	}

	s.logger.Info("Starting sweep scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.runSweep(ctx, now)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *sweepScheduler) runSweep(ctx context.Context, now time.Time) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	result, err := s.products.RunScheduledSweep(sweepCtx, now)
	if err != nil {
		s.logger.Error("Scheduled sweep failed", slog.Any("error", err))

		return
	}

	if result.Published > 0 || result.Unpublished > 0 {
		s.logger.Info("Scheduled sweep finished",
			slog.Int("published", result.Published),
			slog.Int("unpublished", result.Unpublished),
		)
	}
}

func (s *sweepScheduler) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down sweep scheduler")
	close(s.stop)

	select {
	case <-s.done:
		return nil
	case <-time.After(lifecycle.DefaultTimeout):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
