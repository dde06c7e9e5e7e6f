package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/pingmon/internal/infra/metrics"
)

// Service runs database maintenance on a cron schedule. It never deletes
// outcomes; a failed run is logged and the next one is scheduled as usual.
type Service struct {
	logger     *slog.Logger
	store      Optimizer
	schedule   Schedule
	now        func() time.Time
	ready      chan struct{}
	doneCh     chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
	mu         sync.RWMutex
	cancel     context.CancelFunc
	lastRunAt  time.Time
	lastErr    error
}

// New creates a maintenance service.
func New(
	logger *slog.Logger,
	store Optimizer,
	schedule Schedule,
) *Service {
	return &Service{
		logger:   logger,
		store:    store,
		schedule: schedule,
		now:      time.Now,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Name returns the name of the maintenance component
func (s *Service) Name() string {
	return "db-maintenance"
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "maintenance service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("maintenance service already started")
	}

	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.RunCommand(runCtx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Ping fails only when the loop has exited. A failed run is not a health
// problem because probing and reads keep working.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-s.doneCh:
		return fmt.Errorf("maintenance loop stopped")
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("maintenance service is not ready")
	}
}

// CheckCritical marks the maintenance check as informational for health.
func (s *Service) CheckCritical() bool {
	return false
}

// CheckReadyCritical marks the maintenance check as informational for readiness.
func (s *Service) CheckReadyCritical() bool {
	return false
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "maintenance service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "maintenance service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down maintenance service")

	if !s.started.Load() {
		return nil
	}

	s.mu.RLock()
	cancel := s.cancel
	s.mu.RUnlock()

	if cancel != nil {
		cancel()
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before maintenance loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "maintenance loop exited")
	}

	return nil
}

// LastRun returns when the last run finished and its error, if any.
func (s *Service) LastRun() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastRunAt, s.lastErr
}

// RunCommand sleeps until each scheduled occurrence and runs maintenance.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "maintenance")

	close(s.ready)

	for {
		next := s.schedule.Next(s.now())
		if next.IsZero() {
			logger.WarnContext(ctx, "maintenance schedule has no further runs, stopping")

			return
		}

		logger.DebugContext(ctx, "next maintenance run scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating maintenance loop")

			return
		case <-timer.C:
		}

		if err := s.OptimizeCommand(ctx); err != nil {
			logger.ErrorContext(ctx, "database maintenance failed", "reason", err)
		}
	}
}

// OptimizeCommand runs one maintenance pass.
func (s *Service) OptimizeCommand(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	startedAt := s.now()

	err := s.store.Optimize(runCtx)

	s.mu.Lock()
	s.lastRunAt = s.now()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		metrics.RecordMaintenanceRun(metrics.ResultFailure)

		return fmt.Errorf("optimize database: %w", err)
	}

	metrics.RecordMaintenanceRun(metrics.ResultSuccess)
	s.logger.InfoContext(ctx, "database maintenance done", "took", s.now().Sub(startedAt))

	return nil
}
