package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/skillcoder/pingmon/internal/infra/metrics"
)

// SchedulerState is the current phase of the probe loop.
type SchedulerState string

const (
	StateIdle     SchedulerState = "idle"
	StateProbing  SchedulerState = "probing"
	StateSleeping SchedulerState = "sleeping"
	StateStopped  SchedulerState = "stopped"
)

// Scheduler probes the target host forever, one probe at a time, and appends
// every outcome to the repository.
type Scheduler struct {
	logger       *slog.Logger
	repo         Repository
	prober       Prober
	settings     settingsSource
	host         string
	probeTimeout time.Duration
	now          func() time.Time

	state        atomic.Value
	ready        chan struct{}
	doneCh       chan struct{}
	started      atomic.Bool
	inShutdown   atomic.Bool
	appendErrLog rate.Sometimes

	mu           sync.RWMutex
	cancel       context.CancelFunc
	lastCycleEnd time.Time
}

// NewScheduler creates a probe scheduler for host.
func NewScheduler(
	logger *slog.Logger,
	repo Repository,
	prober Prober,
	settings settingsSource,
	host string,
	probeTimeout time.Duration,
) *Scheduler {
	s := &Scheduler{
		logger:       logger,
		repo:         repo,
		prober:       prober,
		settings:     settings,
		host:         host,
		probeTimeout: probeTimeout,
		now:          time.Now,
		ready:        make(chan struct{}),
		doneCh:       make(chan struct{}),
		appendErrLog: rate.Sometimes{First: 1, Interval: appendErrorLogEvery},
	}
	s.state.Store(StateIdle)

	return s
}

// Name returns the name of the scheduler component
func (s *Scheduler) Name() string {
	return "probe-scheduler"
}

// State returns the current loop phase.
func (s *Scheduler) State() SchedulerState {
	state, _ := s.state.Load().(SchedulerState)

	return state
}

// Start launches the probe loop. The loop stops when ctx is cancelled or
// Shutdown is called.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "scheduler is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already started")
	}

	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.RunCommand(runCtx)

	return nil
}

// Ready returns a channel that is closed once the loop is running.
func (s *Scheduler) Ready() <-chan struct{} {
	return s.ready
}

// Done returns a channel that is closed when the loop has exited.
func (s *Scheduler) Done() <-chan struct{} {
	return s.doneCh
}

// Ping reports whether the loop keeps cycling.
func (s *Scheduler) Ping(ctx context.Context) error {
	select {
	case <-s.doneCh:
		return fmt.Errorf("scheduler loop stopped")
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		limit := 2*s.settings.Load().ProbeInterval + s.probeTimeout

		age := s.lastCycleAge()
		if age > limit {
			return fmt.Errorf("last probe cycle was too long ago: %s", age.Round(time.Millisecond).String())
		}

		return nil
	default:
		return fmt.Errorf("scheduler is not ready")
	}
}

// Shutdown stops the loop and waits until it acknowledges by exiting.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "scheduler is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "scheduler shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down scheduler")

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
		return fmt.Errorf("shutdown context done before scheduler loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "scheduler loop exited")
	}

	return nil
}

// RunCommand runs the sleep-probe-write cycle until ctx is cancelled.
// Probes start one interval apart, measured from the start of the previous
// probe; the interval is re-read from the live settings on every cycle.
func (s *Scheduler) RunCommand(ctx context.Context) {
	defer close(s.doneCh)
	defer s.state.Store(StateStopped)

	logger := s.logger.With("component", "scheduler", "host", s.host)

	s.setLastCycleEnd()
	close(s.ready)

	logger.InfoContext(ctx, "probe loop started", "interval", s.settings.Load().ProbeInterval)

	for {
		if ctx.Err() != nil {
			logger.InfoContext(ctx, "terminating probe loop")

			return
		}

		startedAt := s.now()

		outcome, err := s.ProbeCommand(ctx, startedAt)

		if ctx.Err() != nil {
			logger.InfoContext(ctx, "terminating probe loop")

			return
		}

		if err != nil {
			s.logAppendError(ctx, logger, err)
		} else {
			logger.DebugContext(ctx, "probe outcome stored",
				"id", outcome.ID,
				"success", outcome.Success,
				"latencyMs", outcome.LatencyMs,
			)
		}

		s.setLastCycleEnd()

		wait := s.nextDelay(startedAt, s.now())

		s.state.Store(StateSleeping)

		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating probe loop")

			return
		case <-timer.C:
		}
	}
}

// ProbeCommand runs one probe and appends its outcome. A probe that finishes
// after ctx is cancelled is discarded. The append itself is not interrupted
// by cancellation.
func (s *Scheduler) ProbeCommand(ctx context.Context, startedAt time.Time) (Outcome, error) {
	s.state.Store(StateProbing)

	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	result := s.prober.Probe(probeCtx, s.host)

	cancel()

	if err := ctx.Err(); err != nil {
		return Outcome{}, fmt.Errorf("probe cancelled: %w", err)
	}

	metrics.RecordProbe(result.Success, result.Latency)

	outcome := NewOutcome(startedAt, result)

	writeCtx, cancelWrite := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
	defer cancelWrite()

	id, err := s.repo.AppendOutcomeCommand(writeCtx, outcome)
	if err != nil {
		metrics.RecordAppendFailure()

		return outcome, fmt.Errorf("append outcome: %w", err)
	}

	outcome.ID = id

	return outcome, nil
}

// nextDelay returns how long to sleep so that the next probe starts one
// interval after startedAt. Overrunning probes yield zero.
func (s *Scheduler) nextDelay(startedAt, now time.Time) time.Duration {
	wait := s.settings.Load().ProbeInterval - now.Sub(startedAt)
	if wait < 0 {
		return 0
	}

	return wait
}

func (s *Scheduler) logAppendError(ctx context.Context, logger *slog.Logger, err error) {
	logger.DebugContext(ctx, "append outcome failed", "reason", err)

	s.appendErrLog.Do(func() {
		logger.ErrorContext(ctx, "failed to store probe outcome, dropping it", "reason", err)
	})
}

func (s *Scheduler) lastCycleAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.now().Sub(s.lastCycleEnd)
}

func (s *Scheduler) setLastCycleEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastCycleEnd = s.now()
}
