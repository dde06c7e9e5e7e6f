package healthcheck

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"
)

const defaultCheckTimeout = time.Second

type checkerInfo struct {
	checker        Checker
	healthCritical bool
	readyCritical  bool
	timeout        time.Duration
	window         *window
	consecutive    int
	lastFailureAt  time.Time
}

// Result is the current state of one checker.
type Result struct {
	Name                string    `json:"name"`
	Healthy             bool      `json:"healthy"`
	Ready               bool      `json:"ready"`
	LastRun             time.Time `json:"lastRun"`
	LastError           string    `json:"lastError,omitempty"`
	LastFailureAt       time.Time `json:"lastFailureAt"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	Window              Summary   `json:"window"`
}

// Report aggregates all checkers. Healthy and Ready are false as soon as one
// critical checker reports an error.
type Report struct {
	Healthy bool              `json:"healthy"`
	Ready   bool              `json:"ready"`
	Checks  map[string]Result `json:"checks"`
}

// Service runs registered checkers on an interval and keeps their results.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	checkers   map[string]*checkerInfo
	mu         sync.RWMutex
	ready      chan struct{}
	doneCh     chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a health check service running every interval.
func New(
	logger *slog.Logger,
	interval time.Duration,
) *Service {
	return &Service{
		logger:   logger,
		interval: interval,
		checkers: make(map[string]*checkerInfo),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Name returns the name of the health check component
func (s *Service) Name() string {
	return "healthcheck-service"
}

// Register adds a checker. Names must be unique.
func (s *Service) Register(checker Checker) error {
	if checker == nil {
		return fmt.Errorf("register checker: checker cannot be nil")
	}

	name := checker.Name()

	info := &checkerInfo{
		checker:        checker,
		healthCritical: true,
		readyCritical:  true,
		timeout:        defaultCheckTimeout,
		window:         newWindow(),
	}

	if c, ok := checker.(healthCriticalChecker); ok {
		info.healthCritical = c.CheckCritical()
	}

	if c, ok := checker.(readyCriticalChecker); ok {
		info.readyCritical = c.CheckReadyCritical()
	}

	if c, ok := checker.(timeoutChecker); ok && c.CheckTimeout() > 0 {
		info.timeout = c.CheckTimeout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.checkers[name]; exists {
		return fmt.Errorf("register checker %s: %w", name, ErrCheckerAlreadyRegistered)
	}

	s.checkers[name] = info

	s.logger.Info("health checker registered",
		"name", name,
		"healthCritical", info.healthCritical,
		"readyCritical", info.readyCritical,
		"timeout", info.timeout,
	)

	return nil
}

// Start runs the first round of checks and then keeps checking on the interval.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "healthcheck service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("healthcheck service already started")
	}

	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.RunCommand(runCtx)

	return nil
}

// Ready returns a channel that is closed after the first round of checks.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops the loop and waits for in-flight checks.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "healthcheck service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "healthcheck service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down healthcheck service")

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
		return fmt.Errorf("shutdown context done before healthcheck loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "healthcheck loop exited")
	}

	s.wg.Wait()

	return nil
}

// Result returns the current state of one checker.
func (s *Service) Result(name string) (Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.checkers[name]
	if !ok {
		return Result{}, fmt.Errorf("get result: %w: %s", ErrCheckerNotFound, name)
	}

	return toResult(name, info), nil
}

// Report returns the state of all checkers.
func (s *Service) Report() Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := Report{
		Healthy: true,
		Ready:   true,
		Checks:  make(map[string]Result, len(s.checkers)),
	}

	for name, info := range s.checkers {
		result := toResult(name, info)

		report.Healthy = report.Healthy && result.Healthy
		report.Ready = report.Ready && result.Ready
		report.Checks[name] = result
	}

	return report
}

// RunCommand checks every checker once, then on every tick until ctx is done.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "healthcheck")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.CheckCommand(ctx)
	close(s.ready)

	for {
		select {
		case <-ticker.C:
			s.CheckCommand(ctx)
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating healthcheck loop")

			return
		}
	}
}

// CheckCommand runs all checkers in parallel, each bounded by its timeout.
func (s *Service) CheckCommand(ctx context.Context) {
	s.mu.RLock()
	checkers := maps.Clone(s.checkers)
	s.mu.RUnlock()

	var wg sync.WaitGroup

	for name, info := range checkers {
		if ctx.Err() != nil {
			return
		}

		wg.Add(1)
		s.wg.Add(1)

		go func() {
			defer wg.Done()
			defer s.wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, info.timeout)
			defer cancel()

			start := time.Now()
			err := info.checker.Ping(checkCtx)

			s.record(name, sample{at: start, took: time.Since(start), err: err})

			if err != nil {
				s.logger.DebugContext(ctx, "health check failed", "name", name, "reason", err)
			}
		}()
	}

	wg.Wait()
}

func (s *Service) record(name string, smp sample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.checkers[name]
	if !ok {
		return
	}

	info.window.add(smp)

	if smp.err != nil {
		info.consecutive++
		info.lastFailureAt = smp.at
	} else {
		info.consecutive = 0
	}
}

func toResult(name string, info *checkerInfo) Result {
	out := Result{
		Name:                name,
		Healthy:             true,
		Ready:               true,
		LastFailureAt:       info.lastFailureAt,
		ConsecutiveFailures: info.consecutive,
		Window:              info.window.summary(),
	}

	last, ok := info.window.last()
	if !ok {
		return out
	}

	out.LastRun = last.at

	if last.err != nil {
		out.LastError = last.err.Error()
		out.Healthy = !info.healthCritical
		out.Ready = !info.readyCritical
	}

	return out
}
