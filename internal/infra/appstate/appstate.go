package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
	"github.com/skillcoder/pingmon/internal/infra/shutdown"
)

// State represents the application state
type State string

const (
	// StateInit is the initial state when the application is created
	StateInit State = "init"

	// StateStarting is the state when the application is starting up
	StateStarting State = "starting"

	// StateRunning is the state when the application is running normally
	StateRunning State = "running"

	// StateTerminating is the state when the application is shutting down
	StateTerminating State = "terminating"

	// StateTerminated is the final state when the application has terminated
	StateTerminated State = "terminated"
)

const defaultShutdownersCount = 8

// AppState tracks the process lifecycle, owns the shutdown order and combines
// it with health check results.
type AppState struct {
	mu              sync.RWMutex
	logger          *slog.Logger
	startedAt       time.Time
	readyAt         *time.Time
	terminatingAt   *time.Time
	state           State
	quit            <-chan os.Signal
	checks          checkService
	shutdowners     []shutdown.Shutdowner
	shutdownTimeout time.Duration
}

// New creates a new AppState with the given start time
func New(
	logger *slog.Logger,
	appStart time.Time,
	quit <-chan os.Signal,
	checks checkService,
	shutdownTimeout time.Duration,
) *AppState {
	return &AppState{
		logger:          logger,
		startedAt:       appStart,
		state:           StateInit,
		quit:            quit,
		checks:          checks,
		shutdowners:     make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *AppState) RegisterChecker(checker healthcheck.Checker) error {
	if err := s.checks.Register(checker); err != nil {
		return fmt.Errorf("register checker: %w", err)
	}

	return nil
}

// RegisterShutdowner appends a component to the shutdown list. Components are
// shut down in reverse registration order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) error {
	if shutdowner == nil {
		return fmt.Errorf("register shutdowner: shutdowner cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminating || s.state == StateTerminated {
		return fmt.Errorf("register shutdowner %s: %w", shutdowner.Name(), ErrAlreadyTerminated)
	}

	s.shutdowners = append(s.shutdowners, shutdowner)

	return nil
}

func (s *AppState) Report() healthcheck.Report {
	return s.checks.Report()
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting: %w", ErrInvalidStateTransition)
	}

	return s.setState(StateStarting)
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running: %w", ErrInvalidStateTransition)
	}

	now := time.Now()
	s.readyAt = &now

	s.logger.InfoContext(ctx, "application is running", "startup", now.Sub(s.startedAt))

	return s.setState(StateRunning)
}

// SetTerminating transitions the state to Terminating
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return fmt.Errorf("set terminating: %w", ErrAlreadyTerminated)
	}

	if s.terminatingAt == nil {
		now := time.Now()
		s.terminatingAt = &now
	}

	return s.setState(StateTerminating)
}

func (s *AppState) setState(newState State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set state: %w", ErrAlreadyTerminated)
	}

	s.state = newState

	return nil
}

// GetState returns the current application state
func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// GetStartTime returns the time when the application started
func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

// GetUptime returns the duration since the application started
func (s *AppState) GetUptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.startedAt)
}

// IsHealthy reports whether the application runs and every health-critical
// checker passes.
func (s *AppState) IsHealthy() bool {
	s.mu.RLock()
	running := s.state == StateRunning
	s.mu.RUnlock()

	return running && s.checks.Report().Healthy
}

// IsReady reports whether the application runs and every ready-critical
// checker passes.
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	ready := s.state == StateRunning && s.readyAt != nil
	s.mu.RUnlock()

	return ready && s.checks.Report().Ready
}

// Quit returns the channel that will receive the signal when shutdown is requested
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

// Shutdown stops every registered component and moves to the terminated
// state. Calling it again is a no-op.
func (s *AppState) Shutdown(ctx context.Context) error {
	if s.GetState() == StateTerminated {
		return nil
	}

	if err := s.SetTerminating(ctx); err != nil {
		return fmt.Errorf("set terminating application state: %w", err)
	}

	s.mu.RLock()
	shutdowners := append([]shutdown.Shutdowner(nil), s.shutdowners...)
	s.mu.RUnlock()

	shutdownErr := shutdown.GracefulShutdown(ctx, s.logger, s.shutdownTimeout, shutdowners)

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()

	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}

	return nil
}
