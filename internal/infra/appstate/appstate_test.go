package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/pingmon/internal/infra/appstate"
	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
	"github.com/skillcoder/pingmon/internal/infra/shutdown/mocks"
)

type staticChecker struct {
	name string
	err  error
}

func (c staticChecker) Name() string {
	return c.name
}

func (c staticChecker) Ping(context.Context) error {
	return c.err
}

func newTestState(t *testing.T) (*appstate.AppState, *healthcheck.Service) {
	t.Helper()

	logger := slog.Default()
	checks := healthcheck.New(logger, time.Second)

	return appstate.New(logger, time.Now(), make(chan os.Signal, 1), checks, time.Second), checks
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("init to starting to running to terminating", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		s, _ := newTestState(t)

		require.NoError(t, s.SetStarting(ctx))
		require.Equal(t, appstate.StateStarting, s.GetState())
		require.NoError(t, s.SetRunning(ctx))
		require.Equal(t, appstate.StateRunning, s.GetState())
		require.NoError(t, s.SetTerminating(ctx))
		require.Equal(t, appstate.StateTerminating, s.GetState())
	})

	t.Run("invalid: init to running", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestState(t)

		err := s.SetRunning(t.Context())
		require.ErrorIs(t, err, appstate.ErrInvalidStateTransition)
		require.Equal(t, appstate.StateInit, s.GetState())
	})

	t.Run("invalid: terminated cannot change", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		s, _ := newTestState(t)

		require.NoError(t, s.SetStarting(ctx))
		require.NoError(t, s.SetRunning(ctx))
		require.NoError(t, s.Shutdown(ctx))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.Error(t, s.SetStarting(ctx))
		require.ErrorIs(t, s.SetTerminating(ctx), appstate.ErrAlreadyTerminated)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_HealthFollowsChecks(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	s, checks := newTestState(t)

	require.NoError(t, s.RegisterChecker(staticChecker{name: "store"}))
	require.Error(t, s.RegisterChecker(staticChecker{name: "store"}))
	require.NoError(t, s.RegisterChecker(staticChecker{name: "scheduler", err: errors.New("stale")}))

	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(ctx))
	require.NoError(t, s.SetRunning(ctx))

	// Nothing has been checked yet.
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())

	checks.CheckCommand(ctx)

	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())
	require.Equal(t, "stale", s.Report().Checks["scheduler"].LastError)
}

func TestAppState_Uptime(t *testing.T) {
	t.Parallel()

	startTime := time.Now()
	checks := healthcheck.New(slog.Default(), time.Second)
	s := appstate.New(slog.Default(), startTime, make(chan os.Signal, 1), checks, time.Second)

	time.Sleep(10 * time.Millisecond)

	require.Equal(t, startTime, s.GetStartTime())
	require.Greater(t, s.GetUptime(), time.Duration(0))
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	s, _ := newTestState(t)

	first := mocks.NewMockShutdowner(t)
	first.EXPECT().Name().Return("store").Once()
	first.EXPECT().Shutdown(mock.Anything).Return(nil).Once()

	second := mocks.NewMockShutdowner(t)
	second.EXPECT().Name().Return("scheduler").Once()
	second.EXPECT().Shutdown(mock.Anything).Return(errors.New("loop stuck")).Once()

	require.NoError(t, s.RegisterShutdowner(first))
	require.NoError(t, s.RegisterShutdowner(second))
	require.Error(t, s.RegisterShutdowner(nil))

	require.NoError(t, s.SetStarting(ctx))
	require.NoError(t, s.SetRunning(ctx))

	err := s.Shutdown(ctx)
	require.Error(t, err)
	require.Equal(t, appstate.StateTerminated, s.GetState())

	// Shutdown again is a no-op.
	require.NoError(t, s.Shutdown(ctx))

	late := mocks.NewMockShutdowner(t)
	late.EXPECT().Name().Return("late").Once()
	require.ErrorIs(t, s.RegisterShutdowner(late), appstate.ErrAlreadyTerminated)
}
