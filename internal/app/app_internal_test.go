package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/pingmon/internal/config"
	"github.com/skillcoder/pingmon/internal/infra/appstate"
	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
)

type allChannelsCloseCase struct {
	name                         string
	giveNumChannels              int
	giveContextCancelBeforeClose bool
	wantClosed                   bool
}

func TestAllChannelsClose(t *testing.T) {
	logger := slog.Default()

	tests := []allChannelsCloseCase{
		{
			name:            "zero channels closes immediately",
			giveNumChannels: 0,
			wantClosed:      true,
		},
		{
			name:            "one channel closes when it closes",
			giveNumChannels: 1,
			wantClosed:      true,
		},
		{
			name:            "two channels close when both close",
			giveNumChannels: 2,
			wantClosed:      true,
		},
		{
			name:                         "context cancelled then channels close",
			giveNumChannels:              2,
			giveContextCancelBeforeClose: true,
			wantClosed:                   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			if tt.giveContextCancelBeforeClose {
				var cancel context.CancelFunc

				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			chans := make([]<-chan struct{}, 0, tt.giveNumChannels)
			readyChans := make([]chan struct{}, 0, tt.giveNumChannels)

			for range tt.giveNumChannels {
				ch := make(chan struct{})

				readyChans = append(readyChans, ch)
				chans = append(chans, ch)
			}

			out := allChannelsClose(ctx, logger, chans...)

			if tt.giveNumChannels == 0 {
				select {
				case <-out:
				case <-time.After(100 * time.Millisecond):
					t.Fatal("expected out channel to close immediately")
				}

				return
			}

			for _, ch := range readyChans {
				close(ch)
			}

			select {
			case <-out:
			case <-time.After(500 * time.Millisecond):
				t.Fatal("expected out channel to close after all input channels closed")
			}
		})
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		LogLevel:            "debug",
		LogFormat:           "text",
		HTTPPort:            "0",
		MetricsPort:         "0",
		DBPath:              filepath.Join(t.TempDir(), "ping_log.db"),
		TargetHost:          "127.0.0.1",
		ProbeTimeout:        100 * time.Millisecond,
		HealthCheckInterval: time.Second,
		ShutdownTimeout:     2 * time.Second,
	}
}

func newAppState(logger *slog.Logger, quit <-chan os.Signal) (*appstate.AppState, *healthcheck.Service) {
	checks := healthcheck.New(logger, time.Second)

	return appstate.New(logger, time.Now(), quit, checks, 2*time.Second), checks
}

func TestApp_RunUntilCancelled(t *testing.T) {
	logger := slog.Default()
	appState, checks := newAppState(logger, make(chan os.Signal, 1))

	cfg := testConfig(t)
	cfg.MaintenanceSchedule = "@daily"
	cfg.MaintenanceTZ = "UTC"

	application, err := New(t.Context(), logger, cfg, appState, checks)
	require.NoError(t, err)
	require.Len(t, application.components, 5)

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)

	go func() {
		errCh <- application.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return appState.GetState() == appstate.StateRunning
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("application did not stop")
	}

	require.Equal(t, appstate.StateTerminated, appState.GetState())
}

func TestApp_StopsOnSignal(t *testing.T) {
	logger := slog.Default()
	quit := make(chan os.Signal, 1)
	appState, checks := newAppState(logger, quit)

	application, err := New(t.Context(), logger, testConfig(t), appState, checks)
	require.NoError(t, err)
	require.Len(t, application.components, 4, "maintenance disabled")

	errCh := make(chan error, 1)

	go func() {
		errCh <- application.Run(t.Context())
	}()

	require.Eventually(t, func() bool {
		return appState.GetState() == appstate.StateRunning
	}, 5*time.Second, 10*time.Millisecond)

	quit <- os.Interrupt

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("application did not stop")
	}
}

func TestNew_OpenStoreFails(t *testing.T) {
	logger := slog.Default()
	appState, checks := newAppState(logger, make(chan os.Signal, 1))

	cfg := testConfig(t)
	cfg.DBPath = filepath.Join(t.TempDir(), "missing", "dir", "ping_log.db")

	_, err := New(t.Context(), logger, cfg, appState, checks)
	require.Error(t, err)
}
