package monitor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

func ptrFloat(v float64) *float64 {
	return &v
}

func TestNewOutcome(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success keeps latency in milliseconds", func(t *testing.T) {
		t.Parallel()

		got := monitor.NewOutcome(at, monitor.ProbeResult{Success: true, Latency: 1500 * time.Microsecond})
		require.True(t, got.Success)
		require.NotNil(t, got.LatencyMs)
		require.InDelta(t, 1.5, *got.LatencyMs, 1e-9)
		require.Equal(t, at, got.Timestamp)
		require.NoError(t, got.Validate())
	})

	t.Run("failure drops latency", func(t *testing.T) {
		t.Parallel()

		got := monitor.NewOutcome(at, monitor.ProbeResult{Success: false, Latency: time.Second})
		require.False(t, got.Success)
		require.Nil(t, got.LatencyMs)
		require.NoError(t, got.Validate())
	})

	t.Run("zero latency success is still a success", func(t *testing.T) {
		t.Parallel()

		got := monitor.NewOutcome(at, monitor.ProbeResult{Success: true})
		require.NotNil(t, got.LatencyMs)
		require.Zero(t, *got.LatencyMs)
	})
}

type outcomeValidateCase struct {
	name    string
	give    monitor.Outcome
	wantErr bool
}

func TestOutcome_Validate(t *testing.T) {
	t.Parallel()

	tests := []outcomeValidateCase{
		{name: "success with latency", give: monitor.Outcome{Success: true, LatencyMs: ptrFloat(12)}},
		{name: "failure without latency", give: monitor.Outcome{Success: false}},
		{name: "success without latency", give: monitor.Outcome{Success: true}, wantErr: true},
		{name: "failure with latency", give: monitor.Outcome{Success: false, LatencyMs: ptrFloat(1)}, wantErr: true},
		{name: "negative latency", give: monitor.Outcome{Success: true, LatencyMs: ptrFloat(-1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, monitor.ErrInvalidOutcome)

				return
			}

			require.NoError(t, err)
		})
	}
}

type settingsValidateCase struct {
	name      string
	give      func(s *monitor.Settings)
	wantField string
}

func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []settingsValidateCase{
		{name: "defaults are valid", give: func(*monitor.Settings) {}},
		{name: "negative probe interval", give: func(s *monitor.Settings) { s.ProbeInterval = -time.Second }, wantField: "probe_interval"},
		{name: "zero probe interval", give: func(s *monitor.Settings) { s.ProbeInterval = 0 }, wantField: "probe_interval"},
		{name: "zero refresh interval", give: func(s *monitor.Settings) { s.RefreshInterval = 0 }, wantField: "refresh_interval"},
		{name: "fractional refresh interval", give: func(s *monitor.Settings) { s.RefreshInterval = 1500 * time.Microsecond }, wantField: "refresh_interval"},
		{name: "zero chart window", give: func(s *monitor.Settings) { s.ChartWindow = 0 }, wantField: "chart_window"},
		{name: "negative log window", give: func(s *monitor.Settings) { s.LogWindow = -5 }, wantField: "log_window"},
		{name: "fractional probe interval is fine", give: func(s *monitor.Settings) { s.ProbeInterval = 250 * time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := monitor.DefaultSettings()
			tt.give(&s)

			err := s.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, monitor.ErrValidation)

			var verr *monitor.ValidationError

			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantField, verr.Field)
			require.NotEmpty(t, verr.Reason)
		})
	}
}

func TestLiveSettings(t *testing.T) {
	t.Parallel()

	live := monitor.NewLiveSettings(monitor.DefaultSettings())
	require.Equal(t, monitor.DefaultSettings(), live.Load())

	next := monitor.DefaultSettings()
	next.ChartWindow = 10
	live.Store(next)

	next.ChartWindow = 99
	require.Equal(t, 10, live.Load().ChartWindow, "stored snapshot must not alias the caller's value")
}
