package monitor

import (
	"fmt"
	"time"
)

// Outcome is one persisted probe result.
type Outcome struct {
	ID        int64
	Timestamp time.Time
	Success   bool
	LatencyMs *float64
}

// NewOutcome builds an outcome from a probe result, keeping latency only for successes.
func NewOutcome(at time.Time, result ProbeResult) Outcome {
	out := Outcome{
		Timestamp: at,
		Success:   result.Success,
	}

	if result.Success {
		ms := float64(result.Latency) / float64(time.Millisecond)
		if ms < 0 {
			ms = 0
		}

		out.LatencyMs = &ms
	}

	return out
}

// Validate checks that latency is present exactly when the probe succeeded.
func (o Outcome) Validate() error {
	switch {
	case o.Success && o.LatencyMs == nil:
		return fmt.Errorf("%w: success without latency", ErrInvalidOutcome)
	case !o.Success && o.LatencyMs != nil:
		return fmt.Errorf("%w: failure with latency", ErrInvalidOutcome)
	case o.LatencyMs != nil && *o.LatencyMs < 0:
		return fmt.Errorf("%w: negative latency %v", ErrInvalidOutcome, *o.LatencyMs)
	}

	return nil
}

// ProbeResult is what a single reachability check reports.
type ProbeResult struct {
	Success bool
	Latency time.Duration
}

// Counts are exact totals over the whole outcome log.
type Counts struct {
	Success int64
	Fail    int64
}

// Stats are the aggregate numbers shown to consumers.
type Stats struct {
	Total          int64
	Success        int64
	Fail           int64
	SuccessPercent float64
}

// ChartPoint is one sample of the latency chart; failures carry ChartFailureSentinel.
type ChartPoint struct {
	Timestamp time.Time
	Value     float64
}

// Settings is the persisted runtime configuration. It is replaced as a whole.
type Settings struct {
	ProbeInterval   time.Duration
	RefreshInterval time.Duration
	ChartWindow     int
	LogWindow       int
}

// DefaultSettings returns the settings used when nothing has been persisted yet.
func DefaultSettings() Settings {
	return Settings{
		ProbeInterval:   DefaultProbeInterval,
		RefreshInterval: DefaultRefreshInterval,
		ChartWindow:     DefaultChartWindow,
		LogWindow:       DefaultLogWindow,
	}
}

// Validate reports the first field that is not strictly positive.
// RefreshInterval is stored in whole milliseconds.
func (s Settings) Validate() error {
	switch {
	case s.ProbeInterval <= 0:
		return &ValidationError{Field: "probe_interval", Reason: "must be positive"}
	case s.RefreshInterval <= 0:
		return &ValidationError{Field: "refresh_interval", Reason: "must be positive"}
	case s.RefreshInterval%time.Millisecond != 0:
		return &ValidationError{Field: "refresh_interval", Reason: "must be a whole number of milliseconds"}
	case s.ChartWindow <= 0:
		return &ValidationError{Field: "chart_window", Reason: "must be positive"}
	case s.LogWindow <= 0:
		return &ValidationError{Field: "log_window", Reason: "must be positive"}
	}

	return nil
}
