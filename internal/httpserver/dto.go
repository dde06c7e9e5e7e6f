package httpserver

import (
	"math"
	"time"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

type outcomeResponse struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	LatencyMs *float64  `json:"latency_ms"`
}

type outcomesResponse struct {
	Outcomes []outcomeResponse `json:"outcomes"`
}

type statsResponse struct {
	Total          int64   `json:"total"`
	Success        int64   `json:"success"`
	Fail           int64   `json:"fail"`
	SuccessPercent float64 `json:"success_percent"`
}

type chartPointResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

type chartResponse struct {
	Points []chartPointResponse `json:"points"`
}

type averageLatencyResponse struct {
	Count            int     `json:"count"`
	AverageLatencyMs float64 `json:"average_latency_ms"`
}

// settingsPayload uses the units of the settings table: seconds for the
// probe interval and whole milliseconds for the refresh interval.
type settingsPayload struct {
	ProbeInterval   float64 `json:"probe_interval"`
	RefreshInterval int64   `json:"refresh_interval"`
	ChartWindow     int     `json:"chart_window"`
	LogWindow       int     `json:"log_window"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func toOutcomesResponse(outcomes []monitor.Outcome) outcomesResponse {
	out := outcomesResponse{Outcomes: make([]outcomeResponse, 0, len(outcomes))}

	for i := range outcomes {
		out.Outcomes = append(out.Outcomes, outcomeResponse{
			ID:        outcomes[i].ID,
			Timestamp: outcomes[i].Timestamp,
			Success:   outcomes[i].Success,
			LatencyMs: outcomes[i].LatencyMs,
		})
	}

	return out
}

func toStatsResponse(stats monitor.Stats) statsResponse {
	return statsResponse{
		Total:          stats.Total,
		Success:        stats.Success,
		Fail:           stats.Fail,
		SuccessPercent: stats.SuccessPercent,
	}
}

func toChartResponse(points []monitor.ChartPoint) chartResponse {
	out := chartResponse{Points: make([]chartPointResponse, 0, len(points))}

	for _, p := range points {
		out.Points = append(out.Points, chartPointResponse{
			Timestamp: p.Timestamp,
			Value:     p.Value,
		})
	}

	return out
}

func toSettingsPayload(s monitor.Settings) settingsPayload {
	return settingsPayload{
		ProbeInterval:   s.ProbeInterval.Seconds(),
		RefreshInterval: s.RefreshInterval.Milliseconds(),
		ChartWindow:     s.ChartWindow,
		LogWindow:       s.LogWindow,
	}
}

// Largest magnitudes that still fit a time.Duration.
const (
	maxProbeIntervalSec  = float64(math.MaxInt64) / float64(time.Second)
	maxRefreshIntervalMs = math.MaxInt64 / int64(time.Millisecond)
)

// toDomain converts the payload, rejecting intervals a time.Duration cannot hold.
func (p settingsPayload) toDomain() (monitor.Settings, error) {
	if math.IsNaN(p.ProbeInterval) || math.Abs(p.ProbeInterval) >= maxProbeIntervalSec {
		return monitor.Settings{}, &monitor.ValidationError{Field: "probe_interval", Reason: "out of range"}
	}

	if p.RefreshInterval > maxRefreshIntervalMs || p.RefreshInterval < -maxRefreshIntervalMs {
		return monitor.Settings{}, &monitor.ValidationError{Field: "refresh_interval", Reason: "out of range"}
	}

	return monitor.Settings{
		ProbeInterval:   time.Duration(p.ProbeInterval * float64(time.Second)),
		RefreshInterval: time.Duration(p.RefreshInterval) * time.Millisecond,
		ChartWindow:     p.ChartWindow,
		LogWindow:       p.LogWindow,
	}, nil
}
