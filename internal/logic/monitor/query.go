package monitor

import (
	"context"
	"fmt"
)

// Query answers consumer reads over the outcome log.
type Query struct {
	repo     Repository
	settings settingsSource
}

// NewQuery creates the read facade.
func NewQuery(repo Repository, settings settingsSource) *Query {
	return &Query{
		repo:     repo,
		settings: settings,
	}
}

// Recent returns up to limit most recent outcomes, oldest first.
func (q *Query) Recent(ctx context.Context, limit int) ([]Outcome, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("recent outcomes: %w", ErrInvalidLimit)
	}

	outcomes, err := q.repo.RecentOutcomesQuery(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent outcomes: %w", err)
	}

	return outcomes, nil
}

// RecentFailures returns up to limit most recent failed outcomes, oldest first.
func (q *Query) RecentFailures(ctx context.Context, limit int) ([]Outcome, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("recent failures: %w", ErrInvalidLimit)
	}

	outcomes, err := q.repo.RecentFailuresQuery(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent failures: %w", err)
	}

	return outcomes, nil
}

// Stats returns exact totals and the success percentage.
func (q *Query) Stats(ctx context.Context) (Stats, error) {
	counts, err := q.repo.CountsQuery(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	return computeStats(counts), nil
}

// ChartSeries returns the last window outcomes as chart points.
func (q *Query) ChartSeries(ctx context.Context, window int) ([]ChartPoint, error) {
	outcomes, err := q.Recent(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("chart series: %w", err)
	}

	return toChartSeries(outcomes), nil
}

// RecentAverageLatency sums success latencies over the last count outcomes
// and divides by count, not by the number of successes.
func (q *Query) RecentAverageLatency(ctx context.Context, count int) (float64, error) {
	outcomes, err := q.Recent(ctx, count)
	if err != nil {
		return 0, fmt.Errorf("recent average latency: %w", err)
	}

	return averageOverWindow(outcomes, count), nil
}

// RecentLog returns the table rows for the live log window.
func (q *Query) RecentLog(ctx context.Context) ([]Outcome, error) {
	return q.Recent(ctx, q.settings.Load().LogWindow)
}

// RecentFailuresLog returns the failure table rows for the live log window.
func (q *Query) RecentFailuresLog(ctx context.Context) ([]Outcome, error) {
	return q.RecentFailures(ctx, q.settings.Load().LogWindow)
}

// Chart returns the chart series for the live chart window.
func (q *Query) Chart(ctx context.Context) ([]ChartPoint, error) {
	return q.ChartSeries(ctx, q.settings.Load().ChartWindow)
}

// RecentLogAverageLatency averages over the live log window.
func (q *Query) RecentLogAverageLatency(ctx context.Context) (float64, error) {
	return q.RecentAverageLatency(ctx, q.settings.Load().LogWindow)
}

func computeStats(counts Counts) Stats {
	stats := Stats{
		Total:   counts.Success + counts.Fail,
		Success: counts.Success,
		Fail:    counts.Fail,
	}

	if stats.Total > 0 {
		stats.SuccessPercent = float64(stats.Success) / float64(stats.Total) * percentScale
	}

	return stats
}

func toChartSeries(outcomes []Outcome) []ChartPoint {
	points := make([]ChartPoint, 0, len(outcomes))

	for i := range outcomes {
		value := ChartFailureSentinel
		if outcomes[i].Success && outcomes[i].LatencyMs != nil {
			value = *outcomes[i].LatencyMs
		}

		points = append(points, ChartPoint{
			Timestamp: outcomes[i].Timestamp,
			Value:     value,
		})
	}

	return points
}

func averageOverWindow(outcomes []Outcome, count int) float64 {
	if count <= 0 {
		return 0
	}

	var sum float64

	for i := range outcomes {
		if outcomes[i].LatencyMs != nil {
			sum += *outcomes[i].LatencyMs
		}
	}

	return sum / float64(count)
}
