package monitor_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
	"github.com/skillcoder/pingmon/internal/logic/monitor/mocks"
)

var errDiskGone = fmt.Errorf("%w: disk gone", monitor.ErrStorage)

func testOutcomes() []monitor.Outcome {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return []monitor.Outcome{
		{ID: 1, Timestamp: base, Success: true, LatencyMs: ptrFloat(20)},
		{ID: 2, Timestamp: base.Add(time.Second), Success: false},
		{ID: 3, Timestamp: base.Add(2 * time.Second), Success: true, LatencyMs: ptrFloat(35)},
	}
}

func TestQuery_Stats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		giveCounts  monitor.Counts
		wantTotal   int64
		wantPercent float64
	}{
		{name: "empty log", giveCounts: monitor.Counts{}, wantTotal: 0, wantPercent: 0},
		{name: "two of three", giveCounts: monitor.Counts{Success: 2, Fail: 1}, wantTotal: 3, wantPercent: 66.67},
		{name: "all failed", giveCounts: monitor.Counts{Fail: 4}, wantTotal: 4, wantPercent: 0},
		{name: "all succeeded", giveCounts: monitor.Counts{Success: 7}, wantTotal: 7, wantPercent: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockRepository(t)
			repo.EXPECT().CountsQuery(mock.Anything).Return(tt.giveCounts, nil).Once()

			q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

			got, err := q.Stats(t.Context())
			require.NoError(t, err)
			require.Equal(t, tt.wantTotal, got.Total)
			require.Equal(t, got.Total, got.Success+got.Fail)
			require.InDelta(t, tt.wantPercent, got.SuccessPercent, 0.01)
			require.GreaterOrEqual(t, got.SuccessPercent, 0.0)
			require.LessOrEqual(t, got.SuccessPercent, 100.0)
		})
	}
}

func TestQuery_StatsStorageError(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().CountsQuery(mock.Anything).Return(monitor.Counts{}, errDiskGone).Once()

	q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

	_, err := q.Stats(t.Context())
	require.ErrorIs(t, err, monitor.ErrStorage)
}

func TestQuery_Recent(t *testing.T) {
	t.Parallel()

	t.Run("passes limit through", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		repo.EXPECT().RecentOutcomesQuery(mock.Anything, 2).Return(testOutcomes()[1:], nil).Once()

		q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

		got, err := q.Recent(t.Context(), 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, int64(2), got[0].ID)
		require.Equal(t, int64(3), got[1].ID)
	})

	t.Run("non positive limit is rejected before reading", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

		_, err := q.Recent(t.Context(), 0)
		require.ErrorIs(t, err, monitor.ErrInvalidLimit)

		_, err = q.RecentFailures(t.Context(), -1)
		require.ErrorIs(t, err, monitor.ErrInvalidLimit)
	})

	t.Run("log window comes from live settings", func(t *testing.T) {
		t.Parallel()

		live := monitor.NewLiveSettings(monitor.DefaultSettings())
		repo := mocks.NewMockRepository(t)
		repo.EXPECT().RecentOutcomesQuery(mock.Anything, 20).Return(nil, nil).Once()
		repo.EXPECT().RecentOutcomesQuery(mock.Anything, 5).Return(nil, nil).Once()
		repo.EXPECT().RecentFailuresQuery(mock.Anything, 5).Return(nil, nil).Once()

		q := monitor.NewQuery(repo, live)

		_, err := q.RecentLog(t.Context())
		require.NoError(t, err)

		next := monitor.DefaultSettings()
		next.LogWindow = 5
		live.Store(next)

		_, err = q.RecentLog(t.Context())
		require.NoError(t, err)

		_, err = q.RecentFailuresLog(t.Context())
		require.NoError(t, err)
	})

	t.Run("storage error is surfaced", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		repo.EXPECT().RecentFailuresQuery(mock.Anything, 3).Return(nil, errDiskGone).Once()

		q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

		_, err := q.RecentFailures(t.Context(), 3)
		require.True(t, errors.Is(err, monitor.ErrStorage))
	})
}

func TestQuery_ChartSeries(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().RecentOutcomesQuery(mock.Anything, 50).Return(testOutcomes(), nil).Once()

	q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

	got, err := q.Chart(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 3)

	want := []float64{20, monitor.ChartFailureSentinel, 35}
	for i, point := range got {
		require.Equal(t, testOutcomes()[i].Timestamp, point.Timestamp)
		require.InDelta(t, want[i], point.Value, 1e-9)
	}
}

func TestQuery_RecentAverageLatency(t *testing.T) {
	t.Parallel()

	t.Run("divides by the requested count", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		repo.EXPECT().RecentOutcomesQuery(mock.Anything, 3).Return(testOutcomes(), nil).Once()

		q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

		got, err := q.RecentAverageLatency(t.Context(), 3)
		require.NoError(t, err)
		require.InDelta(t, (20.0+35.0)/3, got, 1e-9)
	})

	t.Run("short history still divides by the requested count", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		repo.EXPECT().RecentOutcomesQuery(mock.Anything, 20).Return(testOutcomes(), nil).Once()

		q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

		got, err := q.RecentLogAverageLatency(t.Context())
		require.NoError(t, err)
		require.InDelta(t, 55.0/20, got, 1e-9)
	})

	t.Run("invalid count", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		q := monitor.NewQuery(repo, monitor.NewLiveSettings(monitor.DefaultSettings()))

		_, err := q.RecentAverageLatency(t.Context(), 0)
		require.ErrorIs(t, err, monitor.ErrInvalidLimit)
	})
}
