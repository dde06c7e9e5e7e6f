package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/pingmon/internal/infra/appstate"
	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	Report() healthcheck.Report
}

// outcomeReader serves the read side of the outcome log.
type outcomeReader interface {
	Recent(ctx context.Context, limit int) ([]monitor.Outcome, error)
	RecentFailures(ctx context.Context, limit int) ([]monitor.Outcome, error)
	RecentLog(ctx context.Context) ([]monitor.Outcome, error)
	RecentFailuresLog(ctx context.Context) ([]monitor.Outcome, error)
	Stats(ctx context.Context) (monitor.Stats, error)
	ChartSeries(ctx context.Context, window int) ([]monitor.ChartPoint, error)
	Chart(ctx context.Context) ([]monitor.ChartPoint, error)
	RecentAverageLatency(ctx context.Context, count int) (float64, error)
}

type settingsEditor interface {
	Current() monitor.Settings
	Update(ctx context.Context, candidate monitor.Settings) error
}
