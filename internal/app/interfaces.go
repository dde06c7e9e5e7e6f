package app

import (
	"context"
	"os"
	"time"

	"github.com/skillcoder/pingmon/internal/infra/appstate"
	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
	"github.com/skillcoder/pingmon/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterChecker(checker healthcheck.Checker) error
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	Shutdown(ctx context.Context) error
	GetState() appstate.State
	GetStartTime() time.Time
	GetUptime() time.Duration
	IsHealthy() bool
	IsReady() bool
	Report() healthcheck.Report
}

// component is a long-lived part of the process started by Run.
type component interface {
	shutdown.Shutdowner
	Start(ctx context.Context) error
	Ready() <-chan struct{}
}
