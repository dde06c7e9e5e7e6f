package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillcoder/pingmon/internal/adapters/outbound/icmp"
	"github.com/skillcoder/pingmon/internal/adapters/outbound/sqlite"
	"github.com/skillcoder/pingmon/internal/config"
	"github.com/skillcoder/pingmon/internal/httpserver"
	"github.com/skillcoder/pingmon/internal/infra/cronparser"
	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
	"github.com/skillcoder/pingmon/internal/infra/shutdown"
	"github.com/skillcoder/pingmon/internal/logic/maintenance"
	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

type App struct {
	logger     *slog.Logger
	appState   appstater
	components []component
}

// New opens the database, loads the persisted settings and wires every
// component. Components are registered for shutdown in start order, so the
// store is closed last.
func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	checks component,
) (_ *App, err error) {
	store, err := sqlite.Open(ctx, logger, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	defer func() {
		if err != nil {
			if closeErr := store.Shutdown(context.WithoutCancel(ctx)); closeErr != nil {
				logger.ErrorContext(ctx, "failed to close store", "reason", closeErr)
			}
		}
	}()

	if err := appState.RegisterShutdowner(store); err != nil {
		return nil, fmt.Errorf("register store: %w", err)
	}

	if err := appState.RegisterChecker(store); err != nil {
		return nil, fmt.Errorf("register store: %w", err)
	}

	live := monitor.NewLiveSettings(monitor.DefaultSettings())
	manager := monitor.NewSettingsManager(logger, store, live)

	settings, err := manager.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger.InfoContext(ctx, "settings loaded",
		"probeInterval", settings.ProbeInterval,
		"refreshInterval", settings.RefreshInterval,
		"chartWindow", settings.ChartWindow,
		"logWindow", settings.LogWindow,
	)

	prober := icmp.New(logger, cfg.ProbeTimeout, cfg.ProbePrivileged)
	scheduler := monitor.NewScheduler(logger, store, prober, live, cfg.TargetHost, cfg.ProbeTimeout)
	query := monitor.NewQuery(store, live)

	components := []component{scheduler}
	checkers := []healthcheck.Checker{scheduler}

	if cfg.MaintenanceEnabled() {
		schedule, err := cronparser.Parse(cfg.MaintenanceSchedule, cfg.MaintenanceTZ)
		if err != nil {
			return nil, fmt.Errorf("parse maintenance schedule: %w", err)
		}

		svc := maintenance.New(logger, store, schedule)
		components = append(components, svc)
		checkers = append(checkers, svc)
	} else {
		logger.InfoContext(ctx, "database maintenance disabled")
	}

	server := httpserver.New(logger, appState, query, manager, cfg.HTTPPort)
	metricsServer := httpserver.NewMetricsServer(logger, cfg.MetricsPort)

	components = append(components, checks, server, metricsServer)
	checkers = append(checkers, server, metricsServer)

	for _, c := range checkers {
		if err := appState.RegisterChecker(c); err != nil {
			return nil, fmt.Errorf("register checker %s: %w", c.Name(), err)
		}
	}

	for _, c := range components {
		if err := appState.RegisterShutdowner(c); err != nil {
			return nil, fmt.Errorf("register shutdowner %s: %w", c.Name(), err)
		}
	}

	return &App{
		logger:     logger,
		appState:   appState,
		components: components,
	}, nil
}

// Run starts every component, waits for a termination signal or ctx
// cancellation and then shuts everything down.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	signals := shutdown.New(a.logger, a.appState)
	go signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	runErr := a.start(ctx)
	if runErr == nil {
		<-ctx.Done()
	}

	a.logger.InfoContext(ctx, "stopping application")

	if err := a.appState.Shutdown(ctx); err != nil {
		return errors.Join(runErr, fmt.Errorf("shutdown application: %w", err))
	}

	return runErr
}

func (a *App) start(ctx context.Context) error {
	readies := make([]<-chan struct{}, 0, len(a.components))

	for _, c := range a.components {
		if err := c.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", c.Name(), err)
		}

		readies = append(readies, c.Ready())
	}

	select {
	case <-ctx.Done():
		return nil
	case <-allChannelsClose(ctx, a.logger, readies...):
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running: %w", err)
	}

	return nil
}

// allChannelsClose returns a channel that is closed once every input channel
// is closed.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "context done while waiting for components", "pending", len(chans)-i)

				for _, rest := range chans[i:] {
					<-rest
				}

				return
			}
		}
	}()

	return out
}
