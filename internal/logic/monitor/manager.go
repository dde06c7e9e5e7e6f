package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skillcoder/pingmon/internal/infra/metrics"
)

// SettingsManager loads, validates and persists settings and publishes them
// to the live snapshot.
type SettingsManager struct {
	logger *slog.Logger
	repo   Repository
	live   *LiveSettings
	mu     sync.Mutex
}

// NewSettingsManager creates a settings manager publishing into live.
func NewSettingsManager(
	logger *slog.Logger,
	repo Repository,
	live *LiveSettings,
) *SettingsManager {
	return &SettingsManager{
		logger: logger,
		repo:   repo,
		live:   live,
	}
}

// Load reads the persisted settings, falling back to defaults when none are
// stored, and makes the result live. Defaults are not written back.
func (m *SettingsManager) Load(ctx context.Context) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	settings, err := m.repo.LoadSettingsQuery(ctx)

	switch {
	case errors.Is(err, ErrSettingsNotFound):
		m.logger.InfoContext(ctx, "no persisted settings, using defaults")

		settings = DefaultSettings()
	case err != nil:
		return Settings{}, fmt.Errorf("load settings: %w", err)
	default:
		if verr := settings.Validate(); verr != nil {
			m.logger.WarnContext(ctx, "persisted settings are invalid, using defaults", "reason", verr)

			settings = DefaultSettings()
		}
	}

	m.live.Store(settings)

	return settings, nil
}

// Update validates and persists candidate, then makes it live. On any error
// the live settings keep their previous value.
func (m *SettingsManager) Update(ctx context.Context, candidate Settings) error {
	if err := candidate.Validate(); err != nil {
		metrics.RecordSettingsUpdate(metrics.ResultInvalid)

		return fmt.Errorf("update settings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.SaveSettingsCommand(ctx, candidate); err != nil {
		metrics.RecordSettingsUpdate(metrics.ResultError)

		return fmt.Errorf("update settings: %w", err)
	}

	m.live.Store(candidate)
	metrics.RecordSettingsUpdate(metrics.ResultSuccess)

	m.logger.InfoContext(ctx, "settings updated",
		"probeInterval", candidate.ProbeInterval,
		"refreshInterval", candidate.RefreshInterval,
		"chartWindow", candidate.ChartWindow,
		"logWindow", candidate.LogWindow,
	)

	return nil
}

// Current returns the live settings.
func (m *SettingsManager) Current() Settings {
	return m.live.Load()
}
