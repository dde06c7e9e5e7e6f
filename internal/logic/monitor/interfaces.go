package monitor

import "context"

// Repository is the port for the durable outcome log and the settings row.
// Implementations are provided by adapters in the outbound layer and must
// wrap their failures with ErrStorage.
type Repository interface {
	AppendOutcomeCommand(
		ctx context.Context,
		outcome Outcome,
	) (int64, error)

	RecentOutcomesQuery(
		ctx context.Context,
		limit int,
	) ([]Outcome, error)

	RecentFailuresQuery(
		ctx context.Context,
		limit int,
	) ([]Outcome, error)

	CountsQuery(ctx context.Context) (Counts, error)

	LoadSettingsQuery(ctx context.Context) (Settings, error)

	SaveSettingsCommand(
		ctx context.Context,
		settings Settings,
	) error
}

// Prober performs one bounded reachability check. Failures are reported
// as an unsuccessful result, never as an error.
type Prober interface {
	Probe(ctx context.Context, host string) ProbeResult
}

// settingsSource provides the live settings snapshot.
type settingsSource interface {
	Load() Settings
}
