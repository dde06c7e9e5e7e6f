package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"math"
	"time"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

// legacyTimestampLayout is the local, zone-less ISO-8601 form found in files
// written before timestamps carried an offset.
const legacyTimestampLayout = "2006-01-02T15:04:05.999999999"

type outcomeRow struct {
	ID        int64           `db:"id"`
	Timestamp sql.NullString  `db:"timestamp"`
	Success   sql.NullInt64   `db:"success"`
	LatencyMs sql.NullFloat64 `db:"latency_ms"`
}

type settingsRow struct {
	PingInterval    sql.NullFloat64 `db:"ping_interval"`
	RefreshInterval sql.NullInt64   `db:"refresh_interval"`
	CartLimit       sql.NullInt64   `db:"cart_limit"`
	LogsLimit       sql.NullInt64   `db:"logs_limit"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}

	return time.ParseInLocation(legacyTimestampLayout, s, time.Local)
}

func toNullLatency(latencyMs *float64) sql.NullFloat64 {
	if latencyMs == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *latencyMs, Valid: true}
}

func toDomainOutcome(
	ctx context.Context,
	logger *slog.Logger,
	row *outcomeRow,
) monitor.Outcome {
	out := monitor.Outcome{
		ID:      row.ID,
		Success: row.Success.Valid && row.Success.Int64 != 0,
	}

	if row.Timestamp.Valid {
		ts, err := parseTimestamp(row.Timestamp.String)
		if err != nil {
			logger.WarnContext(ctx, "unparsable outcome timestamp, leaving it empty",
				"id", row.ID,
				"timestamp", row.Timestamp.String,
				"reason", err,
			)
		} else {
			out.Timestamp = ts
		}
	}

	if out.Success && row.LatencyMs.Valid {
		latency := row.LatencyMs.Float64
		out.LatencyMs = &latency
	}

	return out
}

func toDomainOutcomes(
	ctx context.Context,
	logger *slog.Logger,
	rows []outcomeRow,
) []monitor.Outcome {
	out := make([]monitor.Outcome, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainOutcome(ctx, logger, &rows[i]))
	}

	return out
}

// toDomainSettings reports false when any column is NULL.
func toDomainSettings(row *settingsRow) (monitor.Settings, bool) {
	if !row.PingInterval.Valid || !row.RefreshInterval.Valid ||
		!row.CartLimit.Valid || !row.LogsLimit.Valid {
		return monitor.Settings{}, false
	}

	return monitor.Settings{
		ProbeInterval:   time.Duration(math.Round(row.PingInterval.Float64 * float64(time.Second))),
		RefreshInterval: time.Duration(row.RefreshInterval.Int64) * time.Millisecond,
		ChartWindow:     int(row.CartLimit.Int64),
		LogWindow:       int(row.LogsLimit.Int64),
	}, true
}

func toSettingsRow(s monitor.Settings) settingsRow {
	return settingsRow{
		PingInterval:    sql.NullFloat64{Float64: s.ProbeInterval.Seconds(), Valid: true},
		RefreshInterval: sql.NullInt64{Int64: s.RefreshInterval.Milliseconds(), Valid: true},
		CartLimit:       sql.NullInt64{Int64: int64(s.ChartWindow), Valid: true},
		LogsLimit:       sql.NullInt64{Int64: int64(s.LogWindow), Valid: true},
	}
}
