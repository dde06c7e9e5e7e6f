package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

const (
	driverName  = "sqlite3"
	busyTimeout = 5 * time.Second
)

const (
	insertOutcomeQuery = `INSERT INTO ping_log (timestamp, success, latency_ms) VALUES (?, ?, ?)`

	recentOutcomesQuery = `
		SELECT id, timestamp, success, latency_ms FROM (
			SELECT id, timestamp, success, latency_ms
			FROM ping_log
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC`

	recentFailuresQuery = `
		SELECT id, timestamp, success, latency_ms FROM (
			SELECT id, timestamp, success, latency_ms
			FROM ping_log
			WHERE success = 0 OR success IS NULL
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC`

	countsQuery = `
		SELECT
			COALESCE(SUM(CASE WHEN success <> 0 THEN 1 ELSE 0 END), 0) AS success,
			COALESCE(SUM(CASE WHEN success = 0 OR success IS NULL THEN 1 ELSE 0 END), 0) AS fail
		FROM ping_log`

	loadSettingsQuery = `
		SELECT ping_interval, refresh_interval, cart_limit, logs_limit
		FROM settings
		WHERE id = 1`

	saveSettingsQuery = `
		INSERT INTO settings (id, ping_interval, refresh_interval, cart_limit, logs_limit)
		VALUES (1, :ping_interval, :refresh_interval, :cart_limit, :logs_limit)
		ON CONFLICT(id) DO UPDATE SET
			ping_interval = excluded.ping_interval,
			refresh_interval = excluded.refresh_interval,
			cart_limit = excluded.cart_limit,
			logs_limit = excluded.logs_limit`
)

// Store is the SQLite implementation of monitor.Repository. Every call is a
// single statement, so each append or settings save is atomic on its own.
type Store struct {
	logger *slog.Logger
	db     *sqlx.DB
	now    func() time.Time
}

var _ monitor.Repository = (*Store)(nil)

// Open opens (creating if needed) the database file at path in WAL mode and
// migrates its schema.
func Open(ctx context.Context, logger *slog.Logger, path string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, dsn(path))
	if err != nil {
		return nil, storageError("open database", err)
	}

	if err := migrateUp(db); err != nil {
		_ = db.Close()

		return nil, storageError("migrate database", err)
	}

	logger.InfoContext(ctx, "database opened", "path", path)

	return &Store{
		logger: logger,
		db:     db,
		now:    time.Now,
	}, nil
}

func dsn(path string) string {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", fmt.Sprintf("%d", busyTimeout.Milliseconds()))
	params.Set("_synchronous", "FULL")

	return "file:" + path + "?" + params.Encode()
}

// Name returns the name of the store component
func (s *Store) Name() string {
	return "sqlite-store"
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storageError("ping database", err)
	}

	return nil
}

// Optimize refreshes query planner statistics and truncates the WAL file.
// It never removes rows.
func (s *Store) Optimize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
		return storageError("optimize database", err)
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return storageError("checkpoint wal", err)
	}

	return nil
}

// Shutdown closes the database. Pending statements finish first.
func (s *Store) Shutdown(ctx context.Context) error {
	s.logger.InfoContext(ctx, "closing database")

	if err := s.db.Close(); err != nil {
		return storageError("close database", err)
	}

	s.logger.InfoContext(ctx, "database shut downed")

	return nil
}

func (s *Store) AppendOutcomeCommand(
	ctx context.Context,
	outcome monitor.Outcome,
) (int64, error) {
	if err := outcome.Validate(); err != nil {
		return 0, fmt.Errorf("append outcome: %w", err)
	}

	if outcome.Timestamp.IsZero() {
		outcome.Timestamp = s.now()
	}

	success := 0
	if outcome.Success {
		success = 1
	}

	res, err := s.db.ExecContext(ctx, insertOutcomeQuery,
		formatTimestamp(outcome.Timestamp),
		success,
		toNullLatency(outcome.LatencyMs),
	)
	if err != nil {
		return 0, storageError("append outcome", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageError("append outcome", err)
	}

	return id, nil
}

func (s *Store) RecentOutcomesQuery(
	ctx context.Context,
	limit int,
) ([]monitor.Outcome, error) {
	return s.selectOutcomes(ctx, "recent outcomes", recentOutcomesQuery, limit)
}

func (s *Store) RecentFailuresQuery(
	ctx context.Context,
	limit int,
) ([]monitor.Outcome, error) {
	return s.selectOutcomes(ctx, "recent failures", recentFailuresQuery, limit)
}

func (s *Store) selectOutcomes(
	ctx context.Context,
	op string,
	query string,
	limit int,
) ([]monitor.Outcome, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, monitor.ErrInvalidLimit)
	}

	var rows []outcomeRow
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, storageError(op, err)
	}

	return toDomainOutcomes(ctx, s.logger, rows), nil
}

func (s *Store) CountsQuery(ctx context.Context) (monitor.Counts, error) {
	var counts struct {
		Success int64 `db:"success"`
		Fail    int64 `db:"fail"`
	}

	if err := s.db.GetContext(ctx, &counts, countsQuery); err != nil {
		return monitor.Counts{}, storageError("count outcomes", err)
	}

	return monitor.Counts{
		Success: counts.Success,
		Fail:    counts.Fail,
	}, nil
}

func (s *Store) LoadSettingsQuery(ctx context.Context) (monitor.Settings, error) {
	var row settingsRow

	err := s.db.GetContext(ctx, &row, loadSettingsQuery)
	if errors.Is(err, sql.ErrNoRows) {
		return monitor.Settings{}, fmt.Errorf("load settings: %w", monitor.ErrSettingsNotFound)
	}

	if err != nil {
		return monitor.Settings{}, storageError("load settings", err)
	}

	settings, ok := toDomainSettings(&row)
	if !ok {
		return monitor.Settings{}, fmt.Errorf("load settings: incomplete row: %w", monitor.ErrSettingsNotFound)
	}

	return settings, nil
}

func (s *Store) SaveSettingsCommand(
	ctx context.Context,
	settings monitor.Settings,
) error {
	if _, err := s.db.NamedExecContext(ctx, saveSettingsQuery, toSettingsRow(settings)); err != nil {
		return storageError("save settings", err)
	}

	return nil
}
