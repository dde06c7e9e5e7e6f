package config

import "time"

// Env key constants. All pingmon configuration env vars use the PINGMON_ prefix;
// duration values support explicit units (e.g. 500ms, 2s, 1m).

// Optional YAML file with base values. Env vars override values from the file.
const envKeyConfigFile = "PINGMON_CONFIG_FILE"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "PINGMON_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "PINGMON_LOG_FORMAT"

// Port for the read API and health endpoints.
const envKeyHTTPPort = "PINGMON_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "PINGMON_METRICS_PORT"

// Path of the SQLite file holding the outcome log and settings.
const envKeyDBPath = "PINGMON_DB_PATH"

// Host (name or address) to probe.
const envKeyTargetHost = "PINGMON_TARGET_HOST"

// Upper bound for a single probe.
const (
	envKeyProbeTimeout = "PINGMON_PROBE_TIMEOUT"
	envMinProbeTimeout = 10 * time.Millisecond
	envMaxProbeTimeout = time.Minute
)

// Send echo requests over a raw socket instead of unprivileged UDP.
const envKeyProbePrivileged = "PINGMON_PROBE_PRIVILEGED"

// Health check interval.
const (
	envKeyHealthCheckInterval = "PINGMON_HEALTHCHECK_INTERVAL"
	envMinHealthCheckInterval = time.Second
)

// Cron expression for database maintenance; "off" disables it.
const (
	envKeyMaintenanceSchedule = "PINGMON_MAINTENANCE_SCHEDULE"
	maintenanceOff            = "off"
)

// Time zone (IANA) of the maintenance schedule.
const envKeyMaintenanceTZ = "PINGMON_MAINTENANCE_TZ"

// Upper bound for the whole graceful shutdown.
const envKeyShutdownTimeout = "PINGMON_SHUTDOWN_TIMEOUT"

const (
	defaultLogLevel            = "info"
	defaultLogFormat           = "json"
	defaultHTTPPort            = "8080"
	defaultMetricsPort         = "9090"
	defaultDBPath              = "ping_log.db"
	defaultTargetHost          = "8.8.8.8"
	defaultProbeTimeout        = 2 * time.Second
	defaultHealthCheckInterval = 10 * time.Second
	defaultMaintenanceSchedule = "30 2 * * 0"
	defaultMaintenanceTZ       = "UTC"
	defaultShutdownTimeout     = 5 * time.Second
)
