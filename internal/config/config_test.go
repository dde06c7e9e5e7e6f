package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/pingmon/internal/config"
)

var allKeys = []string{
	"PINGMON_CONFIG_FILE",
	"PINGMON_LOG_LEVEL",
	"PINGMON_LOG_FORMAT",
	"PINGMON_HTTP_PORT",
	"PINGMON_METRICS_PORT",
	"PINGMON_DB_PATH",
	"PINGMON_TARGET_HOST",
	"PINGMON_PROBE_TIMEOUT",
	"PINGMON_PROBE_PRIVILEGED",
	"PINGMON_HEALTHCHECK_INTERVAL",
	"PINGMON_MAINTENANCE_SCHEDULE",
	"PINGMON_MAINTENANCE_TZ",
	"PINGMON_SHUTDOWN_TIMEOUT",
}

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr bool
	wantCfg *config.Config
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func defaultConfig() *config.Config {
	return &config.Config{
		LogLevel:            "info",
		LogFormat:           "json",
		HTTPPort:            "8080",
		MetricsPort:         "9090",
		DBPath:              "ping_log.db",
		TargetHost:          "8.8.8.8",
		ProbeTimeout:        2 * time.Second,
		HealthCheckInterval: 10 * time.Second,
		MaintenanceSchedule: "30 2 * * 0",
		MaintenanceTZ:       "UTC",
		ShutdownTimeout:     5 * time.Second,
	}
}

func withConfig(mut func(c *config.Config)) *config.Config {
	c := defaultConfig()
	mut(c)

	return c
}

func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name:    "all defaults",
			wantCfg: defaultConfig(),
		},
		{
			name: "overrides",
			giveEnv: map[string]string{
				"PINGMON_HTTP_PORT":        "8181",
				"PINGMON_TARGET_HOST":      "example.org",
				"PINGMON_PROBE_TIMEOUT":    "750ms",
				"PINGMON_PROBE_PRIVILEGED": "true",
				"PINGMON_LOG_FORMAT":       "text",
				"PINGMON_LOG_LEVEL":        "debug",
			},
			wantCfg: withConfig(func(c *config.Config) {
				c.HTTPPort = "8181"
				c.TargetHost = "example.org"
				c.ProbeTimeout = 750 * time.Millisecond
				c.ProbePrivileged = true
				c.LogFormat = "text"
				c.LogLevel = "debug"
			}),
		},
		{
			name: "maintenance off",
			giveEnv: map[string]string{
				"PINGMON_MAINTENANCE_SCHEDULE": "OFF",
			},
			wantCfg: withConfig(func(c *config.Config) {
				c.MaintenanceSchedule = ""
			}),
		},
		{
			name: "maintenance descriptor with time zone",
			giveEnv: map[string]string{
				"PINGMON_MAINTENANCE_SCHEDULE": "@daily",
				"PINGMON_MAINTENANCE_TZ":       "Europe/Berlin",
			},
			wantCfg: withConfig(func(c *config.Config) {
				c.MaintenanceSchedule = "@daily"
				c.MaintenanceTZ = "Europe/Berlin"
			}),
		},
		{
			name:    "invalid probe timeout",
			giveEnv: map[string]string{"PINGMON_PROBE_TIMEOUT": "x"},
			wantErr: true,
		},
		{
			name:    "probe timeout too long",
			giveEnv: map[string]string{"PINGMON_PROBE_TIMEOUT": "2m"},
			wantErr: true,
		},
		{
			name:    "health check interval too short",
			giveEnv: map[string]string{"PINGMON_HEALTHCHECK_INTERVAL": "100ms"},
			wantErr: true,
		},
		{
			name:    "negative shutdown timeout",
			giveEnv: map[string]string{"PINGMON_SHUTDOWN_TIMEOUT": "-1s"},
			wantErr: true,
		},
		{
			name:    "invalid privileged flag",
			giveEnv: map[string]string{"PINGMON_PROBE_PRIVILEGED": "maybe"},
			wantErr: true,
		},
		{
			name:    "invalid port",
			giveEnv: map[string]string{"PINGMON_METRICS_PORT": "http"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			giveEnv: map[string]string{"PINGMON_LOG_LEVEL": "chatty"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			giveEnv: map[string]string{"PINGMON_LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "invalid maintenance schedule",
			giveEnv: map[string]string{"PINGMON_MAINTENANCE_SCHEDULE": "every sunday"},
			wantErr: true,
		},
		{
			name:    "missing config file",
			giveEnv: map[string]string{"PINGMON_CONFIG_FILE": "/nonexistent/pingmon.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantCfg, got)
			require.Equal(t, tt.wantCfg.MaintenanceSchedule != "", got.MaintenanceEnabled())
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "pingmon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /var/lib/pingmon/ping_log.db
target_host: 1.1.1.1
probe_timeout: 1s
probe_privileged: true
maintenance_schedule: "off"
http_port: "8081"
`), 0o600))

	t.Setenv("PINGMON_CONFIG_FILE", path)
	t.Setenv("PINGMON_TARGET_HOST", "9.9.9.9")

	got, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, withConfig(func(c *config.Config) {
		c.DBPath = "/var/lib/pingmon/ping_log.db"
		c.TargetHost = "9.9.9.9"
		c.ProbeTimeout = time.Second
		c.ProbePrivileged = true
		c.MaintenanceSchedule = ""
		c.HTTPPort = "8081"
	}), got)
}

func TestLoad_ConfigFileUnknownKey(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "pingmon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: 1.1.1.1\n"), 0o600))

	t.Setenv("PINGMON_CONFIG_FILE", path)

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "pingmon.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	t.Setenv("PINGMON_CONFIG_FILE", path)

	got, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), got)
}
