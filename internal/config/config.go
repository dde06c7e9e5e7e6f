package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/skillcoder/pingmon/internal/infra/cronparser"
	"github.com/skillcoder/pingmon/internal/infra/logging"
)

// Config is the process configuration. Persisted monitor settings (probe
// interval, windows) live in the database, not here.
type Config struct {
	LogLevel            string
	LogFormat           string
	HTTPPort            string
	MetricsPort         string
	DBPath              string
	TargetHost          string
	ProbeTimeout        time.Duration
	ProbePrivileged     bool
	HealthCheckInterval time.Duration
	MaintenanceSchedule string // empty when maintenance is disabled
	MaintenanceTZ       string
	ShutdownTimeout     time.Duration
}

// MaintenanceEnabled reports whether a maintenance schedule is configured.
func (c *Config) MaintenanceEnabled() bool {
	return c.MaintenanceSchedule != ""
}

// Load reads the optional config file, then the environment, and validates the result.
func Load() (*Config, error) {
	src := source{file: map[string]string{}}

	if path := strings.TrimSpace(os.Getenv(envKeyConfigFile)); path != "" {
		f, err := readFile(path)
		if err != nil {
			return nil, err
		}

		src.file = f.values()
	}

	cfg := &Config{
		LogLevel:      src.get(envKeyLogLevel, defaultLogLevel),
		LogFormat:     src.get(envKeyLogFormat, defaultLogFormat),
		HTTPPort:      src.get(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort:   src.get(envKeyMetricsPort, defaultMetricsPort),
		DBPath:        src.get(envKeyDBPath, defaultDBPath),
		TargetHost:    src.get(envKeyTargetHost, defaultTargetHost),
		MaintenanceTZ: src.get(envKeyMaintenanceTZ, defaultMaintenanceTZ),
	}

	var err error

	if cfg.ProbeTimeout, err = src.duration(envKeyProbeTimeout, defaultProbeTimeout); err != nil {
		return nil, err
	}

	if cfg.HealthCheckInterval, err = src.duration(envKeyHealthCheckInterval, defaultHealthCheckInterval); err != nil {
		return nil, err
	}

	if cfg.ShutdownTimeout, err = src.duration(envKeyShutdownTimeout, defaultShutdownTimeout); err != nil {
		return nil, err
	}

	if cfg.ProbePrivileged, err = src.bool(envKeyProbePrivileged, false); err != nil {
		return nil, err
	}

	schedule := src.get(envKeyMaintenanceSchedule, defaultMaintenanceSchedule)
	if !strings.EqualFold(schedule, maintenanceOff) {
		cfg.MaintenanceSchedule = schedule
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("parse %s: %w", envKeyLogLevel, err)
	}

	if err := logging.ValidateFormat(c.LogFormat); err != nil {
		return fmt.Errorf("parse %s: %w", envKeyLogFormat, err)
	}

	if err := validatePort(c.HTTPPort); err != nil {
		return fmt.Errorf("parse %s: %w", envKeyHTTPPort, err)
	}

	if err := validatePort(c.MetricsPort); err != nil {
		return fmt.Errorf("parse %s: %w", envKeyMetricsPort, err)
	}

	if c.DBPath == "" {
		return fmt.Errorf("%s must not be empty", envKeyDBPath)
	}

	if c.TargetHost == "" {
		return fmt.Errorf("%s must not be empty", envKeyTargetHost)
	}

	if c.ProbeTimeout < envMinProbeTimeout || c.ProbeTimeout > envMaxProbeTimeout {
		return fmt.Errorf("%s must be between %s and %s, got %s",
			envKeyProbeTimeout, envMinProbeTimeout, envMaxProbeTimeout, c.ProbeTimeout)
	}

	if c.HealthCheckInterval < envMinHealthCheckInterval {
		return fmt.Errorf("%s must be at least %s, got %s", envKeyHealthCheckInterval, envMinHealthCheckInterval, c.HealthCheckInterval)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", envKeyShutdownTimeout, c.ShutdownTimeout)
	}

	if c.MaintenanceEnabled() {
		if _, err := cronparser.Parse(c.MaintenanceSchedule, c.MaintenanceTZ); err != nil {
			return fmt.Errorf("parse %s: %w", envKeyMaintenanceSchedule, err)
		}
	}

	return nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port %q: %w", port, err)
	}

	if n < 0 || n > 65535 {
		return fmt.Errorf("port %d out of range", n)
	}

	return nil
}

// source resolves a key from the environment first, then the config file.
type source struct {
	file map[string]string
}

func (s source) get(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	if value, ok := s.file[key]; ok {
		return strings.TrimSpace(value)
	}

	return defaultValue
}

func (s source) duration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := s.get(key, "")
	if raw == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return d, nil
}

func (s source) bool(key string, defaultValue bool) (bool, error) {
	raw := s.get(key, "")
	if raw == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}

	return b, nil
}
