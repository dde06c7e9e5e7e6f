package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the env keys. Empty values leave the defaults in place.
type fileConfig struct {
	LogLevel            string `yaml:"log_level"`
	LogFormat           string `yaml:"log_format"`
	HTTPPort            string `yaml:"http_port"`
	MetricsPort         string `yaml:"metrics_port"`
	DBPath              string `yaml:"db_path"`
	TargetHost          string `yaml:"target_host"`
	ProbeTimeout        string `yaml:"probe_timeout"`
	ProbePrivileged     *bool  `yaml:"probe_privileged"`
	HealthCheckInterval string `yaml:"healthcheck_interval"`
	MaintenanceSchedule string `yaml:"maintenance_schedule"`
	MaintenanceTZ       string `yaml:"maintenance_tz"`
	ShutdownTimeout     string `yaml:"shutdown_timeout"`
}

func readFile(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	var out fileConfig

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return &out, nil
}

// values returns the file settings keyed like their env vars.
func (f *fileConfig) values() map[string]string {
	out := map[string]string{
		envKeyLogLevel:            f.LogLevel,
		envKeyLogFormat:           f.LogFormat,
		envKeyHTTPPort:            f.HTTPPort,
		envKeyMetricsPort:         f.MetricsPort,
		envKeyDBPath:              f.DBPath,
		envKeyTargetHost:          f.TargetHost,
		envKeyProbeTimeout:        f.ProbeTimeout,
		envKeyHealthCheckInterval: f.HealthCheckInterval,
		envKeyMaintenanceSchedule: f.MaintenanceSchedule,
		envKeyMaintenanceTZ:       f.MaintenanceTZ,
		envKeyShutdownTimeout:     f.ShutdownTimeout,
	}

	if f.ProbePrivileged != nil {
		out[envKeyProbePrivileged] = fmt.Sprint(*f.ProbePrivileged)
	}

	for k, v := range out {
		if strings.TrimSpace(v) == "" {
			delete(out, k)
		}
	}

	return out
}
