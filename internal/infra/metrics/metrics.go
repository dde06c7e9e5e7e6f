package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var probesTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "pingmon_probes_total",
		Help: "Total number of completed probes by result.",
	},
	[]string{"result"},
)

var probeLatencySeconds = promauto.With(prometheus.DefaultRegisterer).NewHistogram(
	prometheus.HistogramOpts{
		Name:    "pingmon_probe_latency_seconds",
		Help:    "Round-trip latency of successful probes.",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2},
	},
)

var outcomeAppendFailuresTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "pingmon_outcome_append_failures_total",
		Help: "Total number of probe outcomes dropped because they could not be stored.",
	},
)

var settingsUpdatesTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "pingmon_settings_updates_total",
		Help: "Total number of settings update attempts by result.",
	},
	[]string{"result"},
)

var maintenanceRunsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "pingmon_maintenance_runs_total",
		Help: "Total number of scheduled database maintenance runs by result.",
	},
	[]string{"result"},
)

// RecordProbe counts a completed probe and observes its latency on success.
func RecordProbe(success bool, latency time.Duration) {
	if !success {
		probesTotal.WithLabelValues(ResultFailure).Inc()

		return
	}

	probesTotal.WithLabelValues(ResultSuccess).Inc()
	probeLatencySeconds.Observe(latency.Seconds())
}

// RecordAppendFailure counts an outcome that could not be persisted.
func RecordAppendFailure() {
	outcomeAppendFailuresTotal.Inc()
}

// RecordSettingsUpdate counts a settings update attempt.
func RecordSettingsUpdate(result string) {
	settingsUpdatesTotal.WithLabelValues(result).Inc()
}

// RecordMaintenanceRun counts a maintenance run.
func RecordMaintenanceRun(result string) {
	maintenanceRunsTotal.WithLabelValues(result).Inc()
}
