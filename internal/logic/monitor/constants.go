package monitor

import "time"

const (
	// ChartFailureSentinel is the chart value emitted for failed probes.
	// Real latencies are never negative.
	ChartFailureSentinel = -100.0

	DefaultProbeInterval   = 1 * time.Second
	DefaultRefreshInterval = 500 * time.Millisecond
	DefaultChartWindow     = 50
	DefaultLogWindow       = 20

	// percentScale converts a ratio into a percentage.
	percentScale = 100

	// appendTimeout bounds a single outcome write, which is detached from
	// loop cancellation so a started write is never cut in half.
	appendTimeout = 5 * time.Second

	// appendErrorLogEvery throttles repeated append failure logs during an outage.
	appendErrorLogEvery = 30 * time.Second
)
