package icmp

import (
	"github.com/go-ping/ping"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

func toProbeResult(stats *ping.Statistics) monitor.ProbeResult {
	if stats == nil || stats.PacketsRecv == 0 {
		return monitor.ProbeResult{}
	}

	latency := stats.AvgRtt
	if latency < 0 {
		latency = 0
	}

	return monitor.ProbeResult{
		Success: true,
		Latency: latency,
	}
}
