package healthcheck

import (
	"slices"
	"time"
)

const (
	windowSize = 60
	p90        = 90
	percentMax = 100
)

type sample struct {
	at   time.Time
	took time.Duration
	err  error
}

// window keeps the last windowSize samples of one checker. It is guarded by
// the owning Service.
type window struct {
	samples []sample
	next    int
}

func newWindow() *window {
	return &window{samples: make([]sample, 0, windowSize)}
}

func (w *window) add(s sample) {
	if len(w.samples) < windowSize {
		w.samples = append(w.samples, s)

		return
	}

	w.samples[w.next] = s
	w.next = (w.next + 1) % windowSize
}

// last returns the most recent sample, if any.
func (w *window) last() (sample, bool) {
	if len(w.samples) == 0 {
		return sample{}, false
	}

	if len(w.samples) < windowSize {
		return w.samples[len(w.samples)-1], true
	}

	return w.samples[(w.next+windowSize-1)%windowSize], true
}

// Summary describes the samples currently in a checker's window.
type Summary struct {
	Checks     int           `json:"checks"`
	Failures   int           `json:"failures"`
	AvgLatency time.Duration `json:"avgLatency"`
	P90Latency time.Duration `json:"p90Latency"`
	MaxLatency time.Duration `json:"maxLatency"`
}

func (w *window) summary() Summary {
	if len(w.samples) == 0 {
		return Summary{}
	}

	latencies := make([]time.Duration, 0, len(w.samples))
	out := Summary{Checks: len(w.samples)}

	var total time.Duration

	for i := range w.samples {
		if w.samples[i].err != nil {
			out.Failures++
		}

		total += w.samples[i].took
		latencies = append(latencies, w.samples[i].took)
	}

	slices.Sort(latencies)

	out.AvgLatency = total / time.Duration(len(latencies))
	out.P90Latency = latencies[(len(latencies)-1)*p90/percentMax]
	out.MaxLatency = latencies[len(latencies)-1]

	return out
}
