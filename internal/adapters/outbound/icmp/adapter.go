package icmp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-ping/ping"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

const echoCount = 1

// runner is the part of *ping.Pinger the prober drives.
type runner interface {
	Run() error
	Stop()
	Statistics() *ping.Statistics
}

// runnerFactory builds a runner for host. It may block on name resolution
// and must give up when ctx is done.
type runnerFactory func(ctx context.Context, host string, timeout time.Duration, privileged bool) (runner, error)

// Prober sends a single ICMP echo request per probe.
type Prober struct {
	logger     *slog.Logger
	timeout    time.Duration
	privileged bool
	newRunner  runnerFactory
}

var _ monitor.Prober = (*Prober)(nil)

// New creates a go-ping based prober. Without privileged mode the echo is sent
// over an unprivileged UDP socket.
func New(logger *slog.Logger, timeout time.Duration, privileged bool) *Prober {
	return &Prober{
		logger:     logger,
		timeout:    timeout,
		privileged: privileged,
		newRunner:  newPinger,
	}
}

// newPinger resolves host with ctx and hands the address to go-ping, whose
// own resolver cannot be cancelled. Time spent resolving is taken from the
// echo timeout.
func newPinger(ctx context.Context, host string, timeout time.Duration, privileged bool) (runner, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("resolve %s: no addresses", host)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	if timeout <= 0 {
		return nil, fmt.Errorf("resolve %s: %w", host, context.DeadlineExceeded)
	}

	pinger := ping.New(host)
	pinger.SetIPAddr(&addrs[0])
	pinger.Count = echoCount
	pinger.Timeout = timeout
	pinger.SetPrivileged(privileged)

	return pinger, nil
}

// Probe reports success with the round trip time when an echo reply arrives
// within the timeout. Every other outcome is an unsuccessful result.
func (p *Prober) Probe(ctx context.Context, host string) monitor.ProbeResult {
	if host == "" {
		p.logger.DebugContext(ctx, "probe skipped, empty host")

		return monitor.ProbeResult{}
	}

	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	if timeout <= 0 || ctx.Err() != nil {
		return monitor.ProbeResult{}
	}

	r, err := p.prepare(ctx, host, timeout)
	if err != nil {
		p.logger.DebugContext(ctx, "probe failed", "host", host, "reason", err)

		return monitor.ProbeResult{}
	}

	done := make(chan error, 1)

	go func() {
		done <- r.Run()
	}()

	select {
	case <-ctx.Done():
		r.Stop()
		<-done

		p.logger.DebugContext(ctx, "probe cancelled", "host", host)

		return monitor.ProbeResult{}
	case err := <-done:
		if err != nil {
			p.logger.DebugContext(ctx, "probe failed", "host", host, "reason", err)

			return monitor.ProbeResult{}
		}
	}

	return toProbeResult(r.Statistics())
}

// prepare builds the runner within timeout. A factory stuck in resolution is
// abandoned; its goroutine exits once the factory returns.
func (p *Prober) prepare(ctx context.Context, host string, timeout time.Duration) (runner, error) {
	prepareCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type prepared struct {
		r   runner
		err error
	}

	ch := make(chan prepared, 1)

	go func() {
		r, err := p.newRunner(prepareCtx, host, timeout, p.privileged)
		ch <- prepared{r: r, err: err}
	}()

	select {
	case <-prepareCtx.Done():
		return nil, fmt.Errorf("prepare probe: %w", prepareCtx.Err())
	case res := <-ch:
		return res.r, res.err
	}
}
