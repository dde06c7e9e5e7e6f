package healthcheck

import (
	"context"
	"time"
)

// Checker is a component whose health is probed periodically.
type Checker interface {
	Name() string
	Ping(ctx context.Context) error
}

// Optional interfaces a Checker may implement. Without them a checker is
// critical for both health and readiness and uses defaultCheckTimeout.
type healthCriticalChecker interface {
	CheckCritical() bool
}

type readyCriticalChecker interface {
	CheckReadyCritical() bool
}

type timeoutChecker interface {
	CheckTimeout() time.Duration
}
