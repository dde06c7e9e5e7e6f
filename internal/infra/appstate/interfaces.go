package appstate

import (
	"time"

	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
)

type checkReporter interface {
	Report() healthcheck.Report
}

// checkService is an internal interface for health check management
type checkService interface {
	checkReporter
	Register(checker healthcheck.Checker) error
}

// healthChecker is an internal interface for health checking
type healthChecker interface {
	IsHealthy() bool
}

// readyChecker is an internal interface for readiness checking
type readyChecker interface {
	IsReady() bool
}

// statusGetter is an internal interface for getting the application status
type statusGetter interface {
	checkReporter
	GetState() State
	GetUptime() time.Duration
	GetStartTime() time.Time
}
