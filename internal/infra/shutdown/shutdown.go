package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// DefaultTimeout bounds the whole shutdown sequence when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Notify returns a channel that will receive SIGTERM and SIGINT signals.
// This should be called as the first thing in main() before any other initialization.
func Notify() <-chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	return signals
}

type Handler struct {
	logger *slog.Logger
	quiter quiter
}

// New creates a new shutdown handler.
func New(logger *slog.Logger, quiter quiter) *Handler {
	return &Handler{
		logger: logger,
		quiter: quiter,
	}
}

// HandleSignals waits for SIGTERM or SIGINT and cancels the run context.
func (h *Handler) HandleSignals(ctx context.Context, cancel func()) {
	select {
	case <-ctx.Done():
		h.logger.InfoContext(ctx, "terminating signal handler due to context done")

		return
	case sig := <-h.quiter.Quit():
		h.logger.InfoContext(ctx, "received termination signal, terminating", "signal", fmt.Sprint(sig))
	}

	cancel()
}

// GracefulShutdown shuts the components down in reverse registration order,
// all within timeout. It keeps going after a failed component and returns
// the joined errors.
func GracefulShutdown(
	originCtx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	shutdowners []Shutdowner,
) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// originCtx is usually already cancelled at this point.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(originCtx), timeout)
	defer cancel()

	var errs error

	for i := len(shutdowners) - 1; i >= 0; i-- {
		start := time.Now()
		shutdowner := shutdowners[i]
		name := shutdowner.Name()

		if err := shutdowner.Shutdown(ctx); err != nil {
			logger.ErrorContext(ctx, "component shutdown failed",
				"component", name,
				"duration", time.Since(start),
				"reason", err,
			)

			errs = errors.Join(errs, fmt.Errorf("shutdown %s: %w", name, err))

			continue
		}

		logger.InfoContext(ctx, "component shutdown completed",
			"component", name,
			"duration", time.Since(start),
		)
	}

	return errs
}
