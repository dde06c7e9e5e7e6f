package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
)

type statusResponse struct {
	State     string             `json:"state"`
	Uptime    string             `json:"uptime"`
	StartTime time.Time          `json:"startTime"`
	UptimeSec float64            `json:"uptimeSeconds"`
	Health    healthcheck.Report `json:"health"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "readiness check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		state := appState.GetState()
		uptime := appState.GetUptime()

		response := statusResponse{
			State:     string(state),
			Uptime:    uptime.String(),
			StartTime: appState.GetStartTime(),
			UptimeSec: uptime.Seconds(),
			Health:    appState.Report(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.ErrorContext(ctx, "failed to encode status response", "reason", err)

			return
		}

		log.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}
