package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/pingmon/internal/infra/healthcheck"
)

type fakeState struct {
	healthy   bool
	ready     bool
	state     State
	uptime    time.Duration
	startTime time.Time
	report    healthcheck.Report
}

func (f fakeState) IsHealthy() bool            { return f.healthy }
func (f fakeState) IsReady() bool              { return f.ready }
func (f fakeState) GetState() State            { return f.state }
func (f fakeState) GetUptime() time.Duration   { return f.uptime }
func (f fakeState) GetStartTime() time.Time    { return f.startTime }
func (f fakeState) Report() healthcheck.Report { return f.report }

func serveAndAssertStatus(t *testing.T, handler http.HandlerFunc, path string, wantCode int) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	handler.ServeHTTP(rec, req)

	require.Equal(t, wantCode, rec.Code)
}

func TestHandleHealthz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	serveAndAssertStatus(t, HandleHealthz(logger, fakeState{healthy: true}), "/-/healthz", http.StatusOK)
	serveAndAssertStatus(t, HandleHealthz(logger, fakeState{}), "/-/healthz", http.StatusServiceUnavailable)
}

func TestHandleReadyz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	serveAndAssertStatus(t, HandleReadyz(logger, fakeState{ready: true}), "/-/readyz", http.StatusOK)
	serveAndAssertStatus(t, HandleReadyz(logger, fakeState{}), "/-/readyz", http.StatusServiceUnavailable)
}

func TestHandleStatus(t *testing.T) {
	t.Parallel()

	give := fakeState{
		state:     StateRunning,
		uptime:    5 * time.Second,
		startTime: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		report: healthcheck.Report{
			Healthy: false,
			Ready:   true,
			Checks: map[string]healthcheck.Result{
				"store": {Name: "store", Healthy: false, LastError: "database is locked"},
			},
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/-/status", http.NoBody)

	HandleStatus(slog.Default(), give).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		State     string  `json:"state"`
		Uptime    string  `json:"uptime"`
		UptimeSec float64 `json:"uptimeSeconds"`
		Health    struct {
			Healthy bool `json:"healthy"`
			Checks  map[string]struct {
				LastError string `json:"lastError"`
			} `json:"checks"`
		} `json:"health"`
	}

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "running", body.State)
	require.Equal(t, "5s", body.Uptime)
	require.InDelta(t, 5.0, body.UptimeSec, 1e-9)
	require.False(t, body.Health.Healthy)
	require.Equal(t, "database is locked", body.Health.Checks["store"].LastError)
}
