package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

// paramError is a malformed query parameter or request body.
type paramError struct {
	field  string
	reason string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.reason)
}

func (s *Server) handleOutcomes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, ok, err := intParam(r, "limit")
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	var outcomes []monitor.Outcome
	if ok {
		outcomes, err = s.query.Recent(ctx, limit)
	} else {
		outcomes, err = s.query.RecentLog(ctx)
	}

	if err != nil {
		s.writeError(w, r, withField(err, "limit"))

		return
	}

	s.writeJSON(w, r, http.StatusOK, toOutcomesResponse(outcomes))
}

func (s *Server) handleFailures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, ok, err := intParam(r, "limit")
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	var outcomes []monitor.Outcome
	if ok {
		outcomes, err = s.query.RecentFailures(ctx, limit)
	} else {
		outcomes, err = s.query.RecentFailuresLog(ctx)
	}

	if err != nil {
		s.writeError(w, r, withField(err, "limit"))

		return
	}

	s.writeJSON(w, r, http.StatusOK, toOutcomesResponse(outcomes))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.query.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, toStatsResponse(stats))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	window, ok, err := intParam(r, "window")
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	var points []monitor.ChartPoint
	if ok {
		points, err = s.query.ChartSeries(ctx, window)
	} else {
		points, err = s.query.Chart(ctx)
	}

	if err != nil {
		s.writeError(w, r, withField(err, "window"))

		return
	}

	s.writeJSON(w, r, http.StatusOK, toChartResponse(points))
}

func (s *Server) handleAverageLatency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, ok, err := intParam(r, "count")
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	if !ok {
		count = s.settings.Current().LogWindow
	}

	avg, err := s.query.RecentAverageLatency(ctx, count)
	if err != nil {
		s.writeError(w, r, withField(err, "count"))

		return
	}

	s.writeJSON(w, r, http.StatusOK, averageLatencyResponse{
		Count:            count,
		AverageLatencyMs: avg,
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, toSettingsPayload(s.settings.Current()))
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var payload settingsPayload

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&payload); err != nil {
		s.writeError(w, r, &paramError{field: "body", reason: err.Error()})

		return
	}

	candidate, err := payload.toDomain()
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	if err := s.settings.Update(r.Context(), candidate); err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, toSettingsPayload(s.settings.Current()))
}

// intParam returns the named query parameter. ok is false when it is absent.
func intParam(r *http.Request, name string) (int, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, &paramError{field: name, reason: "must be an integer"}
	}

	return n, true, nil
}

func withField(err error, field string) error {
	if errors.Is(err, monitor.ErrInvalidLimit) {
		return &paramError{field: field, reason: "must be positive"}
	}

	return err
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	log := s.logger.With("traceID", middleware.GetReqID(ctx))

	var (
		perr *paramError
		verr *monitor.ValidationError
	)

	switch {
	case errors.As(err, &perr):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: perr.reason, Field: perr.field})
	case errors.As(err, &verr):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: verr.Reason, Field: verr.Field})
	case errors.Is(err, monitor.ErrStorage):
		log.ErrorContext(ctx, "storage request failed", "path", r.URL.Path, "reason", err)
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "storage unavailable"})
	default:
		log.ErrorContext(ctx, "request failed", "path", r.URL.Path, "reason", err)
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()

		s.logger.ErrorContext(ctx, "failed to encode response",
			"traceID", middleware.GetReqID(ctx),
			"path", r.URL.Path,
			"reason", err,
		)
	}
}
