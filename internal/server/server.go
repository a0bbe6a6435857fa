// Package server exposes scenario searches over HTTP.
//
// Routes:
//
//	POST /search   body: a scenario document (YAML or JSON); reply: JSON report
//	GET  /healthz  liveness probe
//	GET  /metrics  Prometheus exposition
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/metrics"
	"github.com/katalvlaran/lvlsearch/scenario"
)

// MaxBodyBytes is the default bound on a POST /search body.
const MaxBodyBytes = 1 << 20

// Server handles search requests. Metrics may be nil; MaxBody defaults to
// MaxBodyBytes.
type Server struct {
	Logger  *slog.Logger
	Metrics *metrics.Collector
	MaxBody int64
}

// NewHandler builds the router. g serves GET /metrics and is usually the
// registry that c is registered with.
func NewHandler(log *slog.Logger, c *metrics.Collector, g prometheus.Gatherer) http.Handler {
	s := &Server{Logger: log, Metrics: c}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/search", s.Search)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok\n")
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return r
}

// errorBody is the JSON shape of every non-2xx reply.
type errorBody struct {
	Error string `json:"error"`
}

// Search handles POST /search. The search runs under the request context,
// so a client disconnect ends it as canceled.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	log := s.Logger.With("request_id", middleware.GetReqID(r.Context()))

	limit := s.MaxBody
	if limit <= 0 {
		limit = MaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	sc, err := scenario.Parse(body)
	if err != nil {
		log.Warn("Search: invalid scenario", "error", err)
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	var opts []astar.Option
	if s.Metrics != nil {
		opts = s.Metrics.Options()
	}
	rep, err := scenario.Run(r.Context(), sc, opts...)
	if err != nil {
		log.Warn("Search: scenario rejected", "name", sc.Name, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
		return
	}
	if s.Metrics != nil {
		s.Metrics.Record(rep.Outcome, rep.Visited, rep.Elapsed())
	}

	log.Info("search finished",
		"name", rep.Name,
		"status", rep.Status,
		"cost", rep.Cost,
		"expanded", rep.Expanded,
	)
	writeJSON(w, http.StatusOK, rep)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
