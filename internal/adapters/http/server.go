// Package http exposes the engine over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	novena "github.com/ninefold/novena"
	"github.com/ninefold/novena/internal/observability"
	"github.com/ninefold/novena/pkg/planner"
	"github.com/ninefold/novena/pkg/subs"
)

// Server wires the engine into a chi router.
type Server struct {
	engine  *novena.Engine
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *novena.Engine, logger *slog.Logger, metrics *observability.Metrics) http.Handler {
	s := &Server{engine: engine, logger: logger, metrics: metrics}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.instrument("analyze", s.analyze))
		r.Post("/plan/insertion", s.instrument("plan_insertion", s.planInsertion))
		r.Post("/plan/edit", s.instrument("plan_edit", s.planEdit))
		r.Post("/apply", s.instrument("apply", s.apply))
	})
	return r
}

// requestID tags every request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		h(ww, r)
		s.metrics.RequestSeconds.
			WithLabelValues(route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": novena.Version})
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.metrics.AnalyzeTotal.Inc()
	writeJSON(w, http.StatusOK, s.engine.Analyze(req.Text))
}

type insertionRequest struct {
	Text           string `json:"text"`
	Target         int    `json:"target"`
	AllowedSymbols string `json:"allowed_symbols,omitempty"`
	MaxSteps       int    `json:"max_steps,omitempty"`
}

func (s *Server) planInsertion(w http.ResponseWriter, r *http.Request) {
	var req insertionRequest
	if !s.decode(w, r, &req) {
		return
	}
	plan, err := s.engine.PlanInsertion(req.Text, req.Target, req.AllowedSymbols, req.MaxSteps)
	if err != nil {
		s.metrics.PlanFailures.WithLabelValues("insertion").Inc()
		s.planError(w, err)
		return
	}
	s.metrics.PlansTotal.WithLabelValues("insertion").Inc()
	s.metrics.PlanSteps.Observe(float64(plan.InsertCount()))
	writeJSON(w, http.StatusOK, plan)
}

type editRequest struct {
	Text          string              `json:"text"`
	Target        int                 `json:"target"`
	Subs          map[string][]string `json:"subs,omitempty"`
	AllowedInsert string              `json:"allowed_inserts,omitempty"`
	AllowDeletion bool                `json:"allow_deletion,omitempty"`
	MaxEdits      int                 `json:"max_edits,omitempty"`
}

func (s *Server) planEdit(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if !s.decode(w, r, &req) {
		return
	}
	profile := &subs.Profile{Subs: req.Subs, AllowedInserts: req.AllowedInsert}
	plan, err := s.engine.PlanEdit(req.Text, req.Target, profile, req.AllowDeletion, req.MaxEdits)
	if err != nil {
		s.metrics.PlanFailures.WithLabelValues("edit").Inc()
		s.planError(w, err)
		return
	}
	s.metrics.PlansTotal.WithLabelValues("edit").Inc()
	s.metrics.PlanSteps.Observe(float64(len(plan.Ops)))
	writeJSON(w, http.StatusOK, plan)
}

type applyRequest struct {
	Text   string            `json:"text"`
	Plan   *planner.EditPlan `json:"plan"`
	Method string            `json:"method,omitempty"`
	Spread int               `json:"spread,omitempty"`
}

type applyResponse struct {
	Text  string `json:"text"`
	Total int    `json:"total"`
	Root  int    `json:"dr"`
}

func (s *Server) apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Plan == nil {
		s.badRequest(w, "plan is required")
		return
	}
	attuned, err := s.engine.ApplyEdit(req.Text, req.Plan)
	if err != nil {
		s.planError(w, err)
		return
	}
	total, root := s.engine.Checksum(attuned)
	writeJSON(w, http.StatusOK, applyResponse{Text: attuned, Total: total, Root: root})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.logger.Warn("invalid request body", "error", err)
		s.badRequest(w, "invalid request body")
		return false
	}
	return true
}

// planError maps domain errors to HTTP statuses: bad input is 400,
// infeasible planning is 422, everything else 500.
func (s *Server) planError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, planner.ErrInvalidTarget),
		errors.Is(err, planner.ErrEmptyAllowedSet),
		errors.Is(err, planner.ErrInvalidPlan):
		status = http.StatusBadRequest
	case errors.Is(err, planner.ErrUnreachableResidue),
		errors.Is(err, planner.ErrBudgetExceeded),
		errors.Is(err, planner.ErrInfeasiblePlan):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("planning failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
