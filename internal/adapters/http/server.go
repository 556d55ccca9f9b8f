// Package http exposes the engine over a small JSON API: genome validation,
// mutation, minimization, and machine runs, plus health and Prometheus
// metrics endpoints.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/evofsm/evofsm/internal/runtime"
	"github.com/evofsm/evofsm/pkg/codec"
	"github.com/evofsm/evofsm/pkg/domain"
	"github.com/evofsm/evofsm/pkg/observability"
)

// Engine defines the slice of the engine core the server needs.
type Engine interface {
	Validate(g domain.Genome) domain.ValidationFlags
	Mutate(g domain.Genome) domain.Genome
	NewMachine(g domain.Genome) *runtime.Machine
	Minimize(m *runtime.Machine) domain.Genome
	Run(g domain.Genome, input string, rlog *runtime.RunLog) domain.RunFlags
}

// Server hosts the JSON API over an Engine.
type Server struct {
	engine  Engine
	metrics *observability.Metrics
}

// NewHandler builds the HTTP handler. The registry backs the /metrics
// endpoint; the metrics bundle must have been registered on it.
func NewHandler(engine Engine, metrics *observability.Metrics, registry *prometheus.Registry) http.Handler {
	s := &Server{engine: engine, metrics: metrics}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Post("/genomes/validate", s.handleValidate)
	r.Post("/genomes/mutate", s.handleMutate)
	r.Post("/genomes/minimize", s.handleMinimize)
	r.Post("/genomes/run", s.handleRun)
	return r
}

type genomeRequest struct {
	Genome string `json:"genome"`
	Input  string `json:"input,omitempty"`
}

// decodeGenome parses the request body and its genome line; on failure it
// writes the error response and returns false.
func decodeGenome(w http.ResponseWriter, r *http.Request) (genomeRequest, domain.Genome, bool) {
	var body genomeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return body, domain.Genome{}, false
	}

	genome, err := codec.Decode(body.Genome)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return body, domain.Genome{}, false
	}
	return body, genome, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	_, genome, ok := decodeGenome(w, r)
	if !ok {
		return
	}

	flags := s.engine.Validate(genome)

	class := "dfa"
	if flags != domain.IsDFA {
		class = "defective"
	}
	if flags.Has(domain.IsNFA) {
		class = "nfa"
	}
	s.metrics.ValidationsTotal.WithLabelValues(class).Inc()

	writeJSON(w, map[string]any{
		"flags":       uint(flags),
		"description": flags.String(),
	})
}

func (s *Server) handleMutate(w http.ResponseWriter, r *http.Request) {
	_, genome, ok := decodeGenome(w, r)
	if !ok {
		return
	}

	child := s.engine.Mutate(genome)
	s.metrics.MutationsTotal.Inc()

	writeJSON(w, map[string]string{"genome": codec.Encode(child)})
}

func (s *Server) handleMinimize(w http.ResponseWriter, r *http.Request) {
	_, genome, ok := decodeGenome(w, r)
	if !ok {
		return
	}

	m := s.engine.NewMachine(genome)
	m.Init()
	defer m.Free()

	reduced := s.engine.Minimize(m)
	s.metrics.MinimizationsTotal.Inc()

	writeJSON(w, map[string]string{"genome": codec.Encode(reduced)})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	body, genome, ok := decodeGenome(w, r)
	if !ok {
		return
	}

	var rlog runtime.RunLog
	flags := s.engine.Run(genome, body.Input, &rlog)
	s.metrics.RunsTotal.WithLabelValues(observability.RunOutcome(flags.Accepted())).Inc()

	writeJSON(w, map[string]any{
		"flags":       uint(flags),
		"description": flags.String(),
		"accepted":    flags.Accepted(),
		"input":       rlog.InputString,
		"consumed":    rlog.AcceptedString,
		"output":      rlog.OutputString,
		"steps":       len(rlog.Trace),
	})
}
