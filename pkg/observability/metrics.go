// Package observability exposes engine counters for Prometheus scraping.
// The core never touches these; the HTTP adapter and CLI increment them at
// the boundary.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the engine's Prometheus collectors.
type Metrics struct {
	RunsTotal          *prometheus.CounterVec
	MutationsTotal     prometheus.Counter
	MinimizationsTotal prometheus.Counter
	ValidationsTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evofsm",
			Name:      "runs_total",
			Help:      "Machine runs by outcome.",
		}, []string{"outcome"}),
		MutationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evofsm",
			Name:      "mutations_total",
			Help:      "Genome mutations performed.",
		}),
		MinimizationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evofsm",
			Name:      "minimizations_total",
			Help:      "Machine minimizations performed.",
		}),
		ValidationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evofsm",
			Name:      "validations_total",
			Help:      "Genome validations by class.",
		}, []string{"class"}),
	}

	reg.MustRegister(m.RunsTotal, m.MutationsTotal, m.MinimizationsTotal, m.ValidationsTotal)
	return m
}

// RunOutcome maps a run result to the label used on RunsTotal.
func RunOutcome(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
