// Package observability exposes Prometheus instrumentation for the
// engine. Metrics register on a private registry so embedding programs
// keep control of their default registry.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's instrument set.
type Metrics struct {
	registry *prometheus.Registry

	AnalyzeTotal   prometheus.Counter
	PlansTotal     *prometheus.CounterVec
	PlanFailures   *prometheus.CounterVec
	PlanSteps      prometheus.Histogram
	RequestSeconds *prometheus.HistogramVec
}

// New creates the instrument set on a fresh registry, including the
// standard Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		AnalyzeTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "novena",
			Name:      "analyze_total",
			Help:      "Number of analyze operations performed.",
		}),
		PlansTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "novena",
			Name:      "plans_total",
			Help:      "Number of attunement plans computed, by planner.",
		}, []string{"planner"}),
		PlanFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "novena",
			Name:      "plan_failures_total",
			Help:      "Number of planning attempts that returned an error, by planner.",
		}, []string{"planner"}),
		PlanSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "novena",
			Name:      "plan_steps",
			Help:      "Edit or insertion count of computed plans.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
		RequestSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "novena",
			Name:      "http_request_seconds",
			Help:      "HTTP handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
