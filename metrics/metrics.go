// Package metrics exposes knapsack search statistics as Prometheus metrics.
//
// A batch run has no scrape endpoint, so the registry is written to a
// node_exporter textfile (WriteTextfile) after the search completes.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/knapsack/bnb"
)

// Outcome labels for RunsTotal.
const (
	OutcomeOptimal   = "optimal"
	OutcomeTimeLimit = "time_limit"
	OutcomeNodeLimit = "node_limit"
	OutcomeError     = "error"
)

// Registry holds all metrics for one process.
type Registry struct {
	RunsTotal         *prometheus.CounterVec
	NodesTotal        prometheus.Counter
	ExpandedTotal     prometheus.Counter
	PrunedTotal       *prometheus.CounterVec
	ImprovementsTotal prometheus.Counter
	FrontierPeak      prometheus.Gauge
	BestValue         prometheus.Gauge
	Items             prometheus.Gauge
	SearchDuration    prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.RunsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knapsack_runs_total",
			Help: "Searches run, by outcome",
		},
		[]string{"outcome"},
	)
	r.NodesTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "knapsack_nodes_total",
		Help: "Search nodes popped from the frontier",
	})
	r.ExpandedTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "knapsack_nodes_expanded_total",
		Help: "Search nodes expanded into take/skip children",
	})
	r.PrunedTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knapsack_nodes_pruned_total",
			Help: "Search nodes discarded without expansion, by reason",
		},
		[]string{"reason"},
	)
	r.ImprovementsTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "knapsack_incumbent_updates_total",
		Help: "Times the best-so-far packing improved",
	})
	r.FrontierPeak = f.NewGauge(prometheus.GaugeOpts{
		Name: "knapsack_frontier_peak",
		Help: "Peak frontier length of the last search",
	})
	r.BestValue = f.NewGauge(prometheus.GaugeOpts{
		Name: "knapsack_best_value",
		Help: "Value of the packing returned by the last search",
	})
	r.Items = f.NewGauge(prometheus.GaugeOpts{
		Name: "knapsack_items",
		Help: "Item count of the last instance",
	})
	r.SearchDuration = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "knapsack_search_duration_seconds",
		Help:    "Wall-clock time spent in the search loop",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
	})

	return r
}

// Outcome maps a Solve/BranchAndBound error to a RunsTotal label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOptimal
	case errors.Is(err, bnb.ErrTimeLimit):
		return OutcomeTimeLimit
	case errors.Is(err, bnb.ErrNodeLimit):
		return OutcomeNodeLimit
	default:
		return OutcomeError
	}
}

// RecordSearch records one search over n items with its result and error.
func (r *Registry) RecordSearch(n int, res bnb.Result, err error) {
	r.RunsTotal.WithLabelValues(Outcome(err)).Inc()
	r.Items.Set(float64(n))
	if Outcome(err) == OutcomeError {
		return
	}

	st := res.Stats
	r.NodesTotal.Add(float64(st.Nodes))
	r.ExpandedTotal.Add(float64(st.Expanded))
	r.PrunedTotal.WithLabelValues("infeasible").Add(float64(st.PrunedInfeasible))
	r.PrunedTotal.WithLabelValues("bound").Add(float64(st.PrunedBound))
	r.ImprovementsTotal.Add(float64(st.Improvements))
	r.FrontierPeak.Set(float64(st.MaxFrontier))
	r.BestValue.Set(float64(res.Value))
	r.SearchDuration.Observe(st.Elapsed.Seconds())
}

// Gatherer returns the underlying registry for exporters and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry in text exposition format to path.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
