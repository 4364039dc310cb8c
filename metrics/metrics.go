// Package metrics exposes a Solver's resolution statistics as Prometheus
// gauges, for embedding solver instances inside long-running services
// that already scrape a /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hadaly-sat/satkit/solver"
)

// Collector adapts a Solver's Stats snapshot to the prometheus.Collector
// interface: each Collect call re-reads the Solver's live counters, so
// no push/update step is needed between solver calls and scrapes.
type Collector struct {
	solver *solver.Solver
	labels prometheus.Labels

	conflicts     *prometheus.Desc
	decisions     *prometheus.Desc
	propagations  *prometheus.Desc
	restarts      *prometheus.Desc
	clausesLearned *prometheus.Desc
	binaryLearned *prometheus.Desc
	unitsLearned  *prometheus.Desc
}

// NewCollector builds a Collector over s. labels, if non-nil, are
// attached to every exported metric (e.g. to distinguish solver
// instances when several run in the same process).
func NewCollector(s *solver.Solver, labels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("satkit_"+name, help, nil, labels)
	}
	return &Collector{
		solver:         s,
		labels:         labels,
		conflicts:      desc("conflicts_total", "Number of conflicts encountered during search."),
		decisions:      desc("decisions_total", "Number of decisions made during search."),
		propagations:   desc("propagations_total", "Number of literal propagations performed."),
		restarts:       desc("restarts_total", "Number of search restarts performed."),
		clausesLearned: desc("clauses_learned_total", "Number of clauses learned through conflict analysis."),
		binaryLearned:  desc("binary_clauses_learned_total", "Number of binary clauses learned."),
		unitsLearned:   desc("units_learned_total", "Number of unit clauses learned."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.conflicts
	ch <- c.decisions
	ch <- c.propagations
	ch <- c.restarts
	ch <- c.clausesLearned
	ch <- c.binaryLearned
	ch <- c.unitsLearned
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.solver.GetStats()
	ch <- prometheus.MustNewConstMetric(c.conflicts, prometheus.CounterValue, float64(stats.Conflicts))
	ch <- prometheus.MustNewConstMetric(c.decisions, prometheus.CounterValue, float64(stats.Decisions))
	ch <- prometheus.MustNewConstMetric(c.propagations, prometheus.CounterValue, float64(stats.Propagations))
	ch <- prometheus.MustNewConstMetric(c.restarts, prometheus.CounterValue, float64(stats.Restarts))
	ch <- prometheus.MustNewConstMetric(c.clausesLearned, prometheus.CounterValue, float64(stats.ClausesLearned))
	ch <- prometheus.MustNewConstMetric(c.binaryLearned, prometheus.CounterValue, float64(stats.BinaryLearned))
	ch <- prometheus.MustNewConstMetric(c.unitsLearned, prometheus.CounterValue, float64(stats.UnitsLearned))
}
