// SPDX-License-Identifier: MIT

package experiment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus series a Runner updates. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	SolveSeconds *prometheus.HistogramVec
	Solves       *prometheus.CounterVec
	LastQuality  *prometheus.GaugeVec
	Instances    prometheus.Counter
}

// NewMetrics registers the experiment series on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SolveSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvcover",
			Subsystem: "experiment",
			Name:      "solve_seconds",
			Help:      "Wall time of one solver run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm", "generator"}),
		Solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvcover",
			Subsystem: "experiment",
			Name:      "solves_total",
			Help:      "Solver runs by outcome.",
		}, []string{"algorithm", "status"}),
		LastQuality: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvcover",
			Subsystem: "experiment",
			Name:      "last_quality_ratio",
			Help:      "Cover size over optimum of the latest successful run.",
		}, []string{"algorithm", "generator"}),
		Instances: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lvcover",
			Subsystem: "experiment",
			Name:      "instances_total",
			Help:      "Instances generated and solved by the reference.",
		}),
	}
}

func (m *Metrics) observe(ms Measurement) {
	if m == nil {
		return
	}
	if ms.Err != "" {
		m.Solves.WithLabelValues(ms.Algorithm, "error").Inc()
		return
	}
	m.Solves.WithLabelValues(ms.Algorithm, "ok").Inc()
	m.SolveSeconds.WithLabelValues(ms.Algorithm, ms.Generator).Observe(ms.Seconds)
	m.LastQuality.WithLabelValues(ms.Algorithm, ms.Generator).Set(ms.Quality)
}

func (m *Metrics) instanceDone() {
	if m == nil {
		return
	}
	m.Instances.Inc()
}
