// Package metrics exposes prometheus collectors for the spam filter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineEvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spamguard7000",
		Subsystem: "filter_engine",
		Name:      "evaluations_total",
		Help:      "Count of transaction evaluations by decision.",
	}, []string{"network", "decision"})
	engineEvaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "spamguard7000",
		Subsystem: "filter_engine",
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of transaction evaluations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "decision"})
	engineScoreSum = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "spamguard7000",
		Subsystem: "filter_engine",
		Name:      "score",
		Help:      "Distribution of aggregated spam scores.",
		Buckets:   []float64{0, 20, 40, 60, 80, 95, 100, 150, 200},
	}, []string{"network"})
	engineDetectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spamguard7000",
		Subsystem: "filter_engine",
		Name:      "detections_total",
		Help:      "Count of detector hits by detector name.",
	}, []string{"network", "detector"})
)

// FilterEngine tracks evaluation outcomes for one network.
type FilterEngine struct {
	network string
}

// NewFilterEngine constructs a metrics collector for the filter engine.
func NewFilterEngine(network string) *FilterEngine {
	if network == "" {
		network = "unknown"
	}
	return &FilterEngine{network: network}
}

// ObserveEvaluation records one verdict and its duration.
func (m FilterEngine) ObserveEvaluation(accept bool, score int, started time.Time) {
	decision := "accept"
	if !accept {
		decision = "reject"
	}

	engineEvaluationsTotal.WithLabelValues(m.network, decision).Inc()
	engineEvaluationDuration.WithLabelValues(m.network, decision).Observe(time.Since(started).Seconds())
	engineScoreSum.WithLabelValues(m.network).Observe(float64(score))
}

// ObserveDetection records a single detector hit.
func (m FilterEngine) ObserveDetection(detector string) {
	engineDetectionsTotal.WithLabelValues(m.network, detector).Inc()
}
