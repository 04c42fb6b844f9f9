package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spamguard7000",
		Subsystem: "clickhouse",
		Name:      "operations_total",
		Help:      "Count of ClickHouse operations.",
	}, []string{"operation", "network", "status"})
	clickhouseRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "spamguard7000",
		Subsystem: "clickhouse",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ClickHouse operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ClickhouseRepository tracks metrics for verdict persistence.
type ClickhouseRepository struct {
	network string
}

// NewClickhouseRepository constructs a metrics collector for the verdict repository.
func NewClickhouseRepository(network string) *ClickhouseRepository {
	if network == "" {
		network = "unknown"
	}
	return &ClickhouseRepository{network: network}
}

// Observe records a single repository operation outcome and duration.
func (m ClickhouseRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	clickhouseRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	clickhouseRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
