// Package metrics defines prometheus collectors for the data access layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

var (
	dataSourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pathfinder",
		Subsystem: "data_source",
		Name:      "operations_total",
		Help:      "Count of blockchain data source operations.",
	}, []string{"operation", "backend", "network", "status"})
	dataSourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pathfinder",
		Subsystem: "data_source",
		Name:      "operation_duration_seconds",
		Help:      "Duration of blockchain data source operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "backend", "network", "status"})
)

// DataSource tracks metrics for data source operations against one backend.
type DataSource struct {
	backend string
	network model.Network
}

// NewDataSource constructs a metrics collector for one backend/network pair.
func NewDataSource(backend string, network model.Network) *DataSource {
	if backend == "" {
		backend = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &DataSource{backend: backend, network: network}
}

// Observe records a single operation outcome and duration.
func (m DataSource) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	dataSourceRequestsTotal.WithLabelValues(operation, m.backend, string(m.network), status).Inc()
	dataSourceRequestDuration.WithLabelValues(operation, m.backend, string(m.network), status).Observe(time.Since(started).Seconds())
}
