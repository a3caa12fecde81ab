package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pathfinder",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Count of cache lookups by operation and result.",
	}, []string{"operation", "result"})
)

// Cache tracks hit/miss outcomes of the caching decorator.
type Cache struct{}

// NewCache constructs a metrics collector for cache lookups.
func NewCache() *Cache {
	return &Cache{}
}

// ObserveLookup records one lookup outcome.
func (Cache) ObserveLookup(operation string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(operation, result).Inc()
}
