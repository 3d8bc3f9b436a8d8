package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the translation module. The hit/miss
// split is the interesting signal: it shows how often the single cache slot
// saves a backend call.
type Metrics struct {
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	UpstreamErrors prometheus.Counter
}

// New creates a new Metrics instance with all translation module metrics
// registered. Call once per process; promauto registers globally.
func New() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_translation_cache_hits_total",
			Help: "Translations served from the review's cache slot",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_translation_cache_misses_total",
			Help: "Translations that required a backend call",
		}),
		UpstreamErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_translation_upstream_errors_total",
			Help: "Translation backend calls that failed or timed out",
		}),
	}
}

// IncrementCacheHits records a translation served from the cache slot.
func (m *Metrics) IncrementCacheHits() {
	m.CacheHits.Inc()
}

// IncrementCacheMisses records a translation that went to the backend.
func (m *Metrics) IncrementCacheMisses() {
	m.CacheMisses.Inc()
}

// IncrementUpstreamErrors records a failed backend call.
func (m *Metrics) IncrementUpstreamErrors() {
	m.UpstreamErrors.Inc()
}
