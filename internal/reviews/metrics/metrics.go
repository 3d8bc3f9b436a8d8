package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the review module.
type Metrics struct {
	ReviewsCreated prometheus.Counter
	ReviewsDeleted prometheus.Counter
	IDRetries      prometheus.Counter
}

// New creates a new Metrics instance with all review module metrics registered.
// Call once per process; promauto registers globally.
func New() *Metrics {
	return &Metrics{
		ReviewsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_reviews_created_total",
			Help: "Total number of reviews created",
		}),
		ReviewsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_reviews_deleted_total",
			Help: "Total number of reviews deleted",
		}),
		IDRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_review_id_retries_total",
			Help: "Total number of review id regenerations after a conditional-write conflict",
		}),
	}
}

// IncrementReviewsCreated records a successful review creation.
func (m *Metrics) IncrementReviewsCreated() {
	m.ReviewsCreated.Inc()
}

// IncrementReviewsDeleted records a successful review deletion.
func (m *Metrics) IncrementReviewsDeleted() {
	m.ReviewsDeleted.Inc()
}

// IncrementIDRetries records one id regeneration round.
func (m *Metrics) IncrementIDRetries() {
	m.IDRetries.Inc()
}
