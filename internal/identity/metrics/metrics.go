package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the identity module. Signin failures are
// counted without a reason label on purpose: splitting "unknown email" from
// "wrong password" would leak through the metrics endpoint what the API itself
// refuses to reveal.
type Metrics struct {
	UsersCreated   prometheus.Counter
	SigninFailures prometheus.Counter
}

// New creates a new Metrics instance with all identity module metrics registered.
// Call once per process; promauto registers globally.
func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_users_created_total",
			Help: "Total number of user accounts created",
		}),
		SigninFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cinelog_signin_failures_total",
			Help: "Total number of rejected sign-in attempts",
		}),
	}
}

// IncrementUsersCreated records a successful signup.
func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

// IncrementSigninFailures records a rejected sign-in attempt.
func (m *Metrics) IncrementSigninFailures() {
	m.SigninFailures.Inc()
}
