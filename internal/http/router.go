package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	fantasyhandler "cinelog/internal/fantasy/handler"
	identityhandler "cinelog/internal/identity/handler"
	"cinelog/internal/platform/middleware"
	reviewshandler "cinelog/internal/reviews/handler"
	translationhandler "cinelog/internal/translation/handler"
)

// Deps collects the per-vertical handlers and cross-cutting pieces the
// router wires together. The limiter client may be nil, in which case the
// auth endpoints run unthrottled.
type Deps struct {
	Reviews     *reviewshandler.Handler
	Identity    *identityhandler.Handler
	Translation *translationhandler.Handler
	Fantasy     *fantasyhandler.Handler

	Logger        *slog.Logger
	Limiter       *redis.Client
	AuthRateLimit int
	AuthRateWin   time.Duration

	Health func() error
}

// NewRouter assembles the public HTTP surface: the movie, review,
// translation, auth, and fantasy routes plus health and metrics.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(d.Logger))

	d.Reviews.Register(r)
	d.Translation.Register(r)
	d.Fantasy.Register(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(d.Limiter, d.AuthRateLimit, d.AuthRateWin, d.Logger))
		d.Identity.Register(r)
	})

	r.Get("/healthz", handleHealth(d.Health))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func handleHealth(check func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("unhealthy"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}
