package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"cinelog/internal/transport/shared"
)

// RateLimit is a fixed-window per-IP limiter backed by Redis, meant for the
// auth endpoints where credential stuffing is the concern. It fails open: a
// Redis outage must not take sign-in down with it.
func RateLimit(client *redis.Client, limit int, window time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s:%s:%d", r.URL.Path, ip, time.Now().Unix()/int64(window.Seconds()))

			ctx := r.Context()
			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("rate limiter unavailable, failing open", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(ctx, key, window)
			}
			if count > int64(limit) {
				shared.WriteJSON(w, http.StatusTooManyRequests, shared.ErrorResponse{
					Error:   "rate_limited",
					Message: "too many requests",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
