package middleware

import (
	"net"
	"net/http"
	"sync"

	"pet-grooming/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit applies a per-client token bucket. Used on the auth
// endpoints to slow down credential stuffing.
func RateLimit(config utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	var limiters sync.Map

	getLimiter := func(key string) *rate.Limiter {
		if v, ok := limiters.Load(key); ok {
			return v.(*rate.Limiter)
		}

		burst := config.Burst
		if burst <= 0 {
			burst = 5
		}

		lim := rate.NewLimiter(rate.Limit(config.RPS), burst)
		actual, _ := limiters.LoadOrStore(key, lim)
		return actual.(*rate.Limiter)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}

			if !getLimiter(key).Allow() {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", key),
					zap.String("path", r.URL.Path))
				utils.ResponseTooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
