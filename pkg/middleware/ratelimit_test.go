package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-grooming/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimit(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows up to burst then throttles", func(t *testing.T) {
		mw := RateLimit(utils.RateLimitConfig{RPS: 1, Burst: 3}, zap.NewNop())
		handler := mw(okHandler)

		var codes []int
		for i := 0; i < 5; i++ {
			r := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			r.RemoteAddr = "10.0.0.1:5000"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)
	})

	t.Run("limits are per client IP", func(t *testing.T) {
		mw := RateLimit(utils.RateLimitConfig{RPS: 1, Burst: 1}, zap.NewNop())
		handler := mw(okHandler)

		first := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		first.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, first)
		assert.Equal(t, http.StatusOK, rec.Code)

		// Same IP again: throttled
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, first)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		// Different IP: fresh bucket
		other := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		other.RemoteAddr = "10.0.0.2:5000"
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, other)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
