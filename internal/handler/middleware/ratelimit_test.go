//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, rps float64, burst int) *RateLimiter {
	t.Helper()
	rl := NewRateLimiter(config.RateLimitConfig{RPS: rps, Burst: burst})
	t.Cleanup(rl.Stop)
	return rl
}

func performLimited(rl *RateLimiter) int {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/jwt", rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jwt", nil)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Limit(t *testing.T) {
	t.Run("rejects once the bucket is empty", func(t *testing.T) {
		rl := newTestLimiter(t, 0.001, 1)

		assert.Equal(t, http.StatusOK, performLimited(rl))
		assert.Equal(t, http.StatusTooManyRequests, performLimited(rl))
	})

	t.Run("buckets are per client", func(t *testing.T) {
		rl := newTestLimiter(t, 0.001, 1)

		require.True(t, rl.get("10.0.0.1").Allow())
		require.False(t, rl.get("10.0.0.1").Allow())
		assert.True(t, rl.get("10.0.0.2").Allow(), "A second IP gets its own bucket")
	})
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := newTestLimiter(t, 1, 1)

	rl.get("10.0.0.1")
	rl.get("10.0.0.2")
	rl.mu.Lock()
	rl.clients["10.0.0.1"].seen = time.Now().Add(-10 * time.Minute)
	rl.mu.Unlock()

	rl.sweep(staleClientAge)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "10.0.0.1", "Stale entry must be evicted")
	assert.Contains(t, rl.clients, "10.0.0.2", "Fresh entry must survive")
}

func TestRateLimiter_Stop(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1})

	rl.Stop()
	rl.Stop() // idempotent

	assert.Equal(t, http.StatusOK, performLimited(rl), "Limit keeps serving after Stop")
}
