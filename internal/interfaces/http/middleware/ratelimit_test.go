package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"helpdesk/internal/shared/config"
)

type stubRateLimiter struct {
	AllowFunc func(key string, limit int, window time.Duration) (bool, error)
}

func (s *stubRateLimiter) Allow(key string, limit int, window time.Duration) (bool, error) {
	if s.AllowFunc != nil {
		return s.AllowFunc(key, limit, window)
	}
	return true, nil
}

func newLimitedRouter(limiter *stubRateLimiter, cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", RateLimit(limiter, cfg, noopLogger{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRateLimit(t *testing.T) {
	cfg := config.RateLimitConfig{Limit: 60, WindowSeconds: 60}

	t.Run("allowed request passes through", func(t *testing.T) {
		var gotKey string
		var gotLimit int
		var gotWindow time.Duration
		limiter := &stubRateLimiter{
			AllowFunc: func(key string, limit int, window time.Duration) (bool, error) {
				gotKey = key
				gotLimit = limit
				gotWindow = window
				return true, nil
			},
		}
		router := newLimitedRouter(limiter, cfg)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "203.0.113.9:4242"
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "203.0.113.9:/auth/login", gotKey)
		assert.Equal(t, 60, gotLimit)
		assert.Equal(t, time.Minute, gotWindow)
	})

	t.Run("exhausted budget returns 429", func(t *testing.T) {
		limiter := &stubRateLimiter{
			AllowFunc: func(key string, limit int, window time.Duration) (bool, error) {
				return false, nil
			},
		}
		router := newLimitedRouter(limiter, cfg)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
	})

	t.Run("requests over the burst are throttled within one window", func(t *testing.T) {
		seen := map[string]int{}
		limiter := &stubRateLimiter{
			AllowFunc: func(key string, limit int, window time.Duration) (bool, error) {
				seen[key]++
				return seen[key] <= limit, nil
			},
		}
		router := newLimitedRouter(limiter, config.RateLimitConfig{Limit: 3, WindowSeconds: 60})

		var codes []int
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			req.RemoteAddr = "203.0.113.9:4242"
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		limiter := &stubRateLimiter{
			AllowFunc: func(key string, limit int, window time.Duration) (bool, error) {
				return false, fmt.Errorf("redis: connection refused")
			},
		}
		router := newLimitedRouter(limiter, cfg)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
