package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	// почти нулевое пополнение: проверяем только burst
	limiter := NewRateLimiter(0.001, 3, time.Minute, setupTestLogger())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))

	// другой ключ имеет свой bucket
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiter_RemoveIdle(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute, setupTestLogger())
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.removeIdle(time.Now())
	assert.Len(t, limiter.limiters, 1)

	limiter.removeIdle(time.Now().Add(2 * time.Minute))
	assert.Empty(t, limiter.limiters)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute, setupTestLogger())
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, time.Minute, setupTestLogger())
	defer limiter.Stop()

	h := limiter.Middleware(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.RemoteAddr = "192.168.1.5:5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1:1234", "192.168.1.1"},
		{"x-forwarded-for", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:80", "203.0.113.7"},
		{"x-real-ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.1:80", "198.51.100.2"},
		{"no port", nil, "pipe", "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}
