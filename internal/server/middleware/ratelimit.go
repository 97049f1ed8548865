package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/bookkeeper/internal/server/handlers"
)

// RateLimiter ограничивает частоту запросов по IP клиента (token bucket)
type RateLimiter struct {
	limiters map[string]*visitor
	logger   *slog.Logger
	cleanupC chan struct{}
	stopOnce sync.Once
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	mu       sync.Mutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает rate limiter: rps запросов в секунду, burst подряд.
// Ключи, не обращавшиеся дольше idleTTL, удаляются фоновой очисткой.
func NewRateLimiter(rps float64, burst int, idleTTL time.Duration, logger *slog.Logger) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}

	rl := &RateLimiter{
		limiters: make(map[string]*visitor),
		logger:   logger,
		cleanupC: make(chan struct{}),
		limit:    rate.Limit(rps),
		burst:    burst,
		idleTTL:  idleTTL,
	}

	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивные ключи
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.removeIdle(time.Now())
		case <-rl.cleanupC:
			return
		}
	}
}

func (rl *RateLimiter) removeIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.limiters {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
}

// Stop останавливает фоновую очистку
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	v, ok := rl.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// Middleware отвечает 429, когда лимит клиента исчерпан
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r)

		if !rl.Allow(key) {
			rl.logger.Warn("Rate limit exceeded",
				"ip", key,
				"method", r.Method,
				"path", r.URL.Path,
			)

			w.Header().Set("Retry-After", "1")
			handlers.SendError(rl.logger, w, "rate limit exceeded, please try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
