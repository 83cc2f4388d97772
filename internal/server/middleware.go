package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestLogger logs every request with method, path, status and latency.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Warn("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

// visitor pairs a limiter with its last activity, so stale entries can
// be swept.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits each client IP to requestsPerMinute with the given
// burst. Entries idle for several minutes are swept by a background
// goroutine.
func RateLimiter(requestsPerMinute, burst int) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	store := make(map[string]*visitor)
	var mu sync.Mutex

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			for ip, v := range store {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(store, ip)
				}
			}
			mu.Unlock()
		}
	}()

	limit := rate.Every(time.Minute / time.Duration(requestsPerMinute))

	return func(c *gin.Context) {
		key := c.ClientIP()

		mu.Lock()
		v, exists := store[key]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(limit, burst)}
			store[key] = v
		}
		v.lastSeen = time.Now()
		mu.Unlock()

		if !v.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
