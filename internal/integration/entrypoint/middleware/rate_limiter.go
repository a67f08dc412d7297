// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/dto"
)

// exportWindow tracks export attempts for a single client.
type exportWindow struct {
	attempts  int
	resetTime time.Time
}

// ExportRateLimiter throttles export and download requests per client.
// Clients are keyed by authenticated user, falling back to the remote IP.
type ExportRateLimiter struct {
	mu             sync.Mutex
	windows        map[string]*exportWindow
	maxAttempts    int
	windowDuration time.Duration
	now            func() time.Time
}

// NewExportRateLimiter creates a limiter allowing maxAttempts exports per window.
func NewExportRateLimiter(maxAttempts int, windowDuration time.Duration) *ExportRateLimiter {
	return &ExportRateLimiter{
		windows:        make(map[string]*exportWindow),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Middleware returns a Gin handler enforcing the limit. It must run after
// authentication so the client key is the user.
func (rl *ExportRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		allowed, retryAfter := rl.allow(clientKey(c))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many export requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return "user:" + userID.String()
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = c.Request.RemoteAddr
	}
	return "ip:" + clientIP
}

// allow reports whether the client may export now, and otherwise how long
// until its window resets.
func (rl *ExportRateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	window, exists := rl.windows[key]
	if !exists || now.After(window.resetTime) {
		rl.windows[key] = &exportWindow{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true, 0
	}

	if window.attempts < rl.maxAttempts {
		window.attempts++
		return true, 0
	}

	return false, window.resetTime.Sub(now)
}

// Reset clears the limiter state.
func (rl *ExportRateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*exportWindow)
}

// Cleanup removes expired windows.
func (rl *ExportRateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, window := range rl.windows {
		if now.After(window.resetTime) {
			delete(rl.windows, key)
		}
	}
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (rl *ExportRateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}
