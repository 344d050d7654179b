package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/optomarket/optomarket-api/internal/cache"
	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// LoginRateLimit throttles login attempts per (client IP, email) over a
// redis counter window. Without redis the limiter is a no-op.
func LoginRateLimit(cfg config.LoginRateLimitConfig) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	block := time.Duration(cfg.BlockSeconds) * time.Second
	if window <= 0 {
		window = 5 * time.Minute
	}
	if block <= 0 {
		block = 15 * time.Minute
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	return func(c *gin.Context) {
		if !cache.Enabled() {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := cache.Key("ratelimit", "login", c.ClientIP(), loginEmailFromBody(c))

		blocked, err := cache.Client().Exists(ctx, key+":blocked").Result()
		if err == nil && blocked > 0 {
			response.TooManyRequests(c, "too many login attempts, try again later")
			c.Abort()
			return
		}

		count, err := cache.Client().Incr(ctx, key).Result()
		if err != nil {
			logger.Warnw("login_rate_limit_unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			cache.Client().Expire(ctx, key, window)
		}
		if count > int64(maxAttempts) {
			cache.Client().Set(ctx, key+":blocked", 1, block)
			response.TooManyRequests(c, "too many login attempts, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

// loginEmailFromBody peeks the email field out of the JSON body without
// consuming it, so the limiter key tracks accounts and not just IPs.
func loginEmailFromBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(fmt.Sprint(body.Email)))
}
