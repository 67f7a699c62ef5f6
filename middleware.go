package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

// limiterFor hands out one token bucket per client key. Buckets live as long as the process.
func (app *App) limiterFor(key string) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	lim, ok := app.LimiterMap[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(max(app.RateLimitRPS, 1)), max(app.RateLimitBurst, 1))
		app.LimiterMap[key] = lim
	}
	return lim
}

// rateLimitMiddleware rejects clients that exceed RATE_LIMIT_RPS with a 429. HTMX
// callers also get a "rate-limit-exceeded" event.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if app.limiterFor(c.ClientIP()).Allow() {
			c.Next()
			return
		}
		logWarn("Rate limit exceeded for %s on %s", c.ClientIP(), c.Request.URL.Path)
		if c.GetHeader("HX-Request") == "true" {
			c.Header("HX-Trigger", "rate-limit-exceeded")
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": ErrorTooManyReqs})
	}
}

// requestIDMiddleware tags every request with an ID, reusing the caller's
// X-Request-Id when present.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey, id))
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// requestLogger writes one structured access log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		reqID, _ := c.Request.Context().Value(requestIDKey).(string)
		log.Info().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// cacheHeadersMiddleware lets static assets be cached in production and keeps
// everything else uncached.
func (app *App) cacheHeadersMiddleware() gin.HandlerFunc {
	static := cachecontrol.New(cachecontrol.Config{
		Public: true,
		MaxAge: cachecontrol.Duration(app.StaticCacheAge),
	})
	dynamic := cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})
	return func(c *gin.Context) {
		if app.IsProduction && strings.HasPrefix(c.Request.URL.Path, "/static/") {
			static(c)
			c.Header("Vary", "Accept-Encoding")
			return
		}
		dynamic(c)
	}
}
