package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/h0m10/citypulse-api/internal/infra/config"
	"github.com/h0m10/citypulse-api/internal/infra/ratelimit"
	"github.com/h0m10/citypulse-api/pkg/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	internalErrorMessage = "Error interno del servidor"
	rateLimitMessage     = "Demasiadas solicitudes, intenta de nuevo en 15 minutos"
	rateLimitRetryAfter  = "15 minutos"
)

func errorHandlingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			logger.Error("request failed", "path", c.Request.URL.Path, "request_id", c.GetString(requestIDKey), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  internalErrorMessage,
				"status": http.StatusInternalServerError,
			})
			return
		}

		status := httpErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		attrs := []any{"code", httpErr.Code, "status", status, "path", c.Request.URL.Path, "request_id", c.GetString(requestIDKey), "error", httpErr.Err}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", attrs...)
		} else {
			logger.Warn("request failed", attrs...)
		}

		c.JSON(status, gin.H{
			"error":   httpErr.Message,
			"details": httpErr.Details,
		})
	}
}

// recoveryMiddleware renders panics with the same envelope as unexpected errors.
func recoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", "path", c.Request.URL.Path, "request_id", c.GetString(requestIDKey), "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":  internalErrorMessage,
			"status": http.StatusInternalServerError,
		})
	})
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds(), "request_id", c.GetString(requestIDKey))
	}
}

// metricsMiddleware labels by route template so path parameters do not explode cardinality.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

func bodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

func rateLimitMiddleware(cfg config.RateLimitConfig, limiter ratelimit.Limiter, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	policy := fmt.Sprintf("%d;w=%d", cfg.MaxRequests, int(cfg.Window/time.Second))
	return func(c *gin.Context) {
		ip := c.ClientIP()
		res, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", "ip", ip, "error", err)
			c.Next()
			return
		}

		reset := resetSeconds(res.ResetAt)
		c.Header("RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("RateLimit-Reset", strconv.Itoa(reset))
		c.Header("RateLimit-Policy", policy)
		if res.Allowed {
			c.Next()
			return
		}

		metrics.RateLimitRejections.Inc()
		logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
		c.Header("Retry-After", strconv.Itoa(reset))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":      rateLimitMessage,
			"retryAfter": rateLimitRetryAfter,
		})
	}
}

func resetSeconds(resetAt time.Time) int {
	secs := int(time.Until(resetAt).Round(time.Second) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
