package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"genonaut/utils/constants"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines per-client token buckets.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
	MaxClients        int
	WhitelistedPaths  []string
}

func (c RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be greater than 0")
	}
	if c.Burst <= 0 {
		return fmt.Errorf("burst must be greater than 0")
	}
	if c.MaxClients <= 0 {
		return fmt.Errorf("max clients must be greater than 0")
	}
	return nil
}

// RateLimitMiddleware limits each client IP. The least recently seen clients
// are evicted once MaxClients buckets exist.
func RateLimitMiddleware(config RateLimitConfig) echo.MiddlewareFunc {
	if err := config.Validate(); err != nil {
		panic(fmt.Sprintf("invalid rate limit config: %v", err))
	}
	if !config.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	limiters, err := lru.New[string, *rate.Limiter](config.MaxClients)
	if err != nil {
		panic(fmt.Sprintf("rate limiter cache: %v", err))
	}

	limiterFor := func(key string) *rate.Limiter {
		if limiter, ok := limiters.Get(key); ok {
			return limiter
		}
		limiter := rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
		if previous, found, _ := limiters.PeekOrAdd(key, limiter); found {
			return previous
		}
		return limiter
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range config.WhitelistedPaths {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			ip := c.RealIP()
			if limiterFor(ip).Allow() {
				return next(c)
			}

			ctx := c.Request().Context()
			logger.Logger.WarnContext(ctx, "rate limit exceeded", "ip", ip, "path", path)
			appErr := apperrors.NewRateLimitContextError("rate limit exceeded",
				"middleware", "RateLimitMiddleware", "allow", nil,
				map[string]interface{}{"request_id": c.Response().Header().Get(constants.HeaderRequestID)})
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusTooManyRequests, appErr.ToSecureHTTPResponse())
		}
	}
}
