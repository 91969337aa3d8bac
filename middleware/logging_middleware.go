package middleware

import (
	"log/slog"
	"time"

	"genonaut/utils/logger"

	"github.com/labstack/echo/v4"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/v1/health" || req.URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			ctx := c.Request().Context()
			status := c.Response().Status
			log := contextLogger.WithContext(ctx)
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"query", req.URL.RawQuery,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"response_size", c.Response().Size,
				"remote_addr", c.RealIP(),
			}

			switch {
			case status >= 500:
				log.ErrorContext(ctx, "request completed", attrs...)
			case status >= 400:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}

			if err != nil {
				log.ErrorContext(ctx, "request error", "method", req.Method, "path", req.URL.Path, "error", err)
			}
			return err
		}
	}
}
