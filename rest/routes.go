package rest

import (
	"net/http"

	"genonaut/config"
	"genonaut/di"
	middleware_custom "genonaut/middleware"
	"genonaut/utils/constants"
	"genonaut/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request ID first so every later log line carries it.
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())

	if cfg.Telemetry.Enabled {
		e.Use(otelecho.Middleware(cfg.Telemetry.ServiceName))
		e.Use(middleware_custom.OTelStatusMiddleware())
	}

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ContentSecurityPolicy: "default-src 'none'",
	}))

	e.Use(middleware_custom.RateLimitMiddleware(middleware_custom.RateLimitConfig{
		Enabled:           cfg.RateLimit.Enabled,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		MaxClients:        cfg.RateLimit.MaxClients,
		WhitelistedPaths:  []string{"/v1/health", "/metrics"},
	}))

	// Bounds the request context; store calls observe it and surface TIMEOUT_ERROR.
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: cfg.Server.WriteTimeout,
	}))

	e.Use(middleware_custom.ViewerMiddleware())
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", handleHealth(container))
	registerContentRoutes(v1, container)
	registerTagRoutes(v1, container, middleware_custom.ServiceAuthMiddleware(cfg.Server.ServiceSecret))

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error":      "error",
			"code":       "NOT_FOUND",
			"message":    "route not found",
			"request_id": c.Response().Header().Get(constants.HeaderRequestID),
		})
	})
}
