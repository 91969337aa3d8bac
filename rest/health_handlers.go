package rest

import (
	"context"
	"net/http"
	"time"

	"genonaut/di"
	"genonaut/utils/logger"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

func handleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := container.ContentDBRepository.Ping(ctx); err != nil {
			logger.Logger.WarnContext(ctx, "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
