package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"genonaut/utils/constants"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"

	"github.com/labstack/echo/v4"
)

// ServiceAuthMiddleware admits only callers that present the shared service secret.
// Internal write routes are mounted behind it.
func ServiceAuthMiddleware(secret string) echo.MiddlewareFunc {
	if secret == "" {
		logger.Logger.Warn("SERVICE_SECRET not set, internal routes will deny all requests")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			path := c.Request().URL.Path
			token := strings.TrimSpace(c.Request().Header.Get(constants.HeaderService))

			var reason string
			switch {
			case token == "":
				reason = "missing service token"
			case secret == "":
				reason = "service authentication not configured"
			case subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1:
				reason = "invalid service token"
			}

			if reason == "" {
				return next(c)
			}

			logger.Logger.WarnContext(ctx, "service auth failed", "reason", reason, "path", path, "remote_addr", c.RealIP())
			appErr := apperrors.NewUnauthorizedContextError(reason,
				"middleware", "ServiceAuthMiddleware", "authenticate",
				map[string]interface{}{"request_id": c.Response().Header().Get(constants.HeaderRequestID)})
			return c.JSON(http.StatusUnauthorized, appErr.ToSecureHTTPResponse())
		}
	}
}
