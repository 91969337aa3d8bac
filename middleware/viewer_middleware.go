package middleware

import (
	"context"
	"net/http"
	"strings"

	"genonaut/domain"
	"genonaut/utils/constants"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ViewerMiddleware reads the viewer id set by the upstream gateway.
// A missing header leaves the request anonymous; a malformed one is rejected.
func ViewerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(constants.HeaderViewerID))
			if raw == "" {
				return next(c)
			}

			viewerID, err := uuid.Parse(raw)
			if err != nil {
				appErr := apperrors.NewValidationContextError("invalid viewer id header",
					"middleware", "ViewerMiddleware", "parse",
					map[string]interface{}{"header": constants.HeaderViewerID})
				return c.JSON(http.StatusBadRequest, appErr.ToSecureHTTPResponse())
			}

			ctx := domain.WithViewer(c.Request().Context(), viewerID)
			ctx = context.WithValue(ctx, logger.ViewerIDKey, viewerID.String())
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
