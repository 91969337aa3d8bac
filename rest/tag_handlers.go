package rest

import (
	"net/http"
	"strconv"

	"genonaut/di"
	"genonaut/usecase/tag_link_usecase"
	apperrors "genonaut/utils/errors"
	"genonaut/validation"

	"github.com/labstack/echo/v4"
)

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func registerTagRoutes(v1 *echo.Group, container *di.ApplicationComponents, serviceAuth echo.MiddlewareFunc) {
	v1.GET("/tags", handleFetchTags(container))

	// Ingestion writes; reachable only with the service token.
	internal := v1.Group("/internal/contents/:source/:id", serviceAuth)
	internal.PUT("/tags", handleLinkTags(container))
	internal.DELETE("/tags", handleUnlinkTags(container))
	internal.POST("/tags/reproject", handleReprojectTags(container))
}

func handleFetchTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 0
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return handleError(c, apperrors.NewUnprocessableContextError("limit must be an integer",
					"rest", "TagHandler", "fetch_tags", err, nil), "fetch_tags")
			}
			limit = parsed
		}

		tags, err := container.FetchTagsUsecase.Execute(c.Request().Context(), limit)
		if err != nil {
			return handleError(c, err, "fetch_tags")
		}

		response := make([]TagResponse, 0, len(tags))
		for _, tag := range tags {
			response = append(response, TagResponse{ID: tag.ID.String(), Name: sanitizeTitle(tag.Name)})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"tags": response})
	}
}

func handleLinkTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		input, err := tagLinkInput(c, container.Validator)
		if err != nil {
			return handleError(c, err, "link_tags")
		}
		if err := container.TagLinkUsecase.Link(c.Request().Context(), input); err != nil {
			return handleError(c, err, "link_tags")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleUnlinkTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		input, err := tagLinkInput(c, container.Validator)
		if err != nil {
			return handleError(c, err, "unlink_tags")
		}
		if err := container.TagLinkUsecase.Unlink(c.Request().Context(), input); err != nil {
			return handleError(c, err, "unlink_tags")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleReprojectTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		contentID, err := contentIDParam(c)
		if err != nil {
			return handleError(c, err, "reproject_tags")
		}
		if err := container.TagLinkUsecase.Reproject(c.Request().Context(), contentID, c.Param("source")); err != nil {
			return handleError(c, err, "reproject_tags")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func tagLinkInput(c echo.Context, v *validation.Validator) (tag_link_usecase.TagLinkInput, error) {
	contentID, err := contentIDParam(c)
	if err != nil {
		return tag_link_usecase.TagLinkInput{}, err
	}

	var params validation.TagIDsParams
	if err := (&echo.DefaultBinder{}).BindBody(c, &params); err != nil {
		return tag_link_usecase.TagLinkInput{}, apperrors.NewValidationContextError("request body must be JSON with tag_ids",
			"rest", "TagHandler", "bind", nil)
	}
	tagIDs, err := v.ValidateTagIDs(params)
	if err != nil {
		return tag_link_usecase.TagLinkInput{}, err
	}

	return tag_link_usecase.TagLinkInput{ContentID: contentID, Source: c.Param("source"), TagIDs: tagIDs}, nil
}

func contentIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationContextError("content id must be an integer",
			"rest", "TagHandler", "parse_id", map[string]interface{}{"id": c.Param("id")})
	}
	return id, nil
}
