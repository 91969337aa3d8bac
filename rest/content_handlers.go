package rest

import (
	"net/http"

	"genonaut/di"
	"genonaut/domain"
	"genonaut/usecase/list_content_usecase"
	"genonaut/validation"

	"github.com/labstack/echo/v4"
)

func registerContentRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/contents", handleListContents(container))
}

func handleListContents(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParams()

		values, err := container.Validator.ValidateListContent(validation.ListContentParams{
			Page:            c.QueryParam("page"),
			PageSize:        c.QueryParam("page_size"),
			TagIDs:          query["tag"],
			TagMatch:        c.QueryParam("tag_match"),
			SortOrder:       c.QueryParam("sort_order"),
			CursorDirection: c.QueryParam("cursor_direction"),
			SearchTerm:      c.QueryParam("search_term"),
		})
		if err != nil {
			return handleError(c, err, "list_contents")
		}

		// Presence matters: ?content_source_types= selects nothing, omission selects everything.
		tokens, present := query["content_source_types"]
		viewerID, _ := domain.ViewerFromContext(c.Request().Context())

		page, err := container.ListContentUsecase.Execute(c.Request().Context(), list_content_usecase.ListContentInput{
			Sources: list_content_usecase.SourceTypeRequest{
				Tokens:              tokens,
				TokensPresent:       present,
				LegacyContentTypes:  c.QueryParam("content_types"),
				LegacyCreatorFilter: c.QueryParam("creator_filter"),
			},
			TagIDs:          values.TagIDs,
			TagMatch:        c.QueryParam("tag_match"),
			SearchTerm:      c.QueryParam("search_term"),
			SortField:       c.QueryParam("sort_field"),
			SortOrder:       c.QueryParam("sort_order"),
			Page:            values.Page,
			PageSize:        values.PageSize,
			Cursor:          c.QueryParam("cursor"),
			CursorDirection: c.QueryParam("cursor_direction"),
			ViewerID:        viewerID,
		})
		if err != nil {
			return handleError(c, err, "list_contents")
		}

		return c.JSON(http.StatusOK, newContentPageResponse(page))
	}
}
