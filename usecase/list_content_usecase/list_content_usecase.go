package list_content_usecase

import (
	"context"
	"fmt"
	"strings"

	"genonaut/domain"
	"genonaut/port/list_content_port"
	"genonaut/utils/cursor"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"
	"genonaut/utils/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("genonaut/usecase/list_content")

// PaginationConfig bounds page sizes and decides when the total count is skipped.
type PaginationConfig struct {
	DefaultPageSize         int
	MaxPageSize             int
	SkipTotalCount          bool
	SkipCountWithTagFilters bool
}

// ListContentInput is a listing request after transport decoding but before validation.
type ListContentInput struct {
	Sources         SourceTypeRequest
	TagIDs          []uuid.UUID
	TagMatch        string
	SearchTerm      string
	SortField       string
	SortOrder       string
	Page            int
	PageSize        int
	Cursor          string
	CursorDirection string
	ViewerID        uuid.UUID
}

type ListContentUsecase struct {
	listContentGateway list_content_port.ListContentPort
	config             PaginationConfig
}

func NewListContentUsecase(listContentGateway list_content_port.ListContentPort, config PaginationConfig) *ListContentUsecase {
	return &ListContentUsecase{listContentGateway: listContentGateway, config: config}
}

func (u *ListContentUsecase) Execute(ctx context.Context, input ListContentInput) (*domain.ContentPage, error) {
	ctx, span := tracer.Start(ctx, "ListContentUsecase.Execute")
	defer span.End()

	query, err := u.buildQuery(input)
	if err != nil {
		logger.Logger.WarnContext(ctx, "rejected content listing", "error", err)
		span.SetStatus(codes.Error, "invalid request")
		return nil, err
	}

	span.SetAttributes(
		attribute.StringSlice("content.sources", sourceNames(query.Selection)),
		attribute.Int("content.tag_count", len(query.Tags.TagIDs)),
		attribute.String("content.tag_match", string(query.Tags.Mode)),
		attribute.String("content.sort_field", string(query.Sort.Field)),
		attribute.Bool("content.cursor", query.Cursor != nil),
		attribute.Int("content.page_size", query.PageSize),
	)

	if query.Selection.IsEmpty() {
		metrics.ShortCircuitTotal.Inc()
		return BuildPage(query, &domain.ContentSlice{TotalCount: 0}), nil
	}
	if !query.IncludeTotalCount {
		metrics.CountSkippedTotal.Inc()
	}

	slice, err := u.listContentGateway.ListContent(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list content failed")
		return nil, apperrors.FromDomainError(err, "usecase", "ListContentUsecase", "Execute")
	}

	page := BuildPage(query, slice)
	metrics.PageSize.Observe(float64(len(page.Items)))

	logger.Logger.DebugContext(ctx, "listed content",
		"items", len(page.Items),
		"has_next", page.Pagination.HasNext,
		"has_previous", page.Pagination.HasPrevious,
	)
	return page, nil
}

func (u *ListContentUsecase) buildQuery(input ListContentInput) (domain.ContentQuery, error) {
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = u.config.DefaultPageSize
	}
	if pageSize < 1 || pageSize > u.config.MaxPageSize {
		return domain.ContentQuery{}, unprocessable(fmt.Errorf("%w: page_size must be between 1 and %d, got %d",
			domain.ErrInvalidPagination, u.config.MaxPageSize, pageSize))
	}

	page := input.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return domain.ContentQuery{}, unprocessable(fmt.Errorf("%w: page must be at least 1, got %d", domain.ErrInvalidPagination, page))
	}

	selection, err := ResolveSourceTypes(input.Sources)
	if err != nil {
		return domain.ContentQuery{}, apperrors.FromDomainError(err, "usecase", "ListContentUsecase", "ResolveSourceTypes")
	}

	mode, ok := domain.ParseTagMatchMode(input.TagMatch)
	if !ok {
		return domain.ContentQuery{}, invalidEnum("tag_match", input.TagMatch)
	}
	sortField, ok := domain.ParseSortField(input.SortField)
	if !ok {
		return domain.ContentQuery{}, apperrors.FromDomainError(&domain.FilterValidationError{
			Kind: domain.UnknownSortField, Field: "sort_field", Value: input.SortField,
		}, "usecase", "ListContentUsecase", "Execute")
	}
	sortOrder, ok := domain.ParseSortOrder(input.SortOrder)
	if !ok {
		return domain.ContentQuery{}, invalidEnum("sort_order", input.SortOrder)
	}
	direction, ok := domain.ParsePageDirection(input.CursorDirection)
	if !ok {
		return domain.ContentQuery{}, invalidEnum("cursor_direction", input.CursorDirection)
	}

	var pageCursor *domain.PageCursor
	if strings.TrimSpace(input.Cursor) != "" {
		decoded, err := cursor.Decode(input.Cursor)
		if err != nil {
			return domain.ContentQuery{}, apperrors.FromDomainError(err, "usecase", "ListContentUsecase", "DecodeCursor")
		}
		if !sortField.IsCursorCapable() {
			return domain.ContentQuery{}, apperrors.FromDomainError(&domain.FilterValidationError{
				Kind: domain.CursorUnsupportedForSort, Field: "cursor", Value: string(sortField),
			}, "usecase", "ListContentUsecase", "Execute")
		}
		pageCursor = &decoded
	}

	tags := domain.NewTagFilterSpec(input.TagIDs, mode)

	return domain.ContentQuery{
		Selection:         selection,
		Tags:              tags,
		SearchTerm:        input.SearchTerm,
		Sort:              domain.SortSpec{Field: sortField, Order: sortOrder},
		Cursor:            pageCursor,
		Direction:         direction,
		Page:              page,
		PageSize:          pageSize,
		ViewerID:          input.ViewerID,
		IncludeTotalCount: u.includeTotalCount(tags),
	}, nil
}

func (u *ListContentUsecase) includeTotalCount(tags domain.TagFilterSpec) bool {
	if u.config.SkipTotalCount {
		return false
	}
	return !(u.config.SkipCountWithTagFilters && !tags.IsEmpty())
}

func sourceNames(sel domain.SourceTypeSelection) []string {
	names := make([]string, 0, 4)
	for _, entry := range []struct {
		token   string
		enabled bool
	}{
		{TokenUserRegular, sel.UserRegular},
		{TokenUserAuto, sel.UserAuto},
		{TokenCommunityRegular, sel.CommunityRegular},
		{TokenCommunityAuto, sel.CommunityAuto},
	} {
		if entry.enabled {
			names = append(names, entry.token)
		}
	}
	return names
}

func unprocessable(err error) error {
	return apperrors.NewUnprocessableContextError(err.Error(), "usecase", "ListContentUsecase", "Execute", err, nil)
}

func invalidEnum(field, value string) error {
	return apperrors.NewUnprocessableContextError(
		fmt.Sprintf("invalid value %q for %s", value, field),
		"usecase", "ListContentUsecase", "Execute", nil,
		map[string]interface{}{"field": field},
	)
}
