package list_content_usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"genonaut/domain"
	"genonaut/mocks"
	"genonaut/test_utils"
	"genonaut/utils/cursor"
	apperrors "genonaut/utils/errors"
	"genonaut/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger()
}

var defaultConfig = PaginationConfig{DefaultPageSize: 10, MaxPageSize: 100}

func TestListContentUsecase_Execute_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockListContentPort(ctrl)
	usecase := NewListContentUsecase(port, defaultConfig)
	viewer := uuid.New()

	port.EXPECT().ListContent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.ContentQuery) (*domain.ContentSlice, error) {
			assert.Equal(t, domain.SelectAll(), q.Selection)
			assert.Equal(t, 10, q.PageSize)
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, domain.SortSpec{Field: domain.SortFieldCreatedAt, Order: domain.SortDesc}, q.Sort)
			assert.Equal(t, domain.TagMatchAny, q.Tags.Mode)
			assert.Equal(t, viewer, q.ViewerID)
			assert.True(t, q.IncludeTotalCount)
			assert.Nil(t, q.Cursor)
			return &domain.ContentSlice{TotalCount: 0}, nil
		})

	page, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 10, page.Pagination.PageSize)
}

func TestListContentUsecase_Execute_RejectsBeforeQuerying(t *testing.T) {
	tests := []struct {
		name   string
		input  ListContentInput
		code   string
		status int
	}{
		{"page size too large", ListContentInput{PageSize: 101}, apperrors.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"negative page size", ListContentInput{PageSize: -1}, apperrors.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"negative page", ListContentInput{Page: -2}, apperrors.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"bad tag match", ListContentInput{TagMatch: "some"}, apperrors.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"bad sort order", ListContentInput{SortOrder: "sideways"}, apperrors.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"bad direction", ListContentInput{CursorDirection: "up"}, apperrors.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"unknown sort field", ListContentInput{SortField: "views"}, apperrors.CodeFilterValidation, http.StatusBadRequest},
		{"unknown token", ListContentInput{Sources: SourceTypeRequest{Tokens: []string{"bogus"}, TokensPresent: true}}, apperrors.CodeFilterValidation, http.StatusBadRequest},
		{"garbage cursor", ListContentInput{Cursor: "***"}, apperrors.CodeCursor, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			port := mocks.NewMockListContentPort(ctrl)
			usecase := NewListContentUsecase(port, defaultConfig)

			page, err := usecase.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, page)

			appErr, ok := apperrors.AsAppContextError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.HTTPStatusCode())
		})
	}
}

func TestListContentUsecase_Execute_CursorRequiresTimestampSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	usecase := NewListContentUsecase(mocks.NewMockListContentPort(ctrl), defaultConfig)

	token, err := cursor.Encode(time.Now(), 1, domain.SourceTypeItems)
	require.NoError(t, err)

	_, err = usecase.Execute(context.Background(), ListContentInput{Cursor: token, SortField: "quality_score"})
	appErr, ok := apperrors.AsAppContextError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFilterValidation, appErr.Code)

	var filterErr *domain.FilterValidationError
	require.True(t, errors.As(err, &filterErr))
	assert.Equal(t, domain.CursorUnsupportedForSort, filterErr.Kind)
}

func TestListContentUsecase_Execute_EmptySelectionShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockListContentPort(ctrl)
	usecase := NewListContentUsecase(port, defaultConfig)

	port.EXPECT().ListContent(gomock.Any(), gomock.Any()).Times(0)

	page, err := usecase.Execute(context.Background(), ListContentInput{
		Sources: SourceTypeRequest{Tokens: []string{""}, TokensPresent: true},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Pagination.TotalCount)
	assert.Equal(t, int64(0), page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrevious)
}

func TestListContentUsecase_Execute_CountSkipping(t *testing.T) {
	tag := uuid.New()
	tests := []struct {
		name   string
		config PaginationConfig
		tags   []uuid.UUID
		want   bool
	}{
		{"count by default", defaultConfig, nil, true},
		{"skip always", PaginationConfig{DefaultPageSize: 10, MaxPageSize: 100, SkipTotalCount: true}, nil, false},
		{"skip with tags, no tags", PaginationConfig{DefaultPageSize: 10, MaxPageSize: 100, SkipCountWithTagFilters: true}, nil, true},
		{"skip with tags, tags", PaginationConfig{DefaultPageSize: 10, MaxPageSize: 100, SkipCountWithTagFilters: true}, []uuid.UUID{tag}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			port := mocks.NewMockListContentPort(ctrl)
			usecase := NewListContentUsecase(port, tt.config)

			port.EXPECT().ListContent(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, q domain.ContentQuery) (*domain.ContentSlice, error) {
					assert.Equal(t, tt.want, q.IncludeTotalCount)
					return &domain.ContentSlice{TotalCount: domain.TotalCountSkipped}, nil
				})

			_, err := usecase.Execute(context.Background(), ListContentInput{TagIDs: tt.tags})
			require.NoError(t, err)
		})
	}
}

func TestListContentUsecase_Execute_StoreTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockListContentPort(ctrl)
	usecase := NewListContentUsecase(port, defaultConfig)

	port.EXPECT().ListContent(gomock.Any(), gomock.Any()).
		Return(nil, &domain.StoreTimeoutError{Op: "ListContent", Cause: context.DeadlineExceeded})

	_, err := usecase.Execute(context.Background(), ListContentInput{})
	appErr, ok := apperrors.AsAppContextError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusGatewayTimeout, appErr.HTTPStatusCode())
	assert.Equal(t, "usecase", appErr.Layer)
}

// scenario builds 25 rows: the viewer owns 10 (4 private), others own 15 (5 private).
func scenario(viewer, other uuid.UUID, tagA, tagB uuid.UUID) []*domain.ContentRecord {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]*domain.ContentRecord, 0, 25)
	for i := 0; i < 25; i++ {
		src := domain.SourceTypeItems
		if i%2 == 1 {
			src = domain.SourceTypeAuto
		}
		creator := other
		private := i%3 == 0
		if i < 10 {
			creator = viewer
			private = i%5 < 2
		}
		var tags []uuid.UUID
		switch i % 4 {
		case 0:
			tags = []uuid.UUID{tagA}
		case 1:
			tags = []uuid.UUID{tagA, tagB}
		case 2:
			tags = []uuid.UUID{tagB}
		}
		rows = append(rows, &domain.ContentRecord{
			ID:         int64(i/2 + 1),
			Title:      fmt.Sprintf("Sunset study %02d", i),
			CreatorID:  creator,
			CreatedAt:  base.Add(time.Duration(i%7) * time.Hour),
			UpdatedAt:  base.Add(time.Duration(i) * time.Minute),
			IsPrivate:  private,
			SourceType: src,
			TagIDs:     tags,
		})
	}
	return rows
}

func visible(rows []*domain.ContentRecord, viewer uuid.UUID) int {
	n := 0
	for _, r := range rows {
		if r.CreatorID == viewer || !r.IsPrivate {
			n++
		}
	}
	return n
}

type rowKey struct {
	id  int64
	src domain.SourceType
}

func walk(t *testing.T, usecase *ListContentUsecase, input ListContentInput) []*domain.ContentRecord {
	t.Helper()
	var out []*domain.ContentRecord
	for guard := 0; guard < 200; guard++ {
		page, err := usecase.Execute(context.Background(), input)
		require.NoError(t, err)
		out = append(out, page.Items...)
		if !page.Pagination.HasNext {
			return out
		}
		require.NotNil(t, page.Pagination.NextCursor)
		input.Cursor = *page.Pagination.NextCursor
		input.CursorDirection = string(domain.PageNext)
	}
	t.Fatal("pagination did not terminate")
	return nil
}

func TestListContentUsecase_CursorWalk_NoDuplicatesOrGaps(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	rows := scenario(viewer, other, uuid.New(), uuid.New())
	store := test_utils.NewContentStore(rows...)
	usecase := NewListContentUsecase(store, defaultConfig)
	want := visible(rows, viewer)

	for _, size := range []int{1, 10, 100} {
		for _, field := range []string{"created_at", "updated_at"} {
			for _, order := range []string{"desc", "asc"} {
				t.Run(fmt.Sprintf("%s_%s_%d", field, order, size), func(t *testing.T) {
					got := walk(t, usecase, ListContentInput{PageSize: size, SortField: field, SortOrder: order, ViewerID: viewer})

					seen := make(map[rowKey]bool, len(got))
					for _, r := range got {
						key := rowKey{r.ID, r.SourceType}
						assert.False(t, seen[key], "duplicate %v", key)
						seen[key] = true
					}
					assert.Len(t, got, want)
				})
			}
		}
	}
}

func TestListContentUsecase_Scenario_PageCounts(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	rows := scenario(viewer, other, uuid.New(), uuid.New())
	usecase := NewListContentUsecase(test_utils.NewContentStore(rows...), defaultConfig)

	page, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer})
	require.NoError(t, err)

	total := int64(visible(rows, viewer))
	assert.Equal(t, total, page.Pagination.TotalCount)
	assert.Equal(t, (total+9)/10, page.Pagination.TotalPages)
	assert.Len(t, page.Items, 10)
	assert.True(t, page.Pagination.HasNext)

	own, err := usecase.Execute(context.Background(), ListContentInput{
		ViewerID: viewer,
		Sources:  SourceTypeRequest{Tokens: []string{TokenUserRegular, TokenUserAuto}, TokensPresent: true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), own.Pagination.TotalCount)

	community, err := usecase.Execute(context.Background(), ListContentInput{
		ViewerID: viewer,
		Sources:  SourceTypeRequest{LegacyCreatorFilter: "others"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), community.Pagination.TotalCount)
	for _, item := range community.Items {
		assert.NotEqual(t, viewer, item.CreatorID)
		assert.False(t, item.IsPrivate)
	}
}

func TestListContentUsecase_SourceUnionMatchesIndividualSelections(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	rows := scenario(viewer, other, uuid.New(), uuid.New())
	usecase := NewListContentUsecase(test_utils.NewContentStore(rows...), PaginationConfig{DefaultPageSize: 100, MaxPageSize: 100})

	count := func(tokens []string) int64 {
		page, err := usecase.Execute(context.Background(), ListContentInput{
			ViewerID: viewer,
			Sources:  SourceTypeRequest{Tokens: tokens, TokensPresent: true},
		})
		require.NoError(t, err)
		return page.Pagination.TotalCount
	}

	var sum int64
	for _, token := range allTokens {
		sum += count([]string{token})
	}
	assert.Equal(t, sum, count(allTokens))
	assert.Equal(t, int64(visible(rows, viewer)), sum)
}

func TestListContentUsecase_TagMatching(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	tagA, tagB := uuid.New(), uuid.New()
	rows := scenario(viewer, other, tagA, tagB)
	usecase := NewListContentUsecase(test_utils.NewContentStore(rows...), PaginationConfig{DefaultPageSize: 100, MaxPageSize: 100})

	list := func(mode string, tags ...uuid.UUID) []*domain.ContentRecord {
		page, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer, TagIDs: tags, TagMatch: mode})
		require.NoError(t, err)
		return page.Items
	}

	anyRows := list("any", tagA, tagB)
	allRows := list("all", tagA, tagB)
	require.NotEmpty(t, allRows)
	assert.Less(t, len(allRows), len(anyRows))

	for _, r := range allRows {
		assert.Contains(t, r.TagIDs, tagA)
		assert.Contains(t, r.TagIDs, tagB)
	}
	for _, r := range anyRows {
		assert.True(t, containsAny(r.TagIDs, tagA, tagB))
	}

	assert.Equal(t, len(list("any", tagA)), len(list("all", tagA)))
	assert.Equal(t, len(allRows), len(list("all", tagA, tagB, tagA)))
}

func TestListContentUsecase_UnmatchedTag(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	tagA, tagB := uuid.New(), uuid.New()
	unknown := uuid.New()
	store := test_utils.NewContentStore(scenario(viewer, other, tagA, tagB)...)
	usecase := NewListContentUsecase(store, PaginationConfig{DefaultPageSize: 100, MaxPageSize: 100})

	list := func(mode string, tags ...uuid.UUID) *domain.ContentPage {
		page, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer, TagIDs: tags, TagMatch: mode})
		require.NoError(t, err)
		return page
	}

	onlyA := list("any", tagA)
	require.NotEmpty(t, onlyA.Items)

	allWithUnknown := list("all", tagA, unknown)
	assert.Empty(t, allWithUnknown.Items)
	assert.Equal(t, int64(0), allWithUnknown.Pagination.TotalCount)
	assert.False(t, allWithUnknown.Pagination.HasNext)
	assert.Nil(t, allWithUnknown.Pagination.NextCursor)

	assert.Empty(t, list("all", unknown).Items)
	assert.Empty(t, list("any", unknown).Items)
	assert.Len(t, list("any", tagA, unknown).Items, len(onlyA.Items))
}

func containsAny(ids []uuid.UUID, want ...uuid.UUID) bool {
	for _, id := range ids {
		for _, w := range want {
			if id == w {
				return true
			}
		}
	}
	return false
}

func TestListContentUsecase_BackwardPagingReturnsPreviousPage(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	rows := scenario(viewer, other, uuid.New(), uuid.New())
	usecase := NewListContentUsecase(test_utils.NewContentStore(rows...), defaultConfig)

	first, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer, PageSize: 5})
	require.NoError(t, err)
	second, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer, PageSize: 5, Cursor: *first.Pagination.NextCursor})
	require.NoError(t, err)
	require.NotNil(t, second.Pagination.PrevCursor)

	back, err := usecase.Execute(context.Background(), ListContentInput{
		ViewerID:        viewer,
		PageSize:        5,
		Cursor:          *second.Pagination.PrevCursor,
		CursorDirection: "prev",
	})
	require.NoError(t, err)

	require.Len(t, back.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].ID, back.Items[i].ID)
		assert.Equal(t, first.Items[i].SourceType, back.Items[i].SourceType)
	}
	assert.False(t, back.Pagination.HasPrevious)
	assert.True(t, back.Pagination.HasNext)
}

func TestListContentUsecase_ConcurrentWritesKeepCursorWalkConsistent(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	rows := scenario(viewer, other, uuid.New(), uuid.New())
	store := test_utils.NewContentStore(rows...)
	usecase := NewListContentUsecase(store, defaultConfig)

	first, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer, PageSize: 5})
	require.NoError(t, err)
	boundary := first.Items[len(first.Items)-1].CreatedAt

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			store.Insert(&domain.ContentRecord{
				ID:         int64(1000 + i),
				Title:      "fresh upload",
				CreatorID:  other,
				CreatedAt:  boundary.Add(24 * time.Hour),
				SourceType: domain.SourceTypeItems,
			})
		}
	}()
	go func() {
		defer wg.Done()
		for _, r := range first.Items {
			store.Delete(r.ID, r.SourceType)
		}
	}()
	wg.Wait()

	rest := walk(t, usecase, ListContentInput{ViewerID: viewer, PageSize: 5, Cursor: *first.Pagination.NextCursor})

	seen := make(map[rowKey]bool)
	for _, r := range first.Items {
		seen[rowKey{r.ID, r.SourceType}] = true
	}
	for _, r := range rest {
		key := rowKey{r.ID, r.SourceType}
		assert.False(t, seen[key], "row %v repeated after writes", key)
		assert.NotEqual(t, "fresh upload", r.Title, "rows newer than the cursor must not appear")
		seen[key] = true
	}
	assert.Len(t, seen, visible(rows, viewer))
}

func TestListContentUsecase_SearchTerm(t *testing.T) {
	viewer, other := uuid.New(), uuid.New()
	rows := scenario(viewer, other, uuid.New(), uuid.New())
	usecase := NewListContentUsecase(test_utils.NewContentStore(rows...), defaultConfig)

	page, err := usecase.Execute(context.Background(), ListContentInput{ViewerID: viewer, SearchTerm: "  ＳＵＮＳＥＴ study 1"})
	require.NoError(t, err)
	for _, item := range page.Items {
		assert.Contains(t, item.Title, "Sunset study 1")
	}
	assert.NotEmpty(t, page.Items)
}
