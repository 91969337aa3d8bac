package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSourceTypeSelection_Ownership(t *testing.T) {
	tests := []struct {
		name      string
		selection SourceTypeSelection
		src       SourceType
		want      OwnershipScope
	}{
		{"all regular", SelectAll(), SourceTypeItems, OwnershipAll},
		{"all auto", SelectAll(), SourceTypeAuto, OwnershipAll},
		{"own regular only", SourceTypeSelection{UserRegular: true}, SourceTypeItems, OwnershipOwn},
		{"own regular leaves auto empty", SourceTypeSelection{UserRegular: true}, SourceTypeAuto, OwnershipNone},
		{"community auto", SourceTypeSelection{CommunityAuto: true}, SourceTypeAuto, OwnershipOthers},
		{"mixed per source", SourceTypeSelection{UserAuto: true, CommunityRegular: true}, SourceTypeItems, OwnershipOthers},
		{"empty", SourceTypeSelection{}, SourceTypeItems, OwnershipNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.selection.Ownership(tt.src))
		})
	}
}

func TestSourceTypeSelection_EnabledSources(t *testing.T) {
	assert.Equal(t, []SourceType{SourceTypeItems, SourceTypeAuto}, SelectAll().EnabledSources())
	assert.Equal(t, []SourceType{SourceTypeAuto}, SourceTypeSelection{CommunityAuto: true}.EnabledSources())
	assert.Empty(t, SourceTypeSelection{}.EnabledSources())
	assert.True(t, SourceTypeSelection{}.IsEmpty())
	assert.False(t, SelectAll().IsEmpty())
}

func TestNewTagFilterSpec_DropsDuplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	spec := NewTagFilterSpec([]uuid.UUID{a, b, a, a}, "")

	assert.Equal(t, []uuid.UUID{a, b}, spec.TagIDs)
	assert.Equal(t, TagMatchAny, spec.Mode)
	assert.True(t, NewTagFilterSpec(nil, TagMatchAll).IsEmpty())
}

func TestParsers(t *testing.T) {
	field, ok := ParseSortField("")
	assert.True(t, ok)
	assert.Equal(t, SortFieldCreatedAt, field)

	_, ok = ParseSortField("popularity")
	assert.False(t, ok)

	assert.True(t, SortFieldUpdatedAt.IsCursorCapable())
	assert.False(t, SortFieldQualityScore.IsCursorCapable())

	order, ok := ParseSortOrder("asc")
	assert.True(t, ok)
	assert.Equal(t, SortDesc, order.Reverse())

	_, ok = ParseTagMatchMode("some")
	assert.False(t, ok)

	dir, ok := ParsePageDirection("")
	assert.True(t, ok)
	assert.Equal(t, PageNext, dir)
}

func TestContentQuery_EffectiveOrderAndOffset(t *testing.T) {
	cursor := &PageCursor{ID: 1, SourceType: SourceTypeItems}

	q := ContentQuery{Sort: SortSpec{Field: SortFieldCreatedAt, Order: SortDesc}, Page: 3, PageSize: 10}
	assert.Equal(t, SortDesc, q.EffectiveOrder())
	assert.Equal(t, 20, q.Offset())

	q.Cursor = cursor
	q.Direction = PagePrev
	assert.Equal(t, SortAsc, q.EffectiveOrder())
	assert.Equal(t, 0, q.Offset())
}

func TestSourceType_Mapping(t *testing.T) {
	assert.Equal(t, ContentSourceRegular, SourceTypeItems.ContentSource())
	assert.Equal(t, ContentSourceAuto, SourceTypeAuto.ContentSource())
	assert.Equal(t, SourceTypeItems, ContentSourceRegular.SourceType())

	src, ok := ParseSourceType("regular")
	assert.True(t, ok)
	assert.Equal(t, SourceTypeItems, src)

	_, ok = ParseSourceType("community")
	assert.False(t, ok)
	assert.False(t, SourceType("regular").IsValid())
}
