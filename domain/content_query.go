package domain

import (
	"github.com/google/uuid"
)

// SourceTypeSelection holds the four independent inclusion flags of the unified view.
// The zero value selects nothing.
type SourceTypeSelection struct {
	UserRegular      bool
	UserAuto         bool
	CommunityRegular bool
	CommunityAuto    bool
}

// SelectAll returns the selection used when no filter was requested at all.
func SelectAll() SourceTypeSelection {
	return SourceTypeSelection{UserRegular: true, UserAuto: true, CommunityRegular: true, CommunityAuto: true}
}

// IsEmpty reports whether every flag is false.
func (s SourceTypeSelection) IsEmpty() bool {
	return !s.UserRegular && !s.UserAuto && !s.CommunityRegular && !s.CommunityAuto
}

// OwnershipScope describes which creators are visible for one source.
type OwnershipScope int

const (
	OwnershipNone OwnershipScope = iota
	OwnershipOwn
	OwnershipOthers
	OwnershipAll
)

// Ownership returns the creator scope selected for the given source.
func (s SourceTypeSelection) Ownership(src SourceType) OwnershipScope {
	user, community := s.UserRegular, s.CommunityRegular
	if src == SourceTypeAuto {
		user, community = s.UserAuto, s.CommunityAuto
	}
	switch {
	case user && community:
		return OwnershipAll
	case user:
		return OwnershipOwn
	case community:
		return OwnershipOthers
	default:
		return OwnershipNone
	}
}

// EnabledSources returns the sources with at least one flag set, in canonical order.
func (s SourceTypeSelection) EnabledSources() []SourceType {
	sources := make([]SourceType, 0, len(AllSourceTypes))
	for _, src := range AllSourceTypes {
		if s.Ownership(src) != OwnershipNone {
			sources = append(sources, src)
		}
	}
	return sources
}

// TagMatchMode selects "at least one" or "every" semantics for tag filters.
type TagMatchMode string

const (
	TagMatchAny TagMatchMode = "any"
	TagMatchAll TagMatchMode = "all"
)

// ParseTagMatchMode defaults to TagMatchAny for an empty value.
func ParseTagMatchMode(raw string) (TagMatchMode, bool) {
	switch TagMatchMode(raw) {
	case "", TagMatchAny:
		return TagMatchAny, true
	case TagMatchAll:
		return TagMatchAll, true
	default:
		return "", false
	}
}

// TagFilterSpec is a de-duplicated set of tag ids plus a match mode.
type TagFilterSpec struct {
	TagIDs []uuid.UUID
	Mode   TagMatchMode
}

// NewTagFilterSpec drops duplicate ids, keeping first-seen order.
func NewTagFilterSpec(ids []uuid.UUID, mode TagMatchMode) TagFilterSpec {
	if mode == "" {
		mode = TagMatchAny
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return TagFilterSpec{TagIDs: unique, Mode: mode}
}

// IsEmpty reports whether no tag filtering is requested.
func (t TagFilterSpec) IsEmpty() bool {
	return len(t.TagIDs) == 0
}

// SortField is one of the allow-listed sort columns.
type SortField string

const (
	SortFieldCreatedAt    SortField = "created_at"
	SortFieldUpdatedAt    SortField = "updated_at"
	SortFieldQualityScore SortField = "quality_score"
	SortFieldTitle        SortField = "title"
)

// ParseSortField defaults to created_at for an empty value.
func ParseSortField(raw string) (SortField, bool) {
	switch SortField(raw) {
	case "":
		return SortFieldCreatedAt, true
	case SortFieldCreatedAt, SortFieldUpdatedAt, SortFieldQualityScore, SortFieldTitle:
		return SortField(raw), true
	default:
		return "", false
	}
}

// IsCursorCapable reports whether keyset cursors can be issued for this field.
// Cursors carry a timestamp, so only timestamp columns qualify.
func (f SortField) IsCursorCapable() bool {
	return f == SortFieldCreatedAt || f == SortFieldUpdatedAt
}

// SortOrder is the direction of the primary sort key.
type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

// ParseSortOrder defaults to descending for an empty value.
func ParseSortOrder(raw string) (SortOrder, bool) {
	switch SortOrder(raw) {
	case "", SortDesc:
		return SortDesc, true
	case SortAsc:
		return SortAsc, true
	default:
		return "", false
	}
}

// Reverse flips the order.
func (o SortOrder) Reverse() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// SortSpec is the primary sort key; id and source_type always follow in the same direction.
type SortSpec struct {
	Field SortField
	Order SortOrder
}

// PageDirection tells whether a cursor points to the following or the preceding page.
type PageDirection string

const (
	PageNext PageDirection = "next"
	PagePrev PageDirection = "prev"
)

// ParsePageDirection defaults to PageNext for an empty value.
func ParsePageDirection(raw string) (PageDirection, bool) {
	switch PageDirection(raw) {
	case "", PageNext:
		return PageNext, true
	case PagePrev:
		return PagePrev, true
	default:
		return "", false
	}
}

// ContentQuery is the fully resolved request handed to the store.
type ContentQuery struct {
	Selection         SourceTypeSelection
	Tags              TagFilterSpec
	SearchTerm        string
	Sort              SortSpec
	Cursor            *PageCursor
	Direction         PageDirection
	Page              int
	PageSize          int
	ViewerID          uuid.UUID
	IncludeTotalCount bool
}

// EffectiveOrder is the order rows are fetched in, which is reversed when paging backwards.
func (q ContentQuery) EffectiveOrder() SortOrder {
	if q.Cursor != nil && q.Direction == PagePrev {
		return q.Sort.Order.Reverse()
	}
	return q.Sort.Order
}

// Offset is only meaningful without a cursor.
func (q ContentQuery) Offset() int {
	if q.Cursor != nil || q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// TotalCountSkipped marks total_count and total_pages as not computed.
const TotalCountSkipped int64 = -1

// ContentSlice is what the store returns: up to PageSize+1 rows and an optional count.
type ContentSlice struct {
	Records    []*ContentRecord
	TotalCount int64
}

// PaginationMeta is the pagination half of the page envelope.
type PaginationMeta struct {
	Page        int     `json:"page"`
	PageSize    int     `json:"page_size"`
	TotalCount  int64   `json:"total_count"`
	TotalPages  int64   `json:"total_pages"`
	HasNext     bool    `json:"has_next"`
	HasPrevious bool    `json:"has_previous"`
	NextCursor  *string `json:"next_cursor"`
	PrevCursor  *string `json:"prev_cursor"`
}

// ContentPage is the envelope returned to callers.
type ContentPage struct {
	Items      []*ContentRecord `json:"items"`
	Pagination PaginationMeta   `json:"pagination"`
}
