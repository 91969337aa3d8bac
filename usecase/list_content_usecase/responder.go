package list_content_usecase

import (
	"slices"

	"genonaut/domain"
	"genonaut/utils/cursor"
)

// BuildPage trims the probe row, orients the rows and derives the pagination envelope.
// The store returns up to PageSize+1 rows in fetch order, which is reversed when paging backwards.
func BuildPage(q domain.ContentQuery, slice *domain.ContentSlice) *domain.ContentPage {
	var rows []*domain.ContentRecord
	total := int64(0)
	if slice != nil {
		rows = slice.Records
		total = slice.TotalCount
	}

	probed := len(rows) > q.PageSize
	if probed {
		rows = rows[:q.PageSize]
	}
	items := make([]*domain.ContentRecord, len(rows))
	copy(items, rows)

	var hasNext, hasPrev bool
	if q.Cursor != nil && q.Direction == domain.PagePrev {
		slices.Reverse(items)
		hasPrev = probed
		hasNext = true
	} else {
		hasNext = probed
		hasPrev = q.Cursor != nil || q.Page > 1
	}
	if len(items) == 0 {
		hasNext = false
	}

	meta := domain.PaginationMeta{
		Page:        max(q.Page, 1),
		PageSize:    q.PageSize,
		TotalCount:  total,
		TotalPages:  totalPages(total, q.PageSize),
		HasNext:     hasNext,
		HasPrevious: hasPrev,
	}

	if len(items) > 0 && q.Sort.Field.IsCursorCapable() {
		boundaries := cursor.BoundariesOf(items, q.Sort.Field)
		if hasNext {
			meta.NextCursor = cursor.NextCursor(boundaries)
		}
		if hasPrev {
			meta.PrevCursor = cursor.PrevCursor(boundaries)
		}
	}

	return &domain.ContentPage{Items: items, Pagination: meta}
}

func totalPages(total int64, pageSize int) int64 {
	if total == domain.TotalCountSkipped {
		return domain.TotalCountSkipped
	}
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (total + size - 1) / size
}
