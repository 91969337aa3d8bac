// Package test_utils holds in-memory fakes and helpers shared by package tests.
package test_utils

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"genonaut/domain"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// ContentStore is an in-memory ListContentPort that follows the SQL planner's
// filtering and keyset ordering so usecase properties can be exercised without Postgres.
type ContentStore struct {
	mu      sync.RWMutex
	records []*domain.ContentRecord
	calls   int
}

func NewContentStore(records ...*domain.ContentRecord) *ContentStore {
	s := &ContentStore{}
	s.Insert(records...)
	return s
}

// Insert adds copies of the records.
func (s *ContentStore) Insert(records ...*domain.ContentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		clone := *r
		clone.TagIDs = slices.Clone(r.TagIDs)
		s.records = append(s.records, &clone)
	}
}

// Delete removes the record identified by (id, source) and reports whether it existed.
func (s *ContentStore) Delete(id int64, source domain.SourceType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.records)
	s.records = slices.DeleteFunc(s.records, func(r *domain.ContentRecord) bool {
		return r.ID == id && r.SourceType == source
	})
	return len(s.records) != before
}

// Calls reports how many times ListContent ran.
func (s *ContentStore) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}

func (s *ContentStore) ListContent(ctx context.Context, q domain.ContentQuery) (*domain.ContentSlice, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.StoreTimeoutError{Op: "ListContent", Cause: err}
	}

	s.mu.Lock()
	s.calls++
	matched := make([]*domain.ContentRecord, 0, len(s.records))
	for _, r := range s.records {
		if matches(q, r) {
			clone := *r
			matched = append(matched, &clone)
		}
	}
	s.mu.Unlock()

	total := domain.TotalCountSkipped
	if q.IncludeTotalCount {
		total = int64(len(matched))
	}

	order := q.EffectiveOrder()
	slices.SortFunc(matched, func(a, b *domain.ContentRecord) int {
		c := compareKey(a, b, q.Sort.Field)
		if order == domain.SortDesc {
			return -c
		}
		return c
	})

	if q.Cursor != nil {
		matched = slices.DeleteFunc(matched, func(r *domain.ContentRecord) bool {
			c := compareToCursor(r, q.Sort.Field, q.Cursor)
			if order == domain.SortDesc {
				return c >= 0
			}
			return c <= 0
		})
	}

	offset := min(q.Offset(), len(matched))
	matched = matched[offset:]
	if len(matched) > q.PageSize+1 {
		matched = matched[:q.PageSize+1]
	}

	return &domain.ContentSlice{Records: matched, TotalCount: total}, nil
}

func matches(q domain.ContentQuery, r *domain.ContentRecord) bool {
	owned := r.CreatorID == q.ViewerID
	switch q.Selection.Ownership(r.SourceType) {
	case domain.OwnershipNone:
		return false
	case domain.OwnershipOwn:
		if !owned {
			return false
		}
	case domain.OwnershipOthers:
		if owned || r.IsPrivate {
			return false
		}
	case domain.OwnershipAll:
		if !owned && r.IsPrivate {
			return false
		}
	}

	if term := strings.TrimSpace(norm.NFKC.String(q.SearchTerm)); term != "" {
		if !strings.Contains(strings.ToLower(r.Title), strings.ToLower(term)) {
			return false
		}
	}

	if q.Tags.IsEmpty() {
		return true
	}
	has := func(id uuid.UUID) bool { return slices.Contains(r.TagIDs, id) }
	if q.Tags.Mode == domain.TagMatchAll {
		for _, id := range q.Tags.TagIDs {
			if !has(id) {
				return false
			}
		}
		return true
	}
	return slices.ContainsFunc(q.Tags.TagIDs, has)
}

func compareKey(a, b *domain.ContentRecord, field domain.SortField) int {
	var c int
	switch field {
	case domain.SortFieldQualityScore:
		c = cmp.Compare(a.QualityScore, b.QualityScore)
	case domain.SortFieldTitle:
		c = cmp.Compare(a.Title, b.Title)
	default:
		c = a.SortTimestamp(field).Compare(b.SortTimestamp(field))
	}
	if c != 0 {
		return c
	}
	if c = cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.SourceType, b.SourceType)
}

func compareToCursor(r *domain.ContentRecord, field domain.SortField, cur *domain.PageCursor) int {
	if c := r.SortTimestamp(field).Compare(cur.Timestamp); c != 0 {
		return c
	}
	if c := cmp.Compare(r.ID, cur.ID); c != 0 {
		return c
	}
	return cmp.Compare(r.SourceType, cur.SourceType)
}
