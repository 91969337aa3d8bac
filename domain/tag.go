package domain

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// Tag is a named category with a stable identifier.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ContentTagLink is one row of the content/tag junction.
type ContentTagLink struct {
	ContentID     int64
	ContentSource ContentSource
	TagID         uuid.UUID
}

// ProjectTagIDs computes the denormalised tag_ids array kept on a content row.
// The projection is the distinct set of linked tag ids in byte order, so two
// projections of the same junction state are always identical.
func ProjectTagIDs(links []ContentTagLink) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(links))
	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		if _, ok := seen[link.TagID]; ok {
			continue
		}
		seen[link.TagID] = struct{}{}
		ids = append(ids, link.TagID)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

// ProjectionMatches reports whether a stored projection mirrors the junction rows.
func ProjectionMatches(stored []uuid.UUID, links []ContentTagLink) bool {
	want := ProjectTagIDs(links)
	if len(stored) != len(want) {
		return false
	}
	for i := range want {
		if stored[i] != want[i] {
			return false
		}
	}
	return true
}
