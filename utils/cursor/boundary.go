package cursor

import (
	"time"

	"genonaut/domain"
)

// Boundary is the part of a result row a cursor is derived from.
// Exactly one of Time or ISOTime is expected to be set; ISOTime lets callers
// hand over rows whose timestamp was already rendered as a string.
type Boundary struct {
	Time       time.Time
	ISOTime    string
	ID         *int64
	SourceType domain.SourceType
}

// CursorFields is implemented by rows that can report their position in the sort order.
type CursorFields interface {
	SortTimestamp(field domain.SortField) time.Time
	CursorKey() (int64, domain.SourceType)
}

// BoundariesOf extracts boundaries from a page of rows.
func BoundariesOf[T CursorFields](rows []T, field domain.SortField) []Boundary {
	out := make([]Boundary, 0, len(rows))
	for _, row := range rows {
		id, src := row.CursorKey()
		out = append(out, Boundary{Time: row.SortTimestamp(field), ID: &id, SourceType: src})
	}
	return out
}

// BoundaryFromISO builds a boundary from an already rendered timestamp.
func BoundaryFromISO(ts string, id int64, src domain.SourceType) Boundary {
	return Boundary{ISOTime: ts, ID: &id, SourceType: src}
}

// BoundaryOf extracts the boundary of a record for the given sort field.
func BoundaryOf(record *domain.ContentRecord, field domain.SortField) Boundary {
	if record == nil {
		return Boundary{}
	}
	id := record.ID
	return Boundary{
		Time:       record.SortTimestamp(field),
		ID:         &id,
		SourceType: record.SourceType,
	}
}

// NextCursor encodes the last boundary of a page, or returns nil.
func NextCursor(items []Boundary) *string {
	if len(items) == 0 {
		return nil
	}
	return fromBoundary(items[len(items)-1])
}

// PrevCursor encodes the first boundary of a page, or returns nil.
func PrevCursor(items []Boundary) *string {
	if len(items) == 0 {
		return nil
	}
	return fromBoundary(items[0])
}

func fromBoundary(b Boundary) *string {
	if b.ID == nil || b.SourceType == "" {
		return nil
	}

	ts := b.Time
	if ts.IsZero() {
		if b.ISOTime == "" {
			return nil
		}
		parsed, err := ParseTimestamp(b.ISOTime)
		if err != nil {
			return nil
		}
		ts = parsed
	}

	encoded, err := Encode(ts, *b.ID, b.SourceType)
	if err != nil {
		return nil
	}
	return &encoded
}
