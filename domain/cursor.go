package domain

import "time"

// PageCursor is a position in the unified (sort_field, id, source_type) order.
// A cursor is either absent or has all three fields set.
type PageCursor struct {
	Timestamp  time.Time
	ID         int64
	SourceType SourceType
}
