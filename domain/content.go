package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceType is the discriminator of the physical relation a content record lives in.
type SourceType string

const (
	SourceTypeItems SourceType = "items"
	SourceTypeAuto  SourceType = "auto"
)

// AllSourceTypes lists the known source types in their canonical order.
var AllSourceTypes = []SourceType{SourceTypeItems, SourceTypeAuto}

// IsValid reports whether s is one of the known source types.
func (s SourceType) IsValid() bool {
	return s == SourceTypeItems || s == SourceTypeAuto
}

// ContentSource returns the junction-table spelling of the source type.
func (s SourceType) ContentSource() ContentSource {
	if s == SourceTypeAuto {
		return ContentSourceAuto
	}
	return ContentSourceRegular
}

// ParseSourceType accepts either the source_type or the content_source spelling.
func ParseSourceType(raw string) (SourceType, bool) {
	switch raw {
	case string(SourceTypeItems), string(ContentSourceRegular):
		return SourceTypeItems, true
	case string(SourceTypeAuto):
		return SourceTypeAuto, true
	default:
		return "", false
	}
}

// ContentSource mirrors SourceType inside the content/tag junction.
type ContentSource string

const (
	ContentSourceRegular ContentSource = "regular"
	ContentSourceAuto    ContentSource = "auto"
)

// SourceType maps the junction spelling back to the content discriminator.
func (c ContentSource) SourceType() SourceType {
	if c == ContentSourceAuto {
		return SourceTypeAuto
	}
	return SourceTypeItems
}

// ContentRecord is a single generated or authored artifact as seen through the unified view.
// The pair (ID, SourceType) is unique; ID alone is only unique within its source.
type ContentRecord struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	ContentType  string      `json:"content_type"`
	CreatorID    uuid.UUID   `json:"creator_id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	QualityScore float64     `json:"quality_score"`
	IsPrivate    bool        `json:"is_private"`
	SourceType   SourceType  `json:"source_type"`
	TagIDs       []uuid.UUID `json:"tag_ids"`
}

// SortTimestamp returns the record's value for a timestamp sort field.
func (r *ContentRecord) SortTimestamp(field SortField) time.Time {
	if field == SortFieldUpdatedAt {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

// CursorKey returns the tie-breaking part of the sort key.
func (r *ContentRecord) CursorKey() (int64, SourceType) {
	return r.ID, r.SourceType
}
