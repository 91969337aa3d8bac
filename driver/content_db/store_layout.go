package content_db

import (
	"fmt"
	"strings"

	"genonaut/domain"
)

// contentColumns are the physical columns shared by both content relations.
const contentColumns = "id, title, content_type, creator_id, created_at, updated_at, quality_score, is_private, tag_ids"

// StoreLayout decides where the unified view is read from.
// Relation must expose every content column plus source_type, aliased as c.
type StoreLayout interface {
	Relation(sources []domain.SourceType) string
	Table(src domain.SourceType) string
}

// PartitionedLayout reads from a parent table list-partitioned on source_type.
// Regular and Auto name the partitions, which the write path updates directly.
type PartitionedLayout struct {
	Parent  string
	Regular string
	Auto    string
}

func (l PartitionedLayout) Relation([]domain.SourceType) string {
	return l.Parent + " AS c"
}

func (l PartitionedLayout) Table(src domain.SourceType) string {
	if src == domain.SourceTypeAuto {
		return l.Auto
	}
	return l.Regular
}

// UnionLayout concatenates the two physical tables, skipping disabled sources.
type UnionLayout struct {
	Regular string
	Auto    string
}

func (l UnionLayout) Relation(sources []domain.SourceType) string {
	branches := make([]string, 0, len(sources))
	for _, src := range sources {
		branches = append(branches, fmt.Sprintf(
			"SELECT %s, '%s'::text AS source_type FROM %s", contentColumns, src, l.Table(src),
		))
	}
	return "(" + strings.Join(branches, " UNION ALL ") + ") AS c"
}

func (l UnionLayout) Table(src domain.SourceType) string {
	if src == domain.SourceTypeAuto {
		return l.Auto
	}
	return l.Regular
}
