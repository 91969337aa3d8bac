package content_db

import (
	"fmt"
	"strings"

	"genonaut/domain"
)

// selectColumns is the projection scanned by scanContentRecord, in order.
const selectColumns = `c.id, COALESCE(c.title, ''), COALESCE(c.content_type, ''), c.creator_id::text,
	c.created_at, c.updated_at, COALESCE(c.quality_score, 0), c.is_private, c.source_type,
	COALESCE(c.tag_ids::text[], '{}')`

// sortColumns is the sort allow-list; nothing else reaches ORDER BY.
var sortColumns = map[domain.SortField]string{
	domain.SortFieldCreatedAt:    "c.created_at",
	domain.SortFieldUpdatedAt:    "c.updated_at",
	domain.SortFieldQualityScore: "c.quality_score",
	domain.SortFieldTitle:        "c.title",
}

// Plan is a ready-to-run page query and its matching count query.
// Empty plans must not be executed.
type Plan struct {
	Empty       bool
	SQL         string
	Args        []any
	CountSQL    string
	CountArgs   []any
	TagStrategy TagStrategy
}

// QueryPlanner builds the single parameterised statement behind a listing.
type QueryPlanner struct {
	layout StoreLayout
	tags   TagFilterPlanner
}

func NewQueryPlanner(layout StoreLayout, tagJunction string, semiJoinLimit int) *QueryPlanner {
	return &QueryPlanner{
		layout: layout,
		tags:   TagFilterPlanner{Junction: tagJunction, SemiJoinLimit: semiJoinLimit},
	}
}

func (p *QueryPlanner) Plan(q domain.ContentQuery) (Plan, error) {
	sortColumn, ok := sortColumns[q.Sort.Field]
	if !ok {
		return Plan{}, &domain.FilterValidationError{Kind: domain.UnknownSortField, Field: "sort_field", Value: string(q.Sort.Field)}
	}
	if q.Cursor != nil && !q.Sort.Field.IsCursorCapable() {
		return Plan{}, &domain.FilterValidationError{Kind: domain.CursorUnsupportedForSort, Field: "cursor", Value: string(q.Sort.Field)}
	}
	if q.PageSize < 1 || q.Page < 0 {
		return Plan{}, fmt.Errorf("%w: page=%d page_size=%d", domain.ErrInvalidPagination, q.Page, q.PageSize)
	}

	sources := q.Selection.EnabledSources()
	if len(sources) == 0 {
		return Plan{Empty: true, TagStrategy: TagStrategyNone}, nil
	}

	args := &argList{}
	where := []string{
		p.sourcePredicate(sources, args),
		p.ownershipPredicate(q, sources, args),
	}

	if term := NormalizeSearchTerm(q.SearchTerm); term != "" {
		where = append(where, fmt.Sprintf(`c.title ILIKE ('%%' || %s || '%%') ESCAPE '\'`, args.add(escapeLike(term))))
	}

	tagPredicate, strategy := p.tags.Plan(q.Tags, args)
	if tagPredicate != "" {
		where = append(where, tagPredicate)
	}

	relation := p.layout.Relation(sources)
	filter := strings.Join(where, "\n\t  AND ")

	plan := Plan{
		CountSQL:    fmt.Sprintf("SELECT COUNT(*) FROM %s\n\tWHERE %s", relation, filter),
		CountArgs:   args.snapshot(),
		TagStrategy: strategy,
	}

	order := q.EffectiveOrder()
	if q.Cursor != nil {
		cmp := "<"
		if order == domain.SortAsc {
			cmp = ">"
		}
		filter += fmt.Sprintf("\n\t  AND (%s, c.id, c.source_type) %s (%s::timestamptz, %s::bigint, %s::text)",
			sortColumn, cmp,
			args.add(q.Cursor.Timestamp), args.add(q.Cursor.ID), args.add(string(q.Cursor.SourceType)),
		)
	}

	dir := "DESC"
	if order == domain.SortAsc {
		dir = "ASC"
	}

	var sql strings.Builder
	fmt.Fprintf(&sql, "SELECT %s\n\tFROM %s\n\tWHERE %s\n\tORDER BY %s %s, c.id %s, c.source_type %s\n\tLIMIT %s",
		selectColumns, relation, filter, sortColumn, dir, dir, dir, args.add(q.PageSize+1))
	if offset := q.Offset(); offset > 0 {
		fmt.Fprintf(&sql, " OFFSET %s", args.add(offset))
	}

	plan.SQL = sql.String()
	plan.Args = args.values
	return plan, nil
}

// sourcePredicate lets the planner prune partitions that cannot match.
func (p *QueryPlanner) sourcePredicate(sources []domain.SourceType, args *argList) string {
	values := make([]string, len(sources))
	for i, src := range sources {
		values[i] = string(src)
	}
	return fmt.Sprintf("c.source_type = ANY(%s::text[])", args.add(values))
}

// ownershipPredicate restricts each enabled source to the creators its flags allow.
// When every enabled source shares a scope the per-source discrimination is dropped.
func (p *QueryPlanner) ownershipPredicate(q domain.ContentQuery, sources []domain.SourceType, args *argList) string {
	viewer := args.add(q.ViewerID.String())

	scopes := make([]domain.OwnershipScope, len(sources))
	uniform := true
	for i, src := range sources {
		scopes[i] = q.Selection.Ownership(src)
		if scopes[i] != scopes[0] {
			uniform = false
		}
	}

	if uniform {
		return ownershipClause(scopes[0], viewer)
	}

	clauses := make([]string, len(sources))
	for i, src := range sources {
		clauses[i] = fmt.Sprintf("(c.source_type = '%s' AND %s)", src, ownershipClause(scopes[i], viewer))
	}
	return "(" + strings.Join(clauses, " OR ") + ")"
}

func ownershipClause(scope domain.OwnershipScope, viewer string) string {
	switch scope {
	case domain.OwnershipOwn:
		return fmt.Sprintf("c.creator_id = %s::uuid", viewer)
	case domain.OwnershipOthers:
		return fmt.Sprintf("(c.creator_id <> %s::uuid AND c.is_private = false)", viewer)
	default:
		return fmt.Sprintf("(c.creator_id = %s::uuid OR c.is_private = false)", viewer)
	}
}
