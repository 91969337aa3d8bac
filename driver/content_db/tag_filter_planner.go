package content_db

import (
	"fmt"
	"strconv"
	"strings"

	"genonaut/domain"
)

// TagStrategy names the SQL shape chosen for a tag filter.
type TagStrategy string

const (
	TagStrategyNone        TagStrategy = "none"
	TagStrategyAny         TagStrategy = "any"
	TagStrategyAllSemiJoin TagStrategy = "all_semi_join"
	TagStrategyAllGrouped  TagStrategy = "all_grouped"
)

// contentSourceExpr maps c.source_type onto the junction's content_source spelling.
const contentSourceExpr = "CASE c.source_type WHEN 'items' THEN 'regular' ELSE 'auto' END"

// argList collects positional parameters and hands back their placeholders.
type argList struct {
	values []any
}

func (a *argList) add(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

func (a *argList) snapshot() []any {
	return append([]any(nil), a.values...)
}

// TagFilterPlanner turns a tag filter into a predicate over the junction table.
// Every shape is an EXISTS correlated on (content_id, content_source) so the
// outer query never fans out and never needs DISTINCT.
type TagFilterPlanner struct {
	Junction      string
	SemiJoinLimit int
}

// Plan returns "" when no tag filtering is needed.
func (p TagFilterPlanner) Plan(spec domain.TagFilterSpec, args *argList) (string, TagStrategy) {
	spec = domain.NewTagFilterSpec(spec.TagIDs, spec.Mode)
	if spec.IsEmpty() {
		return "", TagStrategyNone
	}

	ids := make([]string, len(spec.TagIDs))
	for i, id := range spec.TagIDs {
		ids[i] = id.String()
	}

	if spec.Mode != domain.TagMatchAll {
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s ct WHERE ct.content_id = c.id AND ct.content_source = %s AND ct.tag_id = ANY(%s::uuid[]))",
			p.Junction, contentSourceExpr, args.add(ids),
		), TagStrategyAny
	}

	if len(ids) <= p.SemiJoinLimit {
		clauses := make([]string, len(ids))
		for i, id := range ids {
			alias := "ct" + strconv.Itoa(i)
			clauses[i] = fmt.Sprintf(
				"EXISTS (SELECT 1 FROM %s %s WHERE %s.content_id = c.id AND %s.content_source = %s AND %s.tag_id = %s::uuid)",
				p.Junction, alias, alias, alias, contentSourceExpr, alias, args.add(id),
			)
		}
		return strings.Join(clauses, " AND "), TagStrategyAllSemiJoin
	}

	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s ctg WHERE ctg.content_id = c.id AND ctg.content_source = %s AND ctg.tag_id = ANY(%s::uuid[]) GROUP BY ctg.content_id HAVING COUNT(DISTINCT ctg.tag_id) = %s)",
		p.Junction, contentSourceExpr, args.add(ids), args.add(len(ids)),
	), TagStrategyAllGrouped
}
