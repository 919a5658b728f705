package pgdb

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
)

// BuildLogQueryFilters maps validated predicates onto squirrel
// conditions. Every value ends up as a bound parameter; only the
// allowlisted column names reach the query text.
func BuildLogQueryFilters(filter repotypes.LogFilter) ([]sq.Sqlizer, uint64) {
	conds := make([]sq.Sqlizer, 0, len(filter.Predicates))

	for _, p := range filter.Predicates {
		switch p.Op {
		case repotypes.OpContains:
			conds = append(conds, sq.ILike{p.Field: "%" + p.Value.(string) + "%"})
		case repotypes.OpLike:
			conds = append(conds, sq.Like{p.Field: p.Value})
		case repotypes.OpBefore:
			conds = append(conds, sq.Lt{p.Field: p.Value})
		case repotypes.OpAfter:
			conds = append(conds, sq.Gt{p.Field: p.Value})
		default:
			conds = append(conds, sq.Eq{p.Field: p.Value})
		}
	}

	limit := repotypes.DefaultLimit
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	return conds, limit
}
