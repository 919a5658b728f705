// Package repotypes holds the request-level filter representation the
// repositories compile into queries.
package repotypes

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nutscript/helix-logs/internal/steamid"
)

// DefaultLimit caps an unconstrained listing so a blank filter form
// cannot scan the whole ix_logs table into memory.
const DefaultLimit uint64 = 5000

type Operator string

const (
	OpEq       Operator = "eq"       // exact equality
	OpLike     Operator = "like"     // literal LIKE
	OpContains Operator = "contains" // case-insensitive substring
	OpBefore   Operator = "before"   // datetime <
	OpAfter    Operator = "after"    // datetime >
)

// Predicate is one validated (field, operator, value) condition. Value
// is always bound as a query parameter, never spliced into SQL text.
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

// LogFilter is a validated log query: AND-joined predicates plus a
// result cap. Built per request, never persisted.
type LogFilter struct {
	Predicates []Predicate
	Limit      uint64
}

// ix_logs columns a generic key may filter on. Keys outside this set
// are dropped: column names cannot be parametrized, so they must come
// from a fixed list rather than the query string.
var logColumns = map[string]bool{
	"id":       true,
	"steamid":  true,
	"char_id":  true,
	"log_type": true,
	"pos_x":    true,
	"pos_y":    true,
	"pos_z":    true,
	"map":      true,
	"datetime": true,
	"text":     true,
	"lookup1":  true,
	"lookup2":  true,
	"lookup3":  true,
}

// Date layouts accepted for before/after values, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2 2006 3:04PM",
	"Jan 2 2006",
}

// ParseLogFilter turns raw query parameters into a LogFilter.
//
// Rules per key: "text" becomes a case-insensitive substring match;
// "steamid" is normalized to its steam64 form when it parses, else kept
// as a literal LIKE so partial ids still match; "before"/"after" parse
// as calendar dates into unix-epoch comparisons and are silently
// dropped when unparseable, so a half-filled date field loosens the
// query instead of erroring; "limit" caps the result count; any other
// known column becomes an equality match. Empty values mean "filter not
// supplied" and are skipped. Keys are processed in sorted order to keep
// the generated query text deterministic.
func ParseLogFilter(params map[string]string) LogFilter {
	filter := LogFilter{Limit: DefaultLimit}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := params[key]
		if value == "" {
			continue
		}

		switch key {
		case "limit":
			if limit, err := strconv.ParseUint(value, 10, 64); err == nil && limit > 0 {
				filter.Limit = limit
			}

		case "text":
			filter.Predicates = append(filter.Predicates, Predicate{
				Field: "text",
				Op:    OpContains,
				Value: value,
			})

		case "steamid":
			cleaned := stripQuotes(strings.TrimSpace(value))
			if cleaned == "" {
				continue
			}
			matched := cleaned
			if id, err := steamid.Parse(cleaned); err == nil {
				matched = id.Steam64()
			}
			filter.Predicates = append(filter.Predicates, Predicate{
				Field: "steamid",
				Op:    OpLike,
				Value: matched,
			})

		case "before", "after":
			ts, ok := parseDate(value)
			if !ok {
				continue
			}
			op := OpBefore
			if key == "after" {
				op = OpAfter
			}
			filter.Predicates = append(filter.Predicates, Predicate{
				Field: "datetime",
				Op:    op,
				Value: ts,
			})

		default:
			if !logColumns[key] {
				continue
			}
			filter.Predicates = append(filter.Predicates, Predicate{
				Field: key,
				Op:    OpEq,
				Value: value,
			})
		}
	}

	return filter
}

func stripQuotes(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '"' {
			return -1
		}
		return r
	}, s)
}

func parseDate(value string) (int64, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}
