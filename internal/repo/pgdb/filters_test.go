package pgdb

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLogsSQL(t *testing.T, filter repotypes.LogFilter) (string, []any) {
	t.Helper()

	conds, limit := BuildLogQueryFilters(filter)

	query := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(logColumns...).
		From("ix_logs").
		OrderBy("id DESC").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	require.NoError(t, err)

	return sql, args
}

func TestBuildLogQueryFiltersEmpty(t *testing.T) {
	sql, args := buildLogsSQL(t, repotypes.ParseLogFilter(nil))

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY id DESC")
	assert.Contains(t, sql, "LIMIT 5000")
	assert.Empty(t, args)
}

func TestBuildLogQueryFiltersLimit(t *testing.T) {
	sql, _ := buildLogsSQL(t, repotypes.ParseLogFilter(map[string]string{"limit": "10"}))

	assert.Contains(t, sql, "LIMIT 10")
	assert.NotContains(t, sql, "LIMIT 5000")
}

func TestBuildLogQueryFiltersOperators(t *testing.T) {
	filter := repotypes.ParseLogFilter(map[string]string{
		"after":    "2024-11-24",
		"before":   "2024-11-25",
		"log_type": "chat",
		"steamid":  "76561198236432500",
		"text":     "coral",
	})

	sql, args := buildLogsSQL(t, filter)

	assert.Contains(t, sql, "datetime > $")
	assert.Contains(t, sql, "datetime < $")
	assert.Contains(t, sql, "log_type = $")
	assert.Contains(t, sql, "steamid LIKE $")
	assert.Contains(t, sql, "text ILIKE $")
	assert.Len(t, args, 5)
	assert.Contains(t, args, "%coral%")
	assert.Contains(t, args, "76561198236432500")
}

func TestBuildLogQueryFiltersDroppedDate(t *testing.T) {
	filter := repotypes.ParseLogFilter(map[string]string{"before": "not-a-date"})
	sql, args := buildLogsSQL(t, filter)

	assert.NotContains(t, sql, "datetime")
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestBuildLogQueryFiltersValuesNeverInterpolated(t *testing.T) {
	hostile := map[string]string{
		"text":     `'; DROP TABLE ix_logs; --`,
		"steamid":  `" OR 1=1 --`,
		"map":      `rp' OR 'a'='a`,
		"log_type": `chat"; DELETE FROM ix_logs; --`,
	}

	sql, args := buildLogsSQL(t, repotypes.ParseLogFilter(hostile))

	// Every user value travels as a bound parameter, so the query text
	// holds placeholders only and one parameter per placeholder.
	assert.NotContains(t, sql, "DROP")
	assert.NotContains(t, sql, "DELETE")
	assert.NotContains(t, sql, "OR 1=1")
	assert.Equal(t, len(args), strings.Count(sql, "$"))
	assert.Len(t, args, 4)
}
