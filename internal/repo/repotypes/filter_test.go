package repotypes_test

import (
	"testing"

	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogFilter(t *testing.T) {
	testCases := []struct {
		name      string
		params    map[string]string
		wantPreds []repotypes.Predicate
		wantLimit uint64
	}{
		{
			name:      "no filters",
			params:    map[string]string{},
			wantPreds: nil,
			wantLimit: 5000,
		},
		{
			name:      "limit only",
			params:    map[string]string{"limit": "10"},
			wantPreds: nil,
			wantLimit: 10,
		},
		{
			name:      "invalid limit falls back to default",
			params:    map[string]string{"limit": "lots"},
			wantPreds: nil,
			wantLimit: 5000,
		},
		{
			name:      "empty values are skipped",
			params:    map[string]string{"text": "", "steamid": "", "map": ""},
			wantPreds: nil,
			wantLimit: 5000,
		},
		{
			name:   "text is a substring match",
			params: map[string]string{"text": "coral"},
			wantPreds: []repotypes.Predicate{
				{Field: "text", Op: repotypes.OpContains, Value: "coral"},
			},
			wantLimit: 5000,
		},
		{
			name:   "steamid normalizes to steam64",
			params: map[string]string{"steamid": "STEAM_0:0:138083386"},
			wantPreds: []repotypes.Predicate{
				{Field: "steamid", Op: repotypes.OpLike, Value: "76561198236432500"},
			},
			wantLimit: 5000,
		},
		{
			name:   "steamid quotes stripped before parse",
			params: map[string]string{"steamid": `"76561198236432500"`},
			wantPreds: []repotypes.Predicate{
				{Field: "steamid", Op: repotypes.OpLike, Value: "76561198236432500"},
			},
			wantLimit: 5000,
		},
		{
			name:   "unparseable steamid kept as literal match",
			params: map[string]string{"steamid": "7656119823"},
			wantPreds: []repotypes.Predicate{
				{Field: "steamid", Op: repotypes.OpLike, Value: "7656119823"},
			},
			wantLimit: 5000,
		},
		{
			name:   "before parses to epoch comparison",
			params: map[string]string{"before": "2024-11-24"},
			wantPreds: []repotypes.Predicate{
				{Field: "datetime", Op: repotypes.OpBefore, Value: int64(1732406400)},
			},
			wantLimit: 5000,
		},
		{
			name:      "unparseable before is dropped",
			params:    map[string]string{"before": "not-a-date"},
			wantPreds: nil,
			wantLimit: 5000,
		},
		{
			name:   "after parses to epoch comparison",
			params: map[string]string{"after": "2024-11-24 18:28:47"},
			wantPreds: []repotypes.Predicate{
				{Field: "datetime", Op: repotypes.OpAfter, Value: int64(1732472927)},
			},
			wantLimit: 5000,
		},
		{
			name:   "known column becomes equality",
			params: map[string]string{"log_type": "chat"},
			wantPreds: []repotypes.Predicate{
				{Field: "log_type", Op: repotypes.OpEq, Value: "chat"},
			},
			wantLimit: 5000,
		},
		{
			name:      "unknown column is dropped",
			params:    map[string]string{"steamid; DROP TABLE ix_logs--": "x"},
			wantPreds: nil,
			wantLimit: 5000,
		},
		{
			name: "keys combine in sorted order",
			params: map[string]string{
				"text":     "radio",
				"log_type": "command",
				"limit":    "25",
			},
			wantPreds: []repotypes.Predicate{
				{Field: "log_type", Op: repotypes.OpEq, Value: "command"},
				{Field: "text", Op: repotypes.OpContains, Value: "radio"},
			},
			wantLimit: 25,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := repotypes.ParseLogFilter(tc.params)

			assert.Equal(t, tc.wantLimit, got.Limit)
			require.Len(t, got.Predicates, len(tc.wantPreds))
			assert.Equal(t, tc.wantPreds, got.Predicates)
		})
	}
}

func TestParseLogFilterMaliciousValuesStayValues(t *testing.T) {
	// Hostile values survive as plain predicate values. They only ever
	// reach the database as bound parameters.
	params := map[string]string{
		"text":    `%'; DROP TABLE ix_logs; --`,
		"steamid": `' OR '1'='1`,
		"map":     `rp_wn_city27_v1b" OR "1"="1`,
	}

	got := repotypes.ParseLogFilter(params)

	require.Len(t, got.Predicates, 3)
	for _, p := range got.Predicates {
		assert.Contains(t, []string{"map", "steamid", "text"}, p.Field)
	}
}
