package steamid_test

import (
	"testing"

	"github.com/nutscript/helix-logs/internal/steamid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want64  string
		want2   string
		wantErr bool
	}{
		{
			name:   "steam64",
			input:  "76561198236432500",
			want64: "76561198236432500",
			want2:  "STEAM_0:0:138083386",
		},
		{
			name:   "steam2",
			input:  "STEAM_0:0:138083386",
			want64: "76561198236432500",
			want2:  "STEAM_0:0:138083386",
		},
		{
			name:   "steam2 odd account",
			input:  "STEAM_0:1:51674249",
			want64: "76561198063614227",
			want2:  "STEAM_0:1:51674249",
		},
		{
			name:   "steam3",
			input:  "[U:1:276166772]",
			want64: "76561198236432500",
			want2:  "STEAM_0:0:138083386",
		},
		{
			name:   "whitespace trimmed",
			input:  "  76561198236432500\n",
			want64: "76561198236432500",
			want2:  "STEAM_0:0:138083386",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-steamid",
			wantErr: true,
		},
		{
			name:    "too short numeric",
			input:   "12345",
			wantErr: true,
		},
		{
			name:    "17 digits below individual range",
			input:   "10000000000000000",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := steamid.Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, steamid.ErrInvalidSteamID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want64, id.Steam64())
			assert.Equal(t, tc.want2, id.Steam2())
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := steamid.Parse("76561198236432500")
	require.NoError(t, err)

	// Re-parsing any rendered form lands on the same account.
	fromSteam2, err := steamid.Parse(first.Steam2())
	require.NoError(t, err)
	fromSteam64, err := steamid.Parse(first.Steam64())
	require.NoError(t, err)

	assert.Equal(t, first, fromSteam2)
	assert.Equal(t, first, fromSteam64)
}

func TestRender(t *testing.T) {
	id, err := steamid.Parse("76561198236432500")
	require.NoError(t, err)

	assert.Equal(t, "STEAM_0:0:138083386", id.Render(steamid.FormSteam2))
	assert.Equal(t, "76561198236432500", id.Render(steamid.FormSteam64))
}
