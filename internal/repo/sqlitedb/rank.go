package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/nutscript/helix-logs/internal/repo/repoerrs"
	"github.com/nutscript/helix-logs/internal/steamid"
)

// Admin-mod schemas, same closed set as the postgres adapter. All three
// mods key their tables by the Steam2 rendered form.
var adminSchemas = map[string]struct {
	table    string
	rankCol  string
	identCol string
	form     steamid.Form
}{
	"serverguard": {"serverguard_users", "rank", "steam_id", steamid.FormSteam2},
	"ulx":         {"WUMALookup", "usergroup", "steamid", steamid.FormSteam2},
	"sam":         {"sam_players", "rank", "steamid", steamid.FormSteam2},
}

type RankRepo struct {
	*SQLite
	mod string
}

func NewRankRepo(db *SQLite, adminMod string) (*RankRepo, error) {
	if _, ok := adminSchemas[adminMod]; !ok {
		return nil, fmt.Errorf("unknown admin mod %q", adminMod)
	}

	return &RankRepo{SQLite: db, mod: adminMod}, nil
}

func (r *RankRepo) GetRank(ctx context.Context, rawSteamID string) (string, error) {
	id, err := steamid.Parse(rawSteamID)
	if err != nil {
		return "", err
	}

	schema := adminSchemas[r.mod]

	sqlText, args, _ := r.Builder.
		Select(schema.rankCol).
		From(schema.table).
		Where(sq.Eq{schema.identCol: id.Render(schema.form)}).
		ToSql()

	var rank string
	err = r.DB.QueryRowContext(ctx, sqlText, args...).Scan(&rank)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %w", repoerrs.ErrSourceUnavailable, err)
	}

	return rank, nil
}
