package pgdb

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/nutscript/helix-logs/internal/repo/repoerrs"
	"github.com/nutscript/helix-logs/internal/steamid"
	"github.com/nutscript/helix-logs/pkg/postgres"
)

// adminSchema is the table/column triple one admin mod stores ranks in,
// plus the identity form that mod keys its rows by. The set is closed
// and selected once at startup.
type adminSchema struct {
	table    string
	rankCol  string
	identCol string
	form     steamid.Form
}

var adminSchemas = map[string]adminSchema{
	"serverguard": {
		table:    "serverguard_users",
		rankCol:  "rank",
		identCol: "steam_id",
		form:     steamid.FormSteam2,
	},
	"ulx": {
		table:    "WUMALookup",
		rankCol:  "usergroup",
		identCol: "steamid",
		form:     steamid.FormSteam2,
	},
	"sam": {
		table:    "sam_players",
		rankCol:  "rank",
		identCol: "steamid",
		form:     steamid.FormSteam2,
	},
}

type RankRepo struct {
	*postgres.Postgres
	schema adminSchema
}

func NewRankRepo(pg *postgres.Postgres, adminMod string) (*RankRepo, error) {
	schema, ok := adminSchemas[adminMod]
	if !ok {
		return nil, fmt.Errorf("unknown admin mod %q", adminMod)
	}

	return &RankRepo{Postgres: pg, schema: schema}, nil
}

// GetRank looks the player up in the admin-mod table. Table and column
// names are fixed at startup; the identity is the only runtime-bound
// value. "" means the player has no row.
func (r *RankRepo) GetRank(ctx context.Context, rawSteamID string) (string, error) {
	id, err := steamid.Parse(rawSteamID)
	if err != nil {
		return "", err
	}

	sql, args, _ := r.Builder.
		Select(r.schema.rankCol).
		From(r.schema.table).
		Where(sq.Eq{r.schema.identCol: id.Render(r.schema.form)}).
		ToSql()

	rank, err := withReconnect(ctx, r.Postgres, func(ctx context.Context) (string, error) {
		var rank string
		err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool()).QueryRow(ctx, sql, args...).Scan(&rank)
		return rank, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %w", repoerrs.ErrSourceUnavailable, err)
	}

	return rank, nil
}
