package repo

import (
	"context"
	"time"

	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/repo/pgdb"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	"github.com/nutscript/helix-logs/pkg/postgres"
)

type Log interface {
	GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogEntry, error)
	GetLogByID(ctx context.Context, id int64) (domain.LogEntry, error)
	GetLogsByTimeRange(ctx context.Context, start, end int64) ([]domain.LogEntry, error)
	GetTicketStats(ctx context.Context, from, to time.Time) ([]domain.TicketStat, error)
}

type Rank interface {
	// GetRank returns the player's rank in the configured admin mod, or
	// "" when the player has never joined the server.
	GetRank(ctx context.Context, rawSteamID string) (string, error)
}

type Repositories struct {
	Log
	Rank
}

// NewRepositories wires the postgres adapters. The log table and the
// admin-mod table may live in different databases, so each repo owns
// its own pool.
func NewRepositories(logPG, adminPG *postgres.Postgres, adminMod string) (*Repositories, error) {
	rankRepo, err := pgdb.NewRankRepo(adminPG, adminMod)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Log:  pgdb.NewLogRepo(logPG),
		Rank: rankRepo,
	}, nil
}
