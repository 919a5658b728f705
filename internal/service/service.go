package service

import (
	"context"

	"github.com/nutscript/helix-logs/internal/cache"
	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/metrics"
	"github.com/nutscript/helix-logs/internal/repo"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
)

type Rank interface {
	// GetRank resolves a player's admin-mod rank, cache first. ""
	// means the player has no rank.
	GetRank(ctx context.Context, steamID string) (string, error)
	// CheckRank decides whether the player may use the panel.
	CheckRank(ctx context.Context, steamID string) (domain.RankCheck, error)
}

// ExportFile is a rendered plain-text log download.
type ExportFile struct {
	Name    string
	Content string
}

type Log interface {
	GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogEntry, error)
	GetContext(ctx context.Context, logID int64) (domain.ContextBundle, error)
	GetTicketStats(ctx context.Context, month, year int) ([]domain.TicketStat, error)
	ExportLogs(ctx context.Context, filter repotypes.LogFilter) (ExportFile, error)
}

type Services struct {
	Rank Rank
	Log  Log
}

type ServicesDependencies struct {
	Repos        *repo.Repositories
	Cache        cache.Store
	Counters     *metrics.Counters
	AllowedRanks []string
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Rank: NewRankService(deps.Repos.Rank, deps.Cache, deps.Counters, deps.AllowedRanks),
		Log:  NewLogService(deps.Repos.Log, deps.Cache, deps.Counters),
	}
}
