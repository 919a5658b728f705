package pgdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/repo/repoerrs"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	"github.com/nutscript/helix-logs/pkg/postgres"
)

var logColumns = []string{
	"id", "steamid", "char_id", "log_type",
	"pos_x", "pos_y", "pos_z", "map",
	"datetime", "text", "lookup1", "lookup2", "lookup3",
}

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogEntry, error) {
	conds, limit := BuildLogQueryFilters(filter)

	query := r.Builder.
		Select(logColumns...).
		From("ix_logs").
		OrderBy("id DESC").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	logs, err := withReconnect(ctx, r.Postgres, func(ctx context.Context) ([]domain.LogEntry, error) {
		return r.collectLogs(ctx, sql, args)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return logs, nil
}

func (r *LogRepo) GetLogByID(ctx context.Context, id int64) (domain.LogEntry, error) {
	sql, args, _ := r.Builder.
		Select(logColumns...).
		From("ix_logs").
		Where(sq.Eq{"id": id}).
		ToSql()

	entry, err := withReconnect(ctx, r.Postgres, func(ctx context.Context) (domain.LogEntry, error) {
		rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool()).Query(ctx, sql, args...)
		if err != nil {
			return domain.LogEntry{}, err
		}
		defer rows.Close()

		return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.LogEntry])
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LogEntry{}, repoerrs.ErrNotFound
		}
		return domain.LogEntry{}, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return entry, nil
}

func (r *LogRepo) GetLogsByTimeRange(ctx context.Context, start, end int64) ([]domain.LogEntry, error) {
	sql, args, _ := r.Builder.
		Select(logColumns...).
		From("ix_logs").
		Where(sq.And{
			sq.GtOrEq{"datetime": start},
			sq.LtOrEq{"datetime": end},
		}).
		OrderBy("datetime ASC").
		ToSql()

	logs, err := withReconnect(ctx, r.Postgres, func(ctx context.Context) ([]domain.LogEntry, error) {
		return r.collectLogs(ctx, sql, args)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return logs, nil
}

func (r *LogRepo) GetTicketStats(ctx context.Context, from, to time.Time) ([]domain.TicketStat, error) {
	sql, args, _ := r.Builder.
		Select("l.steamid", "p.name AS display_name", "COUNT(*) AS count").
		From("ix_logs l").
		LeftJoin("ix_players p ON p.steamid = l.steamid").
		Where(sq.And{
			sq.Eq{"l.log_type": domain.LogTypeTicketClaimed},
			sq.GtOrEq{"l.datetime": from.Unix()},
			sq.Lt{"l.datetime": to.Unix()},
		}).
		GroupBy("l.steamid", "p.name").
		OrderBy("count DESC").
		ToSql()

	stats, err := withReconnect(ctx, r.Postgres, func(ctx context.Context) ([]domain.TicketStat, error) {
		rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool()).Query(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		return pgx.CollectRows(rows, pgx.RowToStructByName[domain.TicketStat])
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return stats, nil
}

func (r *LogRepo) collectLogs(ctx context.Context, sql string, args []any) ([]domain.LogEntry, error) {
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool()).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogEntry])
}
