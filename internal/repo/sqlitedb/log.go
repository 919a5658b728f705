// Package sqlitedb is the embedded-file alternate backend. It serves
// small deployments that copy the game server's sqlite database next to
// the panel instead of pointing it at a live server.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/repo/repoerrs"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	_ "modernc.org/sqlite"
)

type SQLite struct {
	Builder sq.StatementBuilderType
	DB      *sql.DB
}

// New opens (or creates) the database file. A single handle is shared;
// database/sql serializes access and the file never "loses" its
// connection, so the pool-recreation policy does not apply here.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitedb - New - Open: %w", err)
	}

	return &SQLite{
		Builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		DB:      db,
	}, nil
}

func (s *SQLite) Close() error {
	return s.DB.Close()
}

type LogRepo struct {
	*SQLite
}

func NewLogRepo(db *SQLite) *LogRepo {
	return &LogRepo{db}
}

var logColumns = []string{
	"id", "steamid", "char_id", "log_type",
	"pos_x", "pos_y", "pos_z", "map",
	"datetime", "text", "lookup1", "lookup2", "lookup3",
}

func (r *LogRepo) GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogEntry, error) {
	conds, limit := buildFilters(filter)

	query := r.Builder.
		Select(logColumns...).
		From("ix_logs").
		OrderBy("id DESC").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sqlText, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return r.collectLogs(ctx, sqlText, args)
}

func (r *LogRepo) GetLogByID(ctx context.Context, id int64) (domain.LogEntry, error) {
	sqlText, args, _ := r.Builder.
		Select(logColumns...).
		From("ix_logs").
		Where(sq.Eq{"id": id}).
		ToSql()

	row := r.DB.QueryRowContext(ctx, sqlText, args...)

	entry, err := scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.LogEntry{}, repoerrs.ErrNotFound
		}
		return domain.LogEntry{}, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return entry, nil
}

func (r *LogRepo) GetLogsByTimeRange(ctx context.Context, start, end int64) ([]domain.LogEntry, error) {
	sqlText, args, _ := r.Builder.
		Select(logColumns...).
		From("ix_logs").
		Where(sq.And{
			sq.GtOrEq{"datetime": start},
			sq.LtOrEq{"datetime": end},
		}).
		OrderBy("datetime ASC").
		ToSql()

	return r.collectLogs(ctx, sqlText, args)
}

func (r *LogRepo) GetTicketStats(ctx context.Context, from, to time.Time) ([]domain.TicketStat, error) {
	sqlText, args, _ := r.Builder.
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

	rows, err := r.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}
	defer rows.Close()

	var stats []domain.TicketStat
	for rows.Next() {
		var st domain.TicketStat
		if err := rows.Scan(&st.SteamID, &st.DisplayName, &st.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return stats, nil
}

func (r *LogRepo) collectLogs(ctx context.Context, sqlText string, args []any) ([]domain.LogEntry, error) {
	rows, err := r.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}
	defer rows.Close()

	var logs []domain.LogEntry
	for rows.Next() {
		entry, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", repoerrs.ErrQueryFailed, err)
	}

	return logs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (domain.LogEntry, error) {
	var e domain.LogEntry
	err := row.Scan(
		&e.ID, &e.SteamID, &e.CharID, &e.LogType,
		&e.PosX, &e.PosY, &e.PosZ, &e.Map,
		&e.Datetime, &e.Text, &e.Lookup1, &e.Lookup2, &e.Lookup3,
	)
	return e, err
}

// buildFilters mirrors the postgres mapping except that sqlite has no
// ILIKE; its LIKE is already case-insensitive for ASCII.
func buildFilters(filter repotypes.LogFilter) ([]sq.Sqlizer, uint64) {
	conds := make([]sq.Sqlizer, 0, len(filter.Predicates))

	for _, p := range filter.Predicates {
		switch p.Op {
		case repotypes.OpContains:
			conds = append(conds, sq.Like{p.Field: "%" + p.Value.(string) + "%"})
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
