package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nutscript/helix-logs/internal/cache"
	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/metrics"
	"github.com/nutscript/helix-logs/internal/repo"
	"github.com/nutscript/helix-logs/internal/repo/repoerrs"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	log "github.com/sirupsen/logrus"
)

// contextWindow is how far around a target log GetContext looks, in
// seconds on the ix_logs datetime column.
const contextWindow = 300

type LogService struct {
	logRepo  repo.Log
	cache    cache.Store
	counters *metrics.Counters
	now      func() time.Time
}

func NewLogService(lr repo.Log, store cache.Store, cnt *metrics.Counters) *LogService {
	return &LogService{
		logRepo:  lr,
		cache:    store,
		counters: cnt,
		now:      time.Now,
	}
}

func (s *LogService) GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogEntry, error) {
	s.counters.LogsQueried.Inc("list")

	logs, err := s.logRepo.GetLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCannotGetLogs, err)
	}

	return logs, nil
}

// GetContext returns the logs within the context window around a target
// log. Bundles are cached for an hour keyed by log id: history never
// changes once written, so two calls yield identical bundles and the
// second one never reaches the log store.
func (s *LogService) GetContext(ctx context.Context, logID int64) (domain.ContextBundle, error) {
	key := cache.LogContextKey(logID)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "error": err}).Error("Failed to read context cache")
	}
	if ok {
		var bundle domain.ContextBundle
		if err := json.Unmarshal([]byte(cached), &bundle); err == nil {
			s.counters.CacheLookups.Inc("log:context", "hit")
			return bundle, nil
		}
		log.WithField("key", key).Warn("Discarding malformed context cache entry")
	}
	s.counters.CacheLookups.Inc("log:context", "miss")

	target, err := s.logRepo.GetLogByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.ContextBundle{}, ErrLogNotFound
		}
		return domain.ContextBundle{}, fmt.Errorf("%w: %w", ErrCannotGetLogs, err)
	}

	s.counters.LogsQueried.Inc("context")

	window, err := s.logRepo.GetLogsByTimeRange(ctx, target.Datetime-contextWindow, target.Datetime+contextWindow)
	if err != nil {
		return domain.ContextBundle{}, fmt.Errorf("%w: %w", ErrCannotGetLogs, err)
	}

	bundle := assembleContext(target, window)

	if data, err := json.Marshal(bundle); err == nil {
		if err := s.cache.Set(ctx, key, string(data), cache.TTLLogContext); err != nil {
			log.WithFields(log.Fields{"key": key, "error": err}).Error("Failed to write context cache")
		}
	}

	return bundle, nil
}

// assembleContext partitions the window rows strictly by datetime. The
// target is excluded by id, not by timestamp: other rows can share its
// second, and those belong to neither side.
func assembleContext(target domain.LogEntry, window []domain.LogEntry) domain.ContextBundle {
	bundle := domain.ContextBundle{
		Before: []domain.LogEntry{},
		Target: target,
		After:  []domain.LogEntry{},
	}

	for _, entry := range window {
		if entry.ID == target.ID {
			continue
		}
		switch {
		case entry.Datetime < target.Datetime:
			bundle.Before = append(bundle.Before, entry)
		case entry.Datetime > target.Datetime:
			bundle.After = append(bundle.After, entry)
		}
	}

	return bundle
}

func (s *LogService) GetTicketStats(ctx context.Context, month, year int) ([]domain.TicketStat, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	s.counters.LogsQueried.Inc("ticket_stats")

	from, to := MonthDateRange(month, year)

	stats, err := s.logRepo.GetTicketStats(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCannotGetLogs, err)
	}

	return stats, nil
}

// ExportLogs renders a filtered listing as the plain-text download the
// panel serves, named after the moment of export.
func (s *LogService) ExportLogs(ctx context.Context, filter repotypes.LogFilter) (ExportFile, error) {
	logs, err := s.GetLogs(ctx, filter)
	if err != nil {
		return ExportFile{}, err
	}

	return ExportFile{
		Name:    "logs-" + s.now().Format("2006-01-02_15-04-05") + ".txt",
		Content: FormatLogs(logs),
	}, nil
}
