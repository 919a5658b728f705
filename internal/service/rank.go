package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nutscript/helix-logs/internal/cache"
	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/metrics"
	"github.com/nutscript/helix-logs/internal/repo"
	"github.com/nutscript/helix-logs/internal/repo/repoerrs"
	"github.com/nutscript/helix-logs/internal/steamid"
	log "github.com/sirupsen/logrus"
)

type RankService struct {
	rankRepo     repo.Rank
	cache        cache.Store
	counters     *metrics.Counters
	allowedRanks []string
}

func NewRankService(rr repo.Rank, store cache.Store, cnt *metrics.Counters, allowedRanks []string) *RankService {
	return &RankService{
		rankRepo:     rr,
		cache:        store,
		counters:     cnt,
		allowedRanks: allowedRanks,
	}
}

// GetRank checks the cache first and only reaches the admin backend on
// a miss. A fresh rank is cached for a short TTL since promotions and
// demotions can happen at any time. Cache failures degrade to a source
// read, never to a request failure.
func (s *RankService) GetRank(ctx context.Context, steamID string) (string, error) {
	key := cache.UserRankKey(steamID)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "error": err}).Error("Failed to read rank cache")
	}
	if ok {
		s.counters.CacheLookups.Inc("user:rank", "hit")
		return cached, nil
	}
	s.counters.CacheLookups.Inc("user:rank", "miss")

	rank, err := s.rankRepo.GetRank(ctx, steamID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrSourceUnavailable) {
			return "", fmt.Errorf("%w: %w", ErrRankUnavailable, err)
		}
		return "", err
	}

	if rank != "" {
		if err := s.cache.Set(ctx, key, rank, cache.TTLUserRank); err != nil {
			log.WithFields(log.Fields{"key": key, "error": err}).Error("Failed to write rank cache")
		}
	}

	return rank, nil
}

// CheckRank resolves the player's rank and matches it against the
// allowed list. An unparseable identity counts as "never joined", a
// dead admin backend does not.
func (s *RankService) CheckRank(ctx context.Context, steamID string) (domain.RankCheck, error) {
	rank, err := s.GetRank(ctx, steamID)
	if err != nil {
		if errors.Is(err, steamid.ErrInvalidSteamID) {
			rank = ""
		} else {
			return domain.RankCheck{}, err
		}
	}

	if rank == "" {
		return domain.RankCheck{
			Authorized: false,
			Message:    "You need to join the server first!",
		}, nil
	}

	if !slices.Contains(s.allowedRanks, rank) {
		return domain.RankCheck{
			Authorized: false,
			Rank:       rank,
			Message: fmt.Sprintf(
				"Your rank (%s) is not allowed to see this page. The allowed ranks are: %s.",
				rank, strings.Join(s.allowedRanks, ", "),
			),
		}, nil
	}

	return domain.RankCheck{Authorized: true, Rank: rank}, nil
}
