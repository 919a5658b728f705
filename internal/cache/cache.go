// Package cache is the shared TTL cache in front of the databases.
// It is strictly an optimization: callers swallow and log its errors
// and fall back to the source of truth.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache TTLs. Historical log context never changes once written, so it
// keeps for an hour; ranks change under promotions and demotions, so
// they keep for minutes.
const (
	TTLLogContext = time.Hour
	TTLUserRank   = 5 * time.Minute
)

// Store is a process-wide get/set-with-TTL cache keyed by namespaced
// strings. Entries are independent; there are no compound operations.
type Store interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

func LogContextKey(logID int64) string {
	return fmt.Sprintf("log:context:%d", logID)
}

func UserRankKey(steamID string) string {
	return fmt.Sprintf("user:rank:%s", steamID)
}
