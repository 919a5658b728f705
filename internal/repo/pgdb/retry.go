package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorsUtils "github.com/nutscript/helix-logs/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type reconnector interface {
	Reconnect(ctx context.Context) error
}

// withReconnect runs one unit of work against a pooled resource. On the
// first failure it discards the pool, dials a fresh one and retries the
// same work exactly once; the second failure propagates. No loop, no
// silent degradation - each request after an outage pays one
// reconnection, which keeps the policy synchronous and simple.
func withReconnect[T any](ctx context.Context, r reconnector, op func(context.Context) (T, error)) (T, error) {
	result, err := op(ctx)
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		// A no-rows result is an answer, not a pool failure.
		return result, err
	}

	log.WithField("error", err).Warn("Query failed, recreating pool and retrying once")

	if rerr := r.Reconnect(ctx); rerr != nil {
		var zero T
		return zero, errorsUtils.WrapPathErr(rerr)
	}

	return op(ctx)
}
