package repoerrs

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrQueryFailed means a log query failed even after the pool was
	// recreated and the work retried once.
	ErrQueryFailed = errors.New("query failed")

	// ErrSourceUnavailable means the admin-permission backend stayed
	// unreachable after one pool recreation. Never to be read as "no
	// rank".
	ErrSourceUnavailable = errors.New("source unavailable")
)
