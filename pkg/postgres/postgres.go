// Package postgres implements a pgx connection pool wrapper with a
// squirrel statement builder attached.
package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	defaultMaxPoolSize  = 4
	defaultConnAttempts = 10
	defaultConnTimeout  = time.Second
)

type Postgres struct {
	url          string
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration

	Builder   sq.StatementBuilderType
	CtxGetter *trmpgx.CtxGetter

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

func New(url string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		url:          url,
		maxPoolSize:  defaultMaxPoolSize,
		connAttempts: defaultConnAttempts,
		connTimeout:  defaultConnTimeout,
		Builder:      sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		CtxGetter:    trmpgx.DefaultCtxGetter,
	}

	for _, opt := range opts {
		opt(pg)
	}

	pool, err := pg.dial()
	if err != nil {
		return nil, err
	}
	pg.pool = pool

	return pg, nil
}

func (p *Postgres) dial() (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(p.url)
	if err != nil {
		return nil, fmt.Errorf("postgres - dial - ParseConfig: %w", err)
	}
	poolConfig.MaxConns = int32(p.maxPoolSize)

	var pool *pgxpool.Pool
	for attempts := p.connAttempts; attempts > 0; attempts-- {
		pool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err == nil {
			break
		}

		log.Infof("Postgres trying to connect, attempts left: %d", attempts-1)
		time.Sleep(p.connTimeout)
	}

	if err != nil {
		return nil, fmt.Errorf("postgres - dial - NewWithConfig: %w", err)
	}

	return pool, nil
}

// Pool returns the current pool handle. Callers capture the handle once
// per unit of work; a concurrent Reconnect does not invalidate the value
// they already hold, only subsequent calls see the fresh pool.
func (p *Postgres) Pool() *pgxpool.Pool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pool
}

// Reconnect discards the current pool and dials a fresh one from the
// same configuration. In-flight queries on the old handle fail once it
// closes; that is accepted, reconnection only runs on the failure path.
func (p *Postgres) Reconnect(ctx context.Context) error {
	pool, err := p.dial()
	if err != nil {
		return err
	}

	p.mu.Lock()
	old := p.pool
	p.pool = pool
	p.mu.Unlock()

	if old != nil {
		old.Close()
	}

	log.Warn("Postgres pool recreated")

	return nil
}

func (p *Postgres) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Close()
	}
}
