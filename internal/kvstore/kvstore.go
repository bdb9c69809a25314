// Package kvstore is the key/value storage port used for per-client state.
// Callers depend on KeyValueStore; the backend is chosen at startup.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"unit-converter/internal/config"
)

// ErrNotFound is returned by Get when the key does not exist or has expired.
var ErrNotFound = errors.New("kvstore: key not found")

// KeyValueStore stores opaque byte values under string keys.
// A zero ttl means the value does not expire.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the backend named in cfg and waits until it answers a ping.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (KeyValueStore, error) {
	var (
		store KeyValueStore
		err   error
	)

	switch cfg.Backend {
	case "memory", "":
		store = NewMemory()
	case "redis":
		store = NewRedis(cfg.Redis)
	case "sqlite":
		store, err = OpenSQLite(cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	tries := cfg.ConnectTries
	if tries == 0 {
		tries = 1
	}

	err = retry.Do(
		func() error { return store.Ping(ctx) },
		retry.Context(ctx),
		retry.Attempts(tries),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("store not ready, retrying",
				zap.String("backend", cfg.Backend),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("connect %s store: %w", cfg.Backend, err)
	}

	logger.Info("store connected", zap.String("backend", cfg.Backend))
	return store, nil
}
