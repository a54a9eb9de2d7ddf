// Package redislock implements ledger.Locker on Redis with redsync, so
// several server instances sharing one database serialize writes to the
// same member pairs.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/mmynk/groceryroom/internal/ledger"
)

// Options tunes lock acquisition.
type Options struct {
	// Expiry is how long a key is held before Redis drops it.
	Expiry time.Duration
	// Tries is the number of acquisition attempts per key.
	Tries int
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
}

// DefaultOptions gives up after roughly five seconds per key.
func DefaultOptions() Options {
	return Options{
		Expiry:     10 * time.Second,
		Tries:      50,
		RetryDelay: 100 * time.Millisecond,
	}
}

// Locker is a ledger.Locker backed by redsync mutexes.
type Locker struct {
	rs     *redsync.Redsync
	opts   Options
	logger *slog.Logger
}

var _ ledger.Locker = (*Locker)(nil)

// New creates a Locker on client.
func New(client redis.UniversalClient, opts Options) (*Locker, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if opts.Expiry <= 0 {
		return nil, errors.New("lock expiry must be greater than 0")
	}
	if opts.Tries < 1 {
		return nil, errors.New("lock tries must be at least 1")
	}
	if opts.RetryDelay < 0 {
		return nil, errors.New("lock retry delay cannot be negative")
	}
	return &Locker{
		rs:     redsync.New(goredis.NewPool(client)),
		opts:   opts,
		logger: slog.Default(),
	}, nil
}

// Lock implements ledger.Locker. Keys are taken in sorted order and
// released in reverse.
func (l *Locker) Lock(ctx context.Context, keys []string) (func(), error) {
	keys = ledger.SortedKeys(keys)
	held := make([]*redsync.Mutex, 0, len(keys))

	for _, k := range keys {
		m := l.rs.NewMutex(k,
			redsync.WithExpiry(l.opts.Expiry),
			redsync.WithTries(l.opts.Tries),
			redsync.WithRetryDelay(l.opts.RetryDelay),
		)
		if err := m.LockContext(ctx); err != nil {
			l.release(held)
			return nil, fmt.Errorf("%w: lock %s: %v", ledger.ErrConcurrentModification, k, err)
		}
		held = append(held, m)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(held) })
	}, nil
}

func (l *Locker) release(held []*redsync.Mutex) {
	// Unlock runs after the caller's context may be done.
	ctx, cancel := context.WithTimeout(context.Background(), l.opts.Expiry)
	defer cancel()
	for i := len(held) - 1; i >= 0; i-- {
		if ok, err := held[i].UnlockContext(ctx); err != nil || !ok {
			l.logger.Warn("Failed to release ledger lock",
				"key", held[i].Name(),
				"error", err,
			)
		}
	}
}
