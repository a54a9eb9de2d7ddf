// Package cache keeps a short-lived copy of each group's debt list in Redis.
//
// The ledger remains the source of truth: every write path invalidates the
// group's entry, and a miss or a Redis failure falls back to the store.
//
// Each group also has a generation counter that Invalidate increments. A
// fill only lands if the counter still holds the value read before the
// store was queried, so an invalidation racing a fill always wins.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/groceryroom/internal/models"
)

var errStale = errors.New("debts generation changed")

// DebtCache caches debt edges per group.
type DebtCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// New creates a DebtCache storing entries for ttl.
func New(rdb redis.UniversalClient, ttl time.Duration) *DebtCache {
	return &DebtCache{rdb: rdb, ttl: ttl}
}

// Both keys of a group share a hash tag so WATCH works on Redis Cluster.
func debtsKey(groupID string) string {
	return "groceryroom:debts:{" + groupID + "}"
}

func generationKey(groupID string) string {
	return "groceryroom:debts:{" + groupID + "}:gen"
}

// Get returns the cached edges of a group. ok is false on a miss.
func (c *DebtCache) Get(ctx context.Context, groupID string) (edges []*models.DebtEdge, ok bool, err error) {
	val, err := c.rdb.Get(ctx, debtsKey(groupID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read debts cache: %w", err)
	}
	if err := json.Unmarshal(val, &edges); err != nil {
		return nil, false, fmt.Errorf("failed to decode debts cache: %w", err)
	}
	return edges, true, nil
}

// Generation returns the current generation of a group, zero if it was
// never invalidated.
func (c *DebtCache) Generation(ctx context.Context, groupID string) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(groupID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read debts generation: %w", err)
	}
	return gen, nil
}

// SetIfGeneration stores the edges of a group unless the group was
// invalidated since gen was read. stored reports whether the write landed.
func (c *DebtCache) SetIfGeneration(ctx context.Context, groupID string, gen int64, edges []*models.DebtEdge) (stored bool, err error) {
	b, err := json.Marshal(edges)
	if err != nil {
		return false, fmt.Errorf("failed to encode debts cache: %w", err)
	}

	genKey := generationKey(groupID)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, debtsKey(groupID), b, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, fmt.Errorf("failed to write debts cache: %w", err)
	}
}

// Invalidate drops the entry of a group and bumps its generation.
func (c *DebtCache) Invalidate(ctx context.Context, groupID string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(groupID))
		pipe.Del(ctx, debtsKey(groupID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate debts cache: %w", err)
	}
	return nil
}
