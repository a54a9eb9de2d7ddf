package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groceryroom/internal/models"
)

func setupCache(t *testing.T) (*DebtCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb, time.Minute), mr
}

func TestDebtCache_RoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, ok)

	edges := []*models.DebtEdge{
		{ID: "e1", GroupID: "g1", DebtorID: "a", CreditorID: "b", Amount: decimal.RequireFromString("12.34")},
	}
	stored, err := c.SetIfGeneration(ctx, "g1", 0, edges)
	require.NoError(t, err)
	require.True(t, stored)

	got, ok, err := c.Get(ctx, "g1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].DebtorID)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("12.34")))

	require.NoError(t, c.Invalidate(ctx, "g1"))
	_, ok, err = c.Get(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDebtCache_Expires(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	_, err := c.SetIfGeneration(ctx, "g1", 0, nil)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDebtCache_InvalidateBumpsGeneration(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	gen, err := c.Generation(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, c.Invalidate(ctx, "g1"))
	require.NoError(t, c.Invalidate(ctx, "g1"))

	gen, err = c.Generation(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)

	other, err := c.Generation(ctx, "g2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), other)
}

func TestDebtCache_FillAfterInvalidateIsDropped(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	// A reader takes the generation, then a writer commits and invalidates
	// before the reader's fill arrives.
	gen, err := c.Generation(ctx, "g1")
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, "g1"))

	stale := []*models.DebtEdge{{ID: "old", GroupID: "g1", DebtorID: "a", CreditorID: "b", Amount: decimal.RequireFromString("1.00")}}
	stored, err := c.SetIfGeneration(ctx, "g1", gen, stale)
	require.NoError(t, err)
	assert.False(t, stored)

	_, ok, err := c.Get(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, ok, "stale fill must not be cached")

	gen, err = c.Generation(ctx, "g1")
	require.NoError(t, err)
	stored, err = c.SetIfGeneration(ctx, "g1", gen, nil)
	require.NoError(t, err)
	assert.True(t, stored)

	got, ok, err := c.Get(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestDebtCache_RedisDown(t *testing.T) {
	c, mr := setupCache(t)
	mr.Close()

	_, ok, err := c.Get(context.Background(), "g1")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDebtCache_SetRedisDown(t *testing.T) {
	c, mr := setupCache(t)
	mr.Close()

	stored, err := c.SetIfGeneration(context.Background(), "g1", 0, nil)
	assert.Error(t, err)
	assert.False(t, stored)
}
