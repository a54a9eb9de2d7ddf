package redislock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groceryroom/internal/calculator"
	"github.com/mmynk/groceryroom/internal/ledger"
)

func setupLocker(t *testing.T, opts Options) (*Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	l, err := New(client, opts)
	require.NoError(t, err)
	return l, mr
}

func TestNew_ValidatesOptions(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	tests := []struct {
		name string
		opts Options
	}{
		{name: "zero expiry", opts: Options{Tries: 1}},
		{name: "zero tries", opts: Options{Expiry: time.Second}},
		{name: "negative delay", opts: Options{Expiry: time.Second, Tries: 1, RetryDelay: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(client, tt.opts)
			assert.Error(t, err)
		})
	}

	_, err := New(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestLock_AcquireAndRelease(t *testing.T) {
	l, mr := setupLocker(t, DefaultOptions())
	keys := []string{ledger.PairKey("g", "b", "a"), ledger.PairKey("g", "a", "c")}

	unlock, err := l.Lock(context.Background(), keys)
	require.NoError(t, err)
	for _, k := range keys {
		assert.True(t, mr.Exists(k), "key %s should be held", k)
	}

	unlock()
	unlock()
	for _, k := range keys {
		assert.False(t, mr.Exists(k), "key %s should be released", k)
	}
}

func TestLock_ConcurrentUnlock(t *testing.T) {
	l, mr := setupLocker(t, DefaultOptions())
	key := ledger.PairKey("g", "a", "b")

	unlock, err := l.Lock(context.Background(), []string{key})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock()
		}()
	}
	wg.Wait()
	assert.False(t, mr.Exists(key))

	// A late call from the first holder must not touch the next holder's lock.
	next, err := l.Lock(context.Background(), []string{key})
	require.NoError(t, err)
	defer next()
	unlock()
	assert.True(t, mr.Exists(key))
}

func TestLock_ContentionIsConcurrentModification(t *testing.T) {
	l, _ := setupLocker(t, Options{Expiry: 5 * time.Second, Tries: 2, RetryDelay: 10 * time.Millisecond})
	key := ledger.PairKey("g", "a", "b")

	unlock, err := l.Lock(context.Background(), []string{key})
	require.NoError(t, err)
	defer unlock()

	_, err = l.Lock(context.Background(), []string{"ledger:g:x:y", key})
	require.ErrorIs(t, err, ledger.ErrConcurrentModification)
}

func TestLock_PartialAcquireIsRolledBack(t *testing.T) {
	l, mr := setupLocker(t, Options{Expiry: 5 * time.Second, Tries: 1, RetryDelay: 0})
	held := "ledger:g:b:c"

	unlock, err := l.Lock(context.Background(), []string{held})
	require.NoError(t, err)
	defer unlock()

	_, err = l.Lock(context.Background(), []string{"ledger:g:a:b", held})
	require.Error(t, err)
	assert.False(t, mr.Exists("ledger:g:a:b"))
}

func TestLock_WithLedger(t *testing.T) {
	l, mr := setupLocker(t, DefaultOptions())
	repo := ledger.NewMemoryRepository()
	led := ledger.New(repo, ledger.WithLocker(l))

	_, err := led.FoldBatch(context.Background(), "g", []calculator.Obligation{
		{Debtor: "a", Creditor: "b", Amount: decimal.RequireFromString("20.00")},
		{Debtor: "b", Creditor: "a", Amount: decimal.RequireFromString("35.00")},
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists(ledger.PairKey("g", "a", "b")))

	edges, err := led.Debts(context.Background(), "g")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "b", edges[0].DebtorID)
	assert.Equal(t, "15.00", edges[0].Amount.StringFixed(2))
}
