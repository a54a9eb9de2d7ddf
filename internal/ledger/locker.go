package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Locker serializes ledger writes on member pairs.
type Locker interface {
	// Lock acquires every key exclusively and returns a function releasing
	// them. Failure to acquire wraps ErrConcurrentModification.
	Lock(ctx context.Context, keys []string) (unlock func(), err error)
}

// PairKey is the lock key for the unordered pair {a, b} in a group.
func PairKey(groupID, a, b string) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("ledger:%s:%s:%s", groupID, a, b)
}

// SortedKeys dedups keys and sorts them, so every locker acquires in the
// same global order.
func SortedKeys(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// LocalLocker is an in-process Locker backed by one channel per key.
// It is enough for a single server instance; use a distributed Locker when
// several instances share one database.
type LocalLocker struct {
	// Wait bounds how long Lock blocks. Zero means until ctx is done.
	Wait time.Duration

	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

// NewLocalLocker returns a LocalLocker giving up after wait.
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{Wait: wait, slots: make(map[string]*slot)}
}

// Lock implements Locker.
func (l *LocalLocker) Lock(ctx context.Context, keys []string) (func(), error) {
	if l.Wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Wait)
		defer cancel()
	}

	keys = SortedKeys(keys)
	held := make([]string, 0, len(keys))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			l.release(held[i])
		}
	}

	for _, k := range keys {
		s := l.acquireSlot(k)
		select {
		case s.ch <- struct{}{}:
			held = append(held, k)
		case <-ctx.Done():
			l.dropSlot(k)
			release()
			return nil, fmt.Errorf("%w: lock %s: %v", ErrConcurrentModification, k, ctx.Err())
		}
	}

	var once sync.Once
	return func() { once.Do(release) }, nil
}

func (l *LocalLocker) acquireSlot(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.slots == nil {
		l.slots = make(map[string]*slot)
	}
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *LocalLocker) release(key string) {
	l.mu.Lock()
	s := l.slots[key]
	l.mu.Unlock()
	<-s.ch
	l.dropSlot(key)
}

func (l *LocalLocker) dropSlot(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.slots[key]
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}
