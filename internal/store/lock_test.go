package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerSerializesKey(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	var mu sync.Mutex
	inside, maxInside := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, CardLockKey(1))
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
	assert.Empty(t, l.locks, "entries should be dropped after release")
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	unlockA, err := l.Lock(ctx, CardLockKey(1))
	require.NoError(t, err)
	defer unlockA()

	ctx2, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	unlockB, err := l.Lock(ctx2, CardLockKey(2))
	require.NoError(t, err)
	unlockB()
}

func TestLocalLockerContextCancel(t *testing.T) {
	l := NewLocalLocker()
	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "k")
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock() // idempotent

	again, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)
	again()
}

// TestRedisLocker runs against a live server when SMARTANKI_TEST_REDIS_ADDR
// is set.
func TestRedisLocker(t *testing.T) {
	addr := os.Getenv("SMARTANKI_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SMARTANKI_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb, err := DialRedis(ctx, addr, "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	l := NewRedisLocker(rdb, time.Second)
	key := "smartanki:test:" + t.Name()

	unlock, err := l.Lock(ctx, key)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = l.Lock(short, key)
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	unlock2, err := l.Lock(ctx, key)
	require.NoError(t, err)
	unlock2()
}

func TestLockerUnlockIsIdempotent(t *testing.T) {
	var l Locker = NewLocalLocker()
	ctx := context.Background()

	unlock, err := l.Lock(ctx, CardLockKey(7))
	require.NoError(t, err)
	unlock()
	unlock()

	// A second release must not free a lock taken after the first.
	again, err := l.Lock(ctx, CardLockKey(7))
	require.NoError(t, err)
	unlock()

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(short, CardLockKey(7))
	require.ErrorIs(t, err, ErrLockTimeout)
	again()
}
