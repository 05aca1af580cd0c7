package ring

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsSmallRings(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := New(n)
		assert.Error(t, err, "ring of %d should be rejected", n)
	}
	r, err := New(2)
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestAcquireRelease(t *testing.T) {
	r, err := New(5)
	assert.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, r.Acquire(ctx, 2))
	assert.False(t, r.TryAcquire(2), "held chopstick must not be acquirable")

	r.Release(2)
	assert.True(t, r.TryAcquire(2), "released chopstick must be acquirable")
	r.Release(2)
}

func TestMutualExclusion(t *testing.T) {
	r, err := New(3)
	assert.NoError(t, err)

	var holders int32
	var wg sync.WaitGroup
	ctx := context.Background()
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if err := r.Acquire(ctx, 1); err != nil {
					t.Errorf("acquire failed: %v", err)
					return
				}
				if n := atomic.AddInt32(&holders, 1); n != 1 {
					t.Errorf("chopstick held by %d goroutines at once", n)
				}
				atomic.AddInt32(&holders, -1)
				r.Release(1)
			}
		}()
	}
	wg.Wait()
}

func TestAcquireBlocksUntilRelease(t *testing.T) {
	r, err := New(2)
	assert.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, r.Acquire(ctx, 0))

	acquired := make(chan struct{})
	go func() {
		if err := r.Acquire(ctx, 0); err == nil {
			close(acquired)
		}
	}()

	select {
	case <-acquired:
		t.Fatal("acquire succeeded while chopstick was held")
	case <-time.After(50 * time.Millisecond):
	}

	r.Release(0)
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter was not unblocked by release")
	}
}

func TestAcquireCancellation(t *testing.T) {
	r, err := New(2)
	assert.NoError(t, err)
	assert.NoError(t, r.Acquire(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = r.Acquire(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The chopstick is still held by the first acquirer only.
	r.Release(1)
	assert.True(t, r.TryAcquire(1))
}

func TestReleaseOfFreeChopstickPanics(t *testing.T) {
	r, err := New(2)
	assert.NoError(t, err)
	assert.Panics(t, func() { r.Release(0) })
}
