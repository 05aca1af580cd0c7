// Package ring provides the chopstick ring: N independently lockable binary
// resources indexed 0..N-1.  The ring is passive; philosophers drive it via
// Acquire and Release.  Each chopstick is an independent capacity-1 token
// channel, so acquiring one chopstick never serialises unrelated ones.
package ring

import (
	"context"
	"fmt"
)

// Ring holds N chopsticks, all free after construction.
type Ring struct {
	sticks []chan struct{}
}

// New creates a ring of n chopsticks. A ring needs at least two seats to be
// meaningful, so n < 2 is rejected.
func New(n int) (*Ring, error) {
	if n < 2 {
		return nil, fmt.Errorf("ring requires at least 2 chopsticks, got %d", n)
	}
	sticks := make([]chan struct{}, n)
	for i := range sticks {
		sticks[i] = make(chan struct{}, 1)
		sticks[i] <- struct{}{}
	}
	return &Ring{sticks: sticks}, nil
}

// Len returns the number of chopsticks.
func (r *Ring) Len() int {
	return len(r.sticks)
}

// Acquire blocks until chopstick i is free, then holds it. It returns
// ctx.Err() when the context is done first; in that case the chopstick is
// not held. Safe for concurrent use on the same index.
func (r *Ring) Acquire(ctx context.Context, i int) error {
	select {
	case <-r.sticks[i]:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire holds chopstick i without blocking and reports whether it
// succeeded.
func (r *Ring) TryAcquire(i int) bool {
	select {
	case <-r.sticks[i]:
		return true
	default:
		return false
	}
}

// Release frees chopstick i and unblocks at most one waiter. Releasing a
// chopstick that is not held breaks the mutual-exclusion invariant for the
// remainder of the run, so it panics rather than corrupt state.
func (r *Ring) Release(i int) {
	select {
	case r.sticks[i] <- struct{}{}:
	default:
		panic(fmt.Sprintf("ring: release of chopstick %d which is not held", i))
	}
}
