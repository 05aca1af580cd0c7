package symposium

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/synclore/symposium/console"
	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
)

func TestNewRejectsInvalidTable(t *testing.T) {
	for _, seats := range []int{0, 1} {
		service, err := New(WithSeats(seats))
		assert.Error(t, err, "%d philosophers should be a startup error", seats)
		assert.Nil(t, service)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.Table.Seats)
	assert.Equal(t, 3*time.Second, config.Table.Think)
	assert.Equal(t, 3*time.Second, config.Table.Eat)
	assert.False(t, config.Journal.Enabled)
	assert.False(t, config.Trace.Enabled)
	assert.NoError(t, config.Validate())
}

func TestRunEndToEnd(t *testing.T) {
	var mu sync.Mutex
	counts := map[int]int{}

	service, err := New(
		WithSeats(5),
		WithDurations(time.Millisecond, time.Millisecond),
		WithHandlers(func(ev *event.Event[model.TableEvent]) {
			if ev.Data.Kind == model.EventEatingStart {
				mu.Lock()
				counts[ev.Data.Seat]++
				mu.Unlock()
			}
		}),
	)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runtime := service.Runtime()
	assert.NotEmpty(t, runtime.RunID())
	assert.NoError(t, runtime.Start(ctx))

	deadline := time.Now().Add(15 * time.Second)
	for {
		mu.Lock()
		fed := 0
		for _, n := range counts {
			if n >= 1 {
				fed++
			}
		}
		mu.Unlock()
		if fed == 5 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("not every philosopher reached eating")
		}
		time.Sleep(5 * time.Millisecond)
	}
	runtime.Shutdown()

	// Clean shutdown leaves every chopstick free.
	for stick := 0; stick < 5; stick++ {
		assert.True(t, runtime.Table().Ring().TryAcquire(stick), "chopstick %d still held", stick)
	}
}

// syncBuffer makes bytes.Buffer safe to read while the listener goroutine
// renders into it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunWithConsoleAndJournal(t *testing.T) {
	var buf syncBuffer
	config := DefaultConfig()
	config.Table.Think = time.Millisecond
	config.Table.Eat = time.Millisecond
	config.Journal.Enabled = true
	config.Journal.BaseURL = t.TempDir()

	service, err := New(
		WithConfig(config),
		WithWriter(console.New(&buf, false)),
	)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runtime := service.Runtime()
	assert.NoError(t, runtime.Start(ctx))

	deadline := time.Now().Add(10 * time.Second)
	for buf.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no console output produced")
		}
		time.Sleep(5 * time.Millisecond)
	}
	runtime.Shutdown()

	assert.Contains(t, buf.String(), "Philosopher")

	entries, err := os.ReadDir(config.Journal.BaseURL)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Contains(t, entries[0].Name(), runtime.RunID())
	}
}
