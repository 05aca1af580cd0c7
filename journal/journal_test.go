package journal

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
)

func TestJournalWritesOneLinePerEvent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	j, err := New(ctx, afs.New(), Config{BaseURL: dir, FlushEvery: 1}, "test-run")
	assert.NoError(t, err)
	assert.Equal(t, path.Join(dir, "run-test-run.jsonl"), j.URL())

	events := []model.TableEvent{
		{Seat: 0, Kind: model.EventThinkingStart},
		{Seat: 0, Kind: model.EventHungry},
		{Seat: 0, Kind: model.EventAcquired, Side: model.SideRight, Stick: 1},
	}
	for _, data := range events {
		assert.NoError(t, j.Record(ctx, &event.Event[model.TableEvent]{
			RunID:     "test-run",
			CreatedAt: time.Now(),
			Data:      data,
		}))
	}
	assert.NoError(t, j.Close(ctx))

	f, err := os.Open(j.URL())
	assert.NoError(t, err)
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var decoded event.Event[model.TableEvent]
		assert.NoError(t, json.Unmarshal(scanner.Bytes(), &decoded))
		assert.Equal(t, "test-run", decoded.RunID)
		assert.Equal(t, events[lines].Kind, decoded.Data.Kind)
		lines++
	}
	assert.Equal(t, len(events), lines)
}

func TestFlushRewritesWholeLog(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	j, err := New(ctx, afs.New(), Config{BaseURL: dir, FlushEvery: 2}, "grow")
	assert.NoError(t, err)

	record := func(kind model.EventKind) {
		assert.NoError(t, j.Record(ctx, &event.Event[model.TableEvent]{
			RunID: "grow",
			Data:  model.TableEvent{Kind: kind},
		}))
	}

	record(model.EventThinkingStart)
	record(model.EventThinkingEnd)

	data, err := os.ReadFile(j.URL())
	assert.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte("\n")))

	// Each flush replaces the object with the full history, so lines from
	// earlier flushes must survive later ones.
	record(model.EventHungry)
	record(model.EventEatingStart)
	assert.NoError(t, j.Close(ctx))

	data, err = os.ReadFile(j.URL())
	assert.NoError(t, err)
	assert.Equal(t, 4, bytes.Count(data, []byte("\n")))
	assert.Contains(t, string(data), string(model.EventThinkingStart))
}

func TestJournalRequiresBaseURL(t *testing.T) {
	_, err := New(context.Background(), afs.New(), Config{}, "r")
	assert.Error(t, err)
}

func TestJournalHandler(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	j, err := New(ctx, afs.New(), Config{BaseURL: dir, FlushEvery: 1}, "h")
	assert.NoError(t, err)

	handler := j.Handler()
	handler(&event.Event[model.TableEvent]{Data: model.TableEvent{Seat: 4, Kind: model.EventReleased}})
	assert.NoError(t, j.Close(ctx))

	data, err := os.ReadFile(j.URL())
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"released"`)
}
