// Package journal writes the table event stream to a per-run log, one JSON
// object per line.  It is a presentation collaborator: the core publishes
// events whether or not a journal subscribes, and no simulation state is
// ever read back from it.
package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
)

// Config holds journal configuration.
type Config struct {
	// BaseURL is the directory the run log is written to. Any scheme the
	// afs service understands works (plain paths, file://, mem://).
	BaseURL string `json:"baseURL" yaml:"baseURL"`

	// FlushEvery uploads the log after this many events. Zero means flush
	// only on Close.
	FlushEvery int `json:"flushEvery" yaml:"flushEvery"`
}

// DefaultConfig returns a journal configuration flushing every 64 events.
func DefaultConfig() Config {
	return Config{FlushEvery: 64}
}

// Journal accumulates event lines and uploads them through the afs service.
type Journal struct {
	fs     afs.Service
	config Config
	url    string

	// buf keeps every line recorded since New: afs Upload replaces the
	// target object wholesale, so each flush must rewrite the complete log.
	// Memory therefore grows with the event count for the life of the run.
	mu    sync.Mutex
	buf   bytes.Buffer
	lines int
}

// New creates a journal for the given run. The base directory is created
// when missing.
func New(ctx context.Context, fs afs.Service, config Config, runID string) (*Journal, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("journal base URL cannot be empty")
	}
	if fs == nil {
		fs = afs.New()
	}
	if exists, _ := fs.Exists(ctx, config.BaseURL); !exists {
		if err := fs.Create(ctx, config.BaseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}
	return &Journal{
		fs:     fs,
		config: config,
		url:    path.Join(config.BaseURL, fmt.Sprintf("run-%v.jsonl", runID)),
	}, nil
}

// URL returns the location of the run log.
func (j *Journal) URL() string {
	return j.url
}

// Handler adapts the journal to the event service subscription interface.
func (j *Journal) Handler() event.Handler {
	return func(ev *event.Event[model.TableEvent]) {
		_ = j.Record(context.Background(), ev)
	}
}

// Record appends one event as a JSON line, flushing per configuration.
func (j *Journal) Record(ctx context.Context, ev *event.Event[model.TableEvent]) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.buf.Write(data)
	j.buf.WriteByte('\n')
	j.lines++
	if j.config.FlushEvery > 0 && j.lines%j.config.FlushEvery == 0 {
		return j.flush(ctx)
	}
	return nil
}

// Close uploads any buffered lines.
func (j *Journal) Close(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.flush(ctx)
}

func (j *Journal) flush(ctx context.Context) error {
	if j.buf.Len() == 0 {
		return nil
	}
	return j.fs.Upload(ctx, j.url, file.DefaultFileOsMode, bytes.NewReader(j.buf.Bytes()))
}
