package symposium

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/afs"

	"github.com/synclore/symposium/console"
	"github.com/synclore/symposium/journal"
	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
	"github.com/synclore/symposium/service/messaging"
	"github.com/synclore/symposium/service/philosopher"
)

// Service represents the simulator façade wiring the chopstick ring, the
// philosophers, the event stream and its subscribers.
type Service struct {
	config   *Config
	runID    string
	queue    messaging.Queue[event.Event[model.TableEvent]]
	writer   *console.Writer
	layout   *console.Layout
	handlers []event.Handler
	activity philosopher.Activity
	seed     *int64

	runtime *Runtime
}

// New creates a simulator service. Configuration is validated before any
// collaborator is constructed; an invalid table launches nothing.
func New(options ...Option) (*Service, error) {
	s := &Service{
		config: DefaultConfig(),
		runID:  uuid.New().String(),
	}
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) init() error {
	events := event.New(s.queue, s.runID)

	if s.writer != nil {
		if err := s.writer.Create(); err != nil {
			return err
		}
		renderer := console.NewRenderer(s.writer, s.layout, s.config.Table.Seats)
		events.Subscribe(renderer.Handler())
	}

	var runJournal *journal.Journal
	if s.config.Journal.Enabled {
		var err error
		runJournal, err = journal.New(context.Background(), afs.New(), s.config.Journal.Config, s.runID)
		if err != nil {
			return err
		}
		events.Subscribe(runJournal.Handler())
	}
	for _, handler := range s.handlers {
		events.Subscribe(handler)
	}

	tableOptions := []philosopher.Option{
		philosopher.WithConfig(s.config.Table),
		philosopher.WithPublisher(events.Publisher()),
	}
	if s.activity != nil {
		tableOptions = append(tableOptions, philosopher.WithActivity(s.activity))
	}
	if s.seed != nil {
		tableOptions = append(tableOptions, philosopher.WithSeed(*s.seed))
	}
	table, err := philosopher.New(tableOptions...)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	s.runtime = &Runtime{
		runID:   s.runID,
		events:  events,
		table:   table,
		journal: runJournal,
		writer:  s.writer,
	}
	return nil
}

// Runtime returns the run lifecycle handle.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}
