package symposium

import (
	"time"

	"github.com/synclore/symposium/console"
	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
	"github.com/synclore/symposium/service/messaging"
	"github.com/synclore/symposium/service/philosopher"
)

// Option customises the simulator service.
type Option func(s *Service)

// WithConfig sets the full configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithSeats sets the number of philosophers
func WithSeats(seats int) Option {
	return func(s *Service) {
		s.config.Table.Seats = seats
	}
}

// WithDurations sets the nominal think and eat durations
func WithDurations(think, eat time.Duration) Option {
	return func(s *Service) {
		s.config.Table.Think = think
		s.config.Table.Eat = eat
	}
}

// WithJitter sets the per-phase duration randomisation fraction
func WithJitter(jitter float64) Option {
	return func(s *Service) {
		s.config.Table.Jitter = jitter
	}
}

// WithQueue sets the event queue implementation
func WithQueue(queue messaging.Queue[event.Event[model.TableEvent]]) Option {
	return func(s *Service) {
		s.queue = queue
	}
}

// WithWriter sets the console render target; without one no console output
// is produced
func WithWriter(writer *console.Writer) Option {
	return func(s *Service) {
		s.writer = writer
	}
}

// WithLayout sets the seat display table used by the console renderer
func WithLayout(layout *console.Layout) Option {
	return func(s *Service) {
		s.layout = layout
	}
}

// WithHandlers subscribes additional event handlers
func WithHandlers(handlers ...event.Handler) Option {
	return func(s *Service) {
		s.handlers = append(s.handlers, handlers...)
	}
}

// WithActivity replaces the timed-sleep phase activity
func WithActivity(activity philosopher.Activity) Option {
	return func(s *Service) {
		s.activity = activity
	}
}

// WithSeed pins the jitter random source for reproducible runs
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = &seed
	}
}
