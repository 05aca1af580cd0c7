package philosopher

import (
	"time"

	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
	"github.com/synclore/symposium/service/ring"
)

type Option func(*Service)

// WithConfig sets the full configuration for the service
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithSeats sets the number of philosophers at the table
func WithSeats(seats int) Option {
	return func(s *Service) {
		s.config.Seats = seats
	}
}

// WithDurations sets the nominal think and eat durations
func WithDurations(think, eat time.Duration) Option {
	return func(s *Service) {
		s.config.Think = think
		s.config.Eat = eat
	}
}

// WithJitter sets the per-phase duration randomisation fraction
func WithJitter(jitter float64) Option {
	return func(s *Service) {
		s.config.Jitter = jitter
	}
}

// WithRing sets the chopstick ring shared by the philosophers
func WithRing(r *ring.Ring) Option {
	return func(s *Service) {
		s.ring = r
	}
}

// WithPublisher sets the lifecycle event publisher
func WithPublisher(publisher *event.Publisher[model.TableEvent]) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithActivity replaces the timed-sleep phase activity
func WithActivity(activity Activity) Option {
	return func(s *Service) {
		s.activity = activity
	}
}

// WithSeed pins the jitter random source for reproducible runs
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}
