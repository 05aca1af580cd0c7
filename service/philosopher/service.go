package philosopher

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
	"github.com/synclore/symposium/service/ring"
)

// Config represents table service configuration
type Config struct {
	// Seats is the number of philosophers (and chopsticks) at the table.
	Seats int `json:"seats" yaml:"seats"`

	// Think is the nominal duration of a thinking phase.
	Think time.Duration `json:"think" yaml:"think"`

	// Eat is the nominal duration of an eating phase.
	Eat time.Duration `json:"eat" yaml:"eat"`

	// Jitter randomises each phase duration by up to +/- Jitter fraction of
	// the nominal value. Zero disables randomisation.
	Jitter float64 `json:"jitter" yaml:"jitter"`
}

// DefaultConfig returns the default table configuration
func DefaultConfig() Config {
	return Config{
		Seats:  5,
		Think:  3 * time.Second,
		Eat:    3 * time.Second,
		Jitter: 0,
	}
}

// Validate returns an error describing invalid settings or nil.
func (c Config) Validate() error {
	if c.Seats < 2 {
		return fmt.Errorf("table requires at least 2 philosophers, got %d", c.Seats)
	}
	if c.Think < 0 {
		return fmt.Errorf("think duration must not be negative, got %s", c.Think)
	}
	if c.Eat < 0 {
		return fmt.Errorf("eat duration must not be negative, got %s", c.Eat)
	}
	if c.Jitter < 0 || c.Jitter >= 1 {
		return fmt.Errorf("jitter must be in [0, 1), got %v", c.Jitter)
	}
	return nil
}

// Activity performs the timed portion of a phase (thinking or eating) for
// the philosopher at the given seat. The default implementation sleeps;
// tests inject their own to observe critical sections.
type Activity func(ctx context.Context, seat int, phase model.Phase, d time.Duration) error

// Service drives one philosopher goroutine per seat around a shared
// chopstick ring. The service is the active component; the ring is passive.
type Service struct {
	config    Config
	ring      *ring.Ring
	publisher *event.Publisher[model.TableEvent]
	activity  Activity
	seed      int64

	philosophers []*Philosopher
	wg           sync.WaitGroup
	cancels      []context.CancelFunc
	started      bool
	mu           sync.Mutex
}

// New creates a table service. The event publisher is required; the ring is
// built from the configuration unless one is supplied.
func New(options ...Option) (*Service, error) {
	s := &Service{
		config: DefaultConfig(),
		seed:   time.Now().UnixNano(),
	}
	for _, opt := range options {
		opt(s)
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if s.publisher == nil {
		return nil, fmt.Errorf("event publisher is required")
	}
	if s.ring == nil {
		var err error
		if s.ring, err = ring.New(s.config.Seats); err != nil {
			return nil, err
		}
	}
	if s.ring.Len() != s.config.Seats {
		return nil, fmt.Errorf("ring size %d does not match %d seats", s.ring.Len(), s.config.Seats)
	}
	if s.activity == nil {
		s.activity = sleepActivity
	}

	s.philosophers = make([]*Philosopher, s.config.Seats)
	for seat := 0; seat < s.config.Seats; seat++ {
		s.philosophers[seat] = &Philosopher{
			seat:      seat,
			seats:     s.config.Seats,
			think:     s.config.Think,
			eat:       s.config.Eat,
			jitter:    s.config.Jitter,
			ring:      s.ring,
			publisher: s.publisher,
			activity:  s.activity,
			rnd:       rand.New(rand.NewSource(s.seed + int64(seat))),
		}
	}
	return s, nil
}

// Ring exposes the chopstick ring shared by all philosophers.
func (s *Service) Ring() *ring.Ring {
	return s.ring
}

// Start launches one goroutine per philosopher. Each gets its own context
// derived from ctx so that Shutdown can stop them individually.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("table already started")
	}
	s.started = true
	for _, p := range s.philosophers {
		seatCtx, cancel := context.WithCancel(ctx)
		s.cancels = append(s.cancels, cancel)
		s.wg.Add(1)
		go func(p *Philosopher) {
			defer s.wg.Done()
			p.run(seatCtx)
		}(p)
	}
	return nil
}

// Shutdown stops every philosopher and waits for each to release any held
// chopsticks and exit.
func (s *Service) Shutdown() {
	s.mu.Lock()
	cancels := s.cancels
	s.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
	s.wg.Wait()
}

// sleepActivity is the default Activity: a cancellable timed sleep.
func sleepActivity(ctx context.Context, seat int, phase model.Phase, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
