package philosopher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/synclore/symposium/internal/clock"
	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
	"github.com/synclore/symposium/service/ring"
	"github.com/synclore/symposium/tracing"
)

// Philosopher cycles through thinking, hungry and eating forever, acquiring
// its two adjacent chopsticks in parity order: even seats right first, odd
// seats left first. The asymmetry guarantees at least one adjacent pair on
// the ring contends for its shared chopstick in the same physical order,
// which breaks the circular all-wait deadlock for any table of 2 or more.
type Philosopher struct {
	seat   int
	seats  int
	think  time.Duration
	eat    time.Duration
	jitter float64

	ring      *ring.Ring
	publisher *event.Publisher[model.TableEvent]
	activity  Activity
	rnd       *rand.Rand
}

// Seat returns the philosopher's position at the table.
func (p *Philosopher) Seat() int {
	return p.seat
}

// run drives the phase cycle until ctx is cancelled. Cancellation is
// checked at every phase boundary so shutdown never leaves a chopstick
// held.
func (p *Philosopher) run(ctx context.Context) {
	for cycle := 0; ; cycle++ {
		if ctx.Err() != nil {
			return
		}
		if err := p.cycle(ctx, cycle); err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Printf("philosopher %d: stopping after error: %v", p.seat, err)
			}
			return
		}
	}
}

func (p *Philosopher) cycle(ctx context.Context, n int) error {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("philosopher[%d].cycle", p.seat), "INTERNAL")
	span.WithAttributes(map[string]string{
		"table.seat":  strconv.Itoa(p.seat),
		"table.cycle": strconv.Itoa(n),
	})
	err := p.thinkPhase(ctx)
	if err == nil {
		err = p.dine(ctx)
	}
	tracing.EndSpan(span, ignoreCancel(err))
	return err
}

func (p *Philosopher) thinkPhase(ctx context.Context) error {
	ctx, span := tracing.StartSpan(ctx, "philosopher.think", "INTERNAL")
	started := clock.Now()
	p.emit(ctx, model.TableEvent{Seat: p.seat, Kind: model.EventThinkingStart})
	err := p.activity(ctx, p.seat, model.PhaseThinking, p.phaseDuration(p.think))
	if err == nil {
		p.emit(ctx, model.TableEvent{
			Seat:     p.seat,
			Kind:     model.EventThinkingEnd,
			Duration: clock.Since(started),
		})
	}
	tracing.EndSpan(span, ignoreCancel(err))
	return err
}

// dine acquires both chopsticks in parity order, eats, and releases them.
// Chopsticks are released on every exit path, including cancellation while
// hungry or mid-meal.
func (p *Philosopher) dine(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, "philosopher.dine", "INTERNAL")
	defer func() { tracing.EndSpan(span, ignoreCancel(err)) }()

	left := model.LeftStick(p.seat, p.seats)
	right := model.RightStick(p.seat, p.seats)
	var hasLeft, hasRight bool
	release := func() {
		if hasLeft {
			p.ring.Release(left)
			hasLeft = false
		}
		if hasRight {
			p.ring.Release(right)
			hasRight = false
		}
	}
	defer release()

	p.emit(ctx, model.TableEvent{Seat: p.seat, Kind: model.EventHungry})

	for _, side := range []model.Side{model.FirstStick(p.seat), model.SecondStick(p.seat)} {
		if err = ctx.Err(); err != nil {
			return err
		}
		stick := model.StickAt(p.seat, p.seats, side)
		if err = p.ring.Acquire(ctx, stick); err != nil {
			return err
		}
		if side == model.SideLeft {
			hasLeft = true
		} else {
			hasRight = true
		}
		p.emit(ctx, model.TableEvent{Seat: p.seat, Kind: model.EventAcquired, Side: side, Stick: stick})
	}
	span.WithAttributes(map[string]string{
		"table.stick.left":  strconv.Itoa(left),
		"table.stick.right": strconv.Itoa(right),
	})

	started := clock.Now()
	p.emit(ctx, model.TableEvent{Seat: p.seat, Kind: model.EventEatingStart})
	if err = p.activity(ctx, p.seat, model.PhaseEating, p.phaseDuration(p.eat)); err != nil {
		return err
	}
	p.emit(ctx, model.TableEvent{
		Seat:     p.seat,
		Kind:     model.EventEatingEnd,
		Duration: clock.Since(started),
	})

	release()
	p.emit(ctx, model.TableEvent{Seat: p.seat, Kind: model.EventReleased})
	return nil
}

// phaseDuration applies the configured jitter to a nominal phase duration.
func (p *Philosopher) phaseDuration(base time.Duration) time.Duration {
	if p.jitter == 0 || base == 0 {
		return base
	}
	factor := 1 + p.jitter*(2*p.rnd.Float64()-1)
	return time.Duration(float64(base) * factor)
}

// emit publishes a lifecycle event. A publish failure only occurs on
// cancellation, when the event is intentionally dropped.
func (p *Philosopher) emit(ctx context.Context, ev model.TableEvent) {
	_ = p.publisher.Publish(ctx, ev)
}

// ignoreCancel keeps cooperative shutdown from being recorded as a span
// failure.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
