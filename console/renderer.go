// Package console renders the table event stream as timestamped, coloured
// terminal lines.  It is strictly a consumer of events; the simulation core
// does not know whether, or how, its events are displayed.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/event"
)

type seatStyle struct {
	name  string
	color *color.Color
}

// Renderer formats lifecycle events in the classic form
// "[HH:MM:SS] Philosopher N is thinking.".
type Renderer struct {
	out    io.Writer
	styles []seatStyle

	thinking *color.Color
	eating   *color.Color
	picking  *color.Color
	putting  *color.Color
}

// NewRenderer creates a renderer for a table of the given size. A nil
// layout falls back to the default palette.
func NewRenderer(out io.Writer, layout *Layout, seats int) *Renderer {
	if layout == nil {
		layout = DefaultLayout(seats)
	}
	r := &Renderer{
		out:      out,
		styles:   make([]seatStyle, seats),
		thinking: color.New(color.FgGreen),
		eating:   color.New(color.FgRed),
		picking:  color.New(color.FgYellow),
		putting:  color.New(color.FgBlue),
	}
	for seat := 0; seat < seats; seat++ {
		name, c := layout.styleFor(seat)
		r.styles[seat] = seatStyle{name: name, color: c}
	}
	return r
}

// Handler adapts the renderer to the event service subscription interface.
func (r *Renderer) Handler() event.Handler {
	return func(ev *event.Event[model.TableEvent]) {
		r.Render(ev)
	}
}

// Render writes one event as a console line. Events arrive on a single
// listener goroutine, so Render needs no locking.
func (r *Renderer) Render(ev *event.Event[model.TableEvent]) {
	seat := ev.Data.Seat
	if seat < 0 || seat >= len(r.styles) {
		return
	}
	style := r.styles[seat]

	var activity *color.Color
	var message string
	switch ev.Data.Kind {
	case model.EventThinkingStart:
		activity, message = r.thinking, " is thinking."
	case model.EventThinkingEnd:
		activity, message = r.thinking, fmt.Sprintf(" thought for %d ms.", ev.Data.Duration.Milliseconds())
	case model.EventHungry:
		message = " is hungry and trying to pick up chopsticks."
	case model.EventAcquired:
		activity, message = r.picking, fmt.Sprintf(" picked up %s chopstick %d.", ev.Data.Side, ev.Data.Stick)
	case model.EventEatingStart:
		activity, message = r.eating, " is eating."
	case model.EventEatingEnd:
		activity, message = r.eating, fmt.Sprintf(" ate for %d ms.", ev.Data.Duration.Milliseconds())
	case model.EventReleased:
		activity, message = r.putting, " put down chopsticks."
	default:
		return
	}
	if activity != nil {
		message = activity.Sprint(message)
	}
	fmt.Fprintf(r.out, "[%s] %s%s\n", ev.CreatedAt.Format("15:04:05"), style.color.Sprint(style.name), message)
}
