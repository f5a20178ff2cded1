// Package events reduces raw voice-state notifications into semantic
// presence transitions and routes them to a fixed set of handlers.
package events

import "context"

// Kind identifies a presence transition.
type Kind int

const (
	// Entered means the member connected to a channel they were not in.
	Entered Kind = iota
	// Left means the member disconnected from a channel they were in.
	Left
)

func (k Kind) String() string {
	switch k {
	case Entered:
		return "entered"
	case Left:
		return "left"
	}
	return "unknown"
}

// Event is one presence transition for one member.
type Event struct {
	Kind      Kind
	GuildID   string
	ChannelID string
	UserID    string
}

// Normalize classifies a raw (previous, new) voice-state pair into zero, one
// or two transitions. Degenerate updates (same channel on both sides, e.g. a
// mute toggle) produce nothing. A direct channel-to-channel move produces a
// Left for the old channel and an Entered for the new one.
func Normalize(guildID, prevChannelID, newChannelID, userID string) []Event {
	if prevChannelID == newChannelID {
		return nil
	}

	var out []Event
	if prevChannelID != "" {
		out = append(out, Event{Kind: Left, GuildID: guildID, ChannelID: prevChannelID, UserID: userID})
	}
	if newChannelID != "" {
		out = append(out, Event{Kind: Entered, GuildID: guildID, ChannelID: newChannelID, UserID: userID})
	}
	return out
}

// Handler consumes one event. Handlers must tolerate duplicates and
// reordering; the dispatcher offers no delivery guarantees beyond in-order
// invocation of the handlers registered for a single event.
type Handler func(ctx context.Context, ev Event)

// Dispatcher routes events to handlers. The handler set is fixed at
// construction so the mapping is statically verifiable, not discovered at
// runtime.
type Dispatcher struct {
	handlers map[Kind][]Handler
}

// NewDispatcher builds a dispatcher with explicit, ordered handler lists per
// transition kind.
func NewDispatcher(entered, left []Handler) *Dispatcher {
	return &Dispatcher{
		handlers: map[Kind][]Handler{
			Entered: entered,
			Left:    left,
		},
	}
}

// Dispatch runs every registered handler for each event, in order. All
// handlers for one event observe the same immutable value.
func (d *Dispatcher) Dispatch(ctx context.Context, evs []Event) {
	for _, ev := range evs {
		for _, h := range d.handlers[ev.Kind] {
			h(ctx, ev)
		}
	}
}
