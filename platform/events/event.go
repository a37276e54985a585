// Package events is the in-process publish/subscribe layer modules use to
// react to each other's work without importing each other.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event. EventName is the routing key.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp shared by all events.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps an event with the current UTC time.
func NewBaseEvent() BaseEvent {
	return NewBaseEventAt(time.Now())
}

// NewBaseEventAt stamps an event with t, for callers that own a clock.
func NewBaseEventAt(t time.Time) BaseEvent {
	return BaseEvent{Timestamp: t.UTC()}
}

// Handler processes one event.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Typed adapts a function over one concrete event type. Events of any other
// type are ignored.
func Typed[E Event](fn func(ctx context.Context, event E) error) Handler {
	return HandlerFunc(func(ctx context.Context, event Event) error {
		e, ok := event.(E)
		if !ok {
			return nil
		}
		return fn(ctx, e)
	})
}

// On subscribes fn under the name reported by the zero value of E.
func On[E Event](bus Bus, fn func(ctx context.Context, event E) error) {
	var zero E
	bus.Subscribe(zero.EventName(), Typed(fn))
}

// Bus publishes events to the handlers subscribed to their name.
type Bus interface {
	// Publish dispatches asynchronously; handler errors are only logged.
	Publish(ctx context.Context, event Event)

	// PublishSync runs every handler before returning and joins their errors.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers handler for eventName.
	Subscribe(eventName string, handler Handler)
}
