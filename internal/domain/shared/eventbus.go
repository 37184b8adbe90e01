package shared

import "context"

// EventHandler consumes domain events, typically on the far side of an
// event bus. The order notification sender is the main implementor.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes names the events this handler wants. Empty means all.
	EventTypes() []string
}

// EventPublisher is the half of the bus application services depend on.
// Services publish after their transaction commits; delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber registers and removes handlers
type EventSubscriber interface {
	// Subscribe registers a handler, defaulting to the handler's own
	// EventTypes when none are given
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
}

// EventBus is a publisher plus subscriber with a dispatch lifecycle:
// Start brings up background delivery, Stop drains it.
type EventBus interface {
	EventPublisher
	EventSubscriber
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
