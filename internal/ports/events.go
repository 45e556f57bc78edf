package ports

import "context"

const (
	// EventStateChanged is emitted every time the controller publishes a new
	// state snapshot. The payload is the snapshot itself.
	EventStateChanged = "roster.state.changed"
	// EventActionStarted is emitted when an action begins execution.
	EventActionStarted = "roster.action.started"
	// EventActionSucceeded is emitted when an action's outcome was a success.
	EventActionSucceeded = "roster.action.succeeded"
	// EventActionFailed is emitted when an action's outcome was a failure.
	EventActionFailed = "roster.action.failed"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, UI updates, or integrations.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run, so subscribers observe
// events in publication order. Handlers that need to do slow work should hand
// it off to their own goroutine. Implementations must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Handlers should avoid
// panicking; failures should be surfaced via returned errors so publishers can
// log diagnostics and continue delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources.
type Subscription interface {
	Unsubscribe()
}
