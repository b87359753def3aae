package notifications

import (
	"context"

	"campuseats/internal/core/ports"
)

// EventPublisher fans an order event out to the local hub and to a delegate
// publisher carrying it to other instances. The hub notification is
// synchronous and cannot fail, so the acting client's own feeds refresh even
// when the bus is unavailable. The bus echoes the event back through the
// subscriber, which notifies the hub a second time; the coalescing
// subscriptions absorb the duplicate.
type EventPublisher struct {
	hub      *Hub
	delegate ports.OrderEventPublisher
}

// NewEventPublisher creates a publisher that notifies hub locally and
// forwards every event to delegate.
func NewEventPublisher(hub *Hub, delegate ports.OrderEventPublisher) *EventPublisher {
	return &EventPublisher{
		hub:      hub,
		delegate: delegate,
	}
}

// Publish notifies the local hub, then forwards the event to the delegate.
// The returned error is the delegate's; local feeds are already refreshed by
// the time it surfaces.
func (p *EventPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	p.hub.Notify(event)
	return p.delegate.Publish(ctx, event)
}
