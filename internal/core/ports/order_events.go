package ports

import (
	"context"
)

// OrderChangedEvent announces that an order was created or changed state.
// It carries just enough for feed routing; subscribers re-query for details.
type OrderChangedEvent struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	CourierID  string `json:"courierId,omitempty"`
	Status     string `json:"status"`
}

// OrderEventPublisher broadcasts order lifecycle events to all application
// instances. Command handlers publish after a successful commit, so
// subscribers always observe the committed state when they re-query.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderChangedEvent) error
}
