package commands

import (
	"context"
	"time"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Prices the cart with the flat delivery fee, persists the new order in
// Pending status, and announces it to the live feeds.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for feed notifications.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// The order is created in Pending status with pricing fixed at placement
// time. On success the returned aggregate reflects the persisted state and an
// event is published so courier feeds pick up the new order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Vendor(),
		cmd.Items(),
		cmd.DeliveryLocation(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Feeds tolerate missed events, the publisher logs its own failures.
	_ = h.publisher.Publish(ctx, orderChanged(newOrder))

	return newOrder, nil
}
