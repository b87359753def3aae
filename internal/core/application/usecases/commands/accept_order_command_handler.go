package commands

import (
	"context"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"
)

// AcceptOrderCommandHandler handles a courier accepting a pending order.
//
// The aggregate enforces the self-delivery ban and the Pending precondition;
// the repository's conditional update enforces at-most-once acceptance under
// concurrent couriers. Losers of the race get errs.ErrConflict.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the acceptance command.
// Loads the order, applies the Accept transition, and persists it with the
// stored status required to still be Pending. Returns the accepted order on
// success.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = claimed.Accept(cmd.CourierID(), cmd.CourierName()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, claimed, order.Pending); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, orderChanged(claimed))

	return claimed, nil
}
