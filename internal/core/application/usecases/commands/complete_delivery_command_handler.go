package commands

import (
	"context"
	"time"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/services"
	"campuseats/internal/core/ports"
)

// CompleteDeliveryCommandHandler handles the terminal step of the order
// lifecycle: marking the order Delivered and crediting the flat delivery fee
// to the courier's account.
//
// Both writes happen inside one transaction. An order is never Delivered
// without the matching earnings credit, and the credit never happens twice
// because the conditional order update fails once the order left Accepted.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires a cross-aggregate UoWFactory since it updates orders and accounts
// together.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery completion command.
// Applies the Deliver transition (which rejects couriers other than the one
// bound to the order), runs the earnings ledger, and persists order and
// account changes atomically.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDeliveryCommand,
) (*order.Order, error) {
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
	accountRepo := uow.AccountRepository()

	delivered, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Deliver runs before the account lookup so a caller who is not the bound
	// courier is refused on ownership, not on account state.
	if err = delivered.Deliver(cmd.CourierID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	courierAccount, err := accountRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	fee, err := services.NewEarningsLedger().CreditDelivery(delivered, courierAccount)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, delivered, order.Accepted); err != nil {
		return nil, err
	}

	if err = accountRepo.CreditEarnings(ctx, cmd.CourierID(), fee); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, orderChanged(delivered))

	return delivered, nil
}
