package commands

import (
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"
)

// orderChanged builds the lifecycle event for an order's current state.
// Handlers publish it after commit, so subscribers that re-query on receipt
// always see the committed row.
func orderChanged(o *order.Order) ports.OrderChangedEvent {
	event := ports.OrderChangedEvent{
		OrderID:    o.ID().String(),
		CustomerID: o.Customer().String(),
		Status:     o.Status().String(),
	}

	if courier := o.Courier(); courier != nil {
		event.CourierID = courier.String()
	}

	return event
}
