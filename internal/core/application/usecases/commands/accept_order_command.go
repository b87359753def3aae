package commands

import (
	"errors"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrCourierNameIsRequired = errors.New("courier name is required")
)

// AcceptOrderCommand represents a courier's claim on a pending order.
// At most one courier wins a contested order; the conditional update in the
// repository decides the race.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   kernel.UserID
	courierName string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a courier to accept an order.
func NewAcceptOrderCommand(
	orderID kernel.UUID,
	courierID kernel.UserID,
	courierName string,
) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourier(courierID, courierName),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the accepting courier.
func (c AcceptOrderCommand) CourierID() kernel.UserID {
	return c.courierID
}

// CourierName returns the courier's display name, denormalized onto the order.
func (c AcceptOrderCommand) CourierName() string {
	return c.courierName
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setCourier(courierID kernel.UserID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(courierName) == "" {
		return ErrCourierNameIsRequired
	}

	c.courierID = courierID
	c.courierName = courierName
	return nil
}
