package commands

import (
	"errors"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrVendorIsRequired          = errors.New("vendor is required")
	ErrItemsAreRequired          = errors.New("at least one item is required")
	ErrDeliveryLocationIsRequired = errors.New("delivery location is required")
)

// PlaceOrderCommand represents a customer's request to place a new order:
// a cart of items from a single vendor plus a delivery location on campus.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UserID
	customerName     string
	vendor           string
	items            []order.Item
	deliveryLocation string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that identifiers are valid, the cart is non-empty, and the vendor
// and delivery location are present. Pricing happens in the aggregate, not
// here.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UserID,
	customerName string,
	vendor string,
	items []order.Item,
	deliveryLocation string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customerID, customerName),
		cmd.setVendor(vendor),
		cmd.setItems(items),
		cmd.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UserID {
	return c.customerID
}

// CustomerName returns the customer's display name, denormalized onto the order.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Vendor returns the vendor the cart was assembled from.
func (c PlaceOrderCommand) Vendor() string {
	return c.vendor
}

// Items returns a copy of the ordered items.
func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// DeliveryLocation returns the campus drop-off point.
func (c PlaceOrderCommand) DeliveryLocation() string {
	return c.deliveryLocation
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customerID kernel.UserID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(customerName) == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerID = customerID
	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setVendor(vendor string) error {
	if strings.TrimSpace(vendor) == "" {
		return ErrVendorIsRequired
	}

	c.vendor = vendor
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return ErrDeliveryLocationIsRequired
	}

	c.deliveryLocation = location
	return nil
}
