package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// FlatDeliveryFee is the fixed delivery surcharge added to every order's total
// and the amount credited to the courier when the delivery completes, in whole
// currency units.
const FlatDeliveryFee int64 = 30

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrSelfDelivery is the cause reported when a customer tries to accept
	// their own order.
	ErrSelfDelivery = errors.New("customers may not deliver their own orders")
)

// Order represents a food-delivery order in the system. It is the aggregate root
// that manages the order lifecycle from placement through acceptance to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid customer reference
//   - Order content (vendor, items, location, pricing) is immutable after placement
//   - totalCost always equals subtotal plus the flat delivery fee
//   - A courier is set exactly once, on acceptance, and never equals the customer
//   - Status transitions follow Pending -> Accepted -> Delivered
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	customerID   kernel.UserID
	customerName string

	vendor           string
	items            []Item
	deliveryLocation string

	subtotal    int64
	deliveryFee int64
	totalCost   int64

	status      Status
	courierID   *kernel.UserID
	courierName string

	createdAt   time.Time
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder places a new order for a customer. This is the only way to create a
// valid new Order, ensuring all business invariants are maintained.
//
// The subtotal is computed as the sum of item totals, the delivery fee is the
// flat rate, and the total cost is their sum. The order starts in Pending
// status with no courier, and createdAt is set to now.
//
// Returns a validation error if the identifier or customer reference is
// invalid, the vendor label is empty, the cart is empty, any item is invalid,
// or the delivery location is blank.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UserID,
	customerName string,
	vendor string,
	items []Item,
	deliveryLocation string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customerID, customerName),
		order.setVendor(vendor),
		order.setItems(items),
		order.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	order.subtotal = 0
	for _, item := range order.items {
		order.subtotal += item.Total()
	}
	order.deliveryFee = FlatDeliveryFee
	order.totalCost = order.subtotal + order.deliveryFee

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// placement workflow. It validates the same structural invariants as NewOrder
// plus the stored pricing and status/courier consistency, so corrupted rows are
// rejected at the boundary instead of propagating into the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UserID,
	customerName string,
	vendor string,
	items []Item,
	deliveryLocation string,
	subtotal int64,
	deliveryFee int64,
	totalCost int64,
	status Status,
	courierID *kernel.UserID,
	courierName string,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customerID, customerName),
		order.setVendor(vendor),
		order.setItems(items),
		order.setDeliveryLocation(deliveryLocation),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if totalCost != subtotal+deliveryFee {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("%d does not equal subtotal %d plus delivery fee %d", totalCost, subtotal, deliveryFee))
	}
	order.subtotal = subtotal
	order.deliveryFee = deliveryFee
	order.totalCost = totalCost

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		if courierName == "" {
			return nil, errs.NewValueIsRequiredError("courierName")
		}
	}
	order.courierID = courierID
	order.courierName = courierName

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the identifier of the customer who placed the order.
func (o *Order) Customer() kernel.UserID {
	return o.customerID
}

// CustomerName returns the display name of the customer, denormalized onto the
// order for feeds.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Vendor returns the vendor label the order was placed against.
func (o *Order) Vendor() string {
	return o.vendor
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryLocation returns the free-form delivery destination.
func (o *Order) DeliveryLocation() string {
	return o.deliveryLocation
}

// Subtotal returns the sum of item totals in whole currency units.
func (o *Order) Subtotal() int64 {
	return o.subtotal
}

// DeliveryFee returns the flat delivery surcharge for this order.
func (o *Order) DeliveryFee() int64 {
	return o.deliveryFee
}

// TotalCost returns subtotal plus delivery fee.
func (o *Order) TotalCost() int64 {
	return o.totalCost
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the identifier of the courier who accepted the order.
// Returns nil while the order is pending.
func (o *Order) Courier() *kernel.UserID {
	return o.courierID
}

// CourierName returns the display name of the accepting courier, empty while
// the order is pending.
func (o *Order) CourierName() string {
	return o.courierName
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Accept claims the order for a courier and moves it to Accepted.
//
// Business rules enforced here:
//   - The courier reference must be valid and carry a display name
//   - A customer may not accept their own order (validation error)
//   - Only a pending order can be accepted; anything else is a conflict,
//     meaning another courier got there first
//
// The persistence layer additionally guards this transition with a conditional
// update so two couriers racing on the same pending order cannot both win.
func (o *Order) Accept(courierID kernel.UserID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	if courierID.IsEqual(o.customerID) {
		return errs.NewValueIsInvalidErrorWithCause("courierId", ErrSelfDelivery)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.courierName = courierName
	return nil
}

// Deliver marks the order as delivered by its assigned courier.
//
// Business rules enforced here:
//   - Only an accepted order can be delivered; a pending or already-delivered
//     order is a conflict (the latter keeps delivery, and therefore the
//     earnings credit, at-most-once)
//   - Only the courier who accepted the order may complete it; anyone else is
//     forbidden
//
// On success the order reaches its terminal Delivered state with deliveredAt
// set to the supplied timestamp.
func (o *Order) Deliver(courierID kernel.UserID, deliveredAt time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewForbiddenErrorWithCause("courierId",
			fmt.Errorf("only the assigned courier may complete order %s", o.id))
	}

	o.status = newStatus
	o.deliveredAt = &deliveredAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UserID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerID = customerID
	o.customerName = customerName
	return nil
}

func (o *Order) setVendor(vendor string) error {
	if vendor == "" {
		return errs.NewValueIsRequiredError("vendor")
	}
	o.vendor = vendor
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("deliveryLocation")
	}
	o.deliveryLocation = location
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
