package services

import (
	"errors"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/order"
)

// ErrOrderNotDelivered is returned when an earnings credit is requested for an
// order that has not reached the Delivered state.
var ErrOrderNotDelivered = errors.New("order is not delivered")

// ErrCourierMismatch is returned when the account being credited is not the
// courier bound to the delivered order.
var ErrCourierMismatch = errors.New("account is not the courier of the order")

// EarningsLedger is a domain service that credits courier earnings for
// completed deliveries.
//
// Business rules:
//   - Only delivered orders produce earnings
//   - The credit goes to the courier bound to the order, nobody else
//   - The amount is always the order's delivery fee, never the subtotal
type EarningsLedger struct{}

// NewEarningsLedger creates a new EarningsLedger instance.
func NewEarningsLedger() EarningsLedger {
	return EarningsLedger{}
}

// CreditDelivery credits the order's delivery fee to the courier's account.
// Returns the credited amount so callers can mirror the increment in storage.
func (l EarningsLedger) CreditDelivery(o *order.Order, courier *account.Account) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	if err := courier.Validate(); err != nil {
		return 0, err
	}

	if o.Status() != order.Delivered {
		return 0, ErrOrderNotDelivered
	}

	if o.Courier() == nil || !o.Courier().IsEqual(courier.UID()) {
		return 0, ErrCourierMismatch
	}

	fee := o.DeliveryFee()
	if err := courier.Credit(fee); err != nil {
		return 0, err
	}

	return fee, nil
}
