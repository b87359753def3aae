package order

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Delivered
//
// Each transition happens exactly once: an order is accepted by exactly one
// courier, and a delivered order is terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are visible to couriers on the pending feed.
	Pending

	// Accepted indicates the order has been claimed by a courier.
	// Exactly one courier ever holds an order; there is no reassignment.
	Accepted

	// Delivered indicates the order has been handed over to the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
	}
}

// StatusFromString parses a persisted status string back into a Status.
// Returns an error for anything other than the three valid lifecycle states.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Accepted, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: pending orders must not have a courier, accepted and
// delivered orders must.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Accepted && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Accepted || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to Accepted.
//
// The only valid transition is Pending -> Accepted. Any other current status
// means another courier already claimed the order (or it has been delivered),
// which is reported as a conflict so callers can refresh the pending feed
// instead of retrying.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"status", s.String(),
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid transition is Accepted -> Delivered. Delivering a pending or
// already-delivered order is a conflict; the second delivery of the same order
// is rejected here, which keeps the earnings credit at-most-once.
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return 0, errs.NewConflictErrorWithCause(
			"status", s.String(),
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
