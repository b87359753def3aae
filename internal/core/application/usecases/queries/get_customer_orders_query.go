package queries

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the customer feed: every order the
// customer has placed, across all statuses.
type GetCustomerOrdersQuery struct {
	customerID kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's own orders.
func NewGetCustomerOrdersQuery(customerID kernel.UserID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UserID {
	return q.customerID
}
