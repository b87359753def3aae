package queries

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
	"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
)

// GetCourierDeliveriesQuery retrieves the courier's delivery feed: the orders
// the courier has accepted and not yet delivered.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a query for a courier's deliveries.
func NewGetCourierDeliveriesQuery(courierID kernel.UserID) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, err
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier whose deliveries are listed.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UserID {
	return q.courierID
}
