package queries

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves the courier feed: all orders still awaiting
// a courier, minus the viewer's own orders since self-delivery is forbidden.
type GetPendingOrdersQuery struct {
	viewer kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the available-orders feed as
// seen by the given viewer.
func NewGetPendingOrdersQuery(viewer kernel.UserID) (GetPendingOrdersQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return GetPendingOrdersQuery{
		viewer: viewer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// Viewer returns the identifier of the courier browsing the feed.
func (q GetPendingOrdersQuery) Viewer() kernel.UserID {
	return q.viewer
}
