package queries

import (
	"errors"
	"time"

	"campuseats/internal/pkg/guard"
)

var (
	ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
		"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff must not be zero")
)

// GetStalePendingOrdersQuery retrieves pending orders that nobody accepted
// before the cutoff. Used by the monitoring job to surface orders that are
// going cold.
type GetStalePendingOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders created
// before the cutoff.
func NewGetStalePendingOrdersQuery(cutoff time.Time) (GetStalePendingOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStalePendingOrdersQuery{}, ErrCutoffIsRequired
	}

	return GetStalePendingOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// Cutoff returns the creation-time threshold.
func (q GetStalePendingOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}
