package queries

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var ErrGetEarningsMismatchesQueryIsNotConstructed = errors.New(
	"GetEarningsMismatchesQuery must be created via NewGetEarningsMismatchesQuery constructor",
)

// GetEarningsMismatchesQuery finds accounts whose stored earnings disagree
// with their delivered-order count times the flat fee. A non-empty result
// means the deliver-and-credit transaction was somehow split, which should
// never happen.
type GetEarningsMismatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEarningsMismatchesQuery creates a reconciliation query.
// This is a parameterless query that scans all accounts.
func NewGetEarningsMismatchesQuery() GetEarningsMismatchesQuery {
	return GetEarningsMismatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEarningsMismatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsMismatchesQueryIsNotConstructed)
}

// EarningsMismatchResponse reports one account whose earnings are out of sync
// with its delivery history.
type EarningsMismatchResponse struct {
	UID       string `json:"uid"`
	Earnings  int64  `json:"earnings"`
	Expected  int64  `json:"expected"`
	Delivered int64  `json:"delivered"`
}
