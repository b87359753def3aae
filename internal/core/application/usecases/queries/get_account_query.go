package queries

import (
	"errors"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery retrieves a single account profile with its live earnings
// total.
type GetAccountQuery struct {
	uid kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query for an account profile.
func NewGetAccountQuery(uid kernel.UserID) (GetAccountQuery, error) {
	if err := uid.Validate(); err != nil {
		return GetAccountQuery{}, err
	}

	return GetAccountQuery{
		uid:   uid,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// UID returns the identifier of the requested account.
func (q GetAccountQuery) UID() kernel.UserID {
	return q.uid
}

// AccountResponse is the read model of an account profile.
type AccountResponse struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	Earnings    int64     `json:"earnings"`
	CreatedAt   time.Time `json:"createdAt"`
}
