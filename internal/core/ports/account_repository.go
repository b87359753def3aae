package ports

import (
	"context"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists profile changes to an existing account.
	// Earnings are not written by Update; they change only through
	// CreditEarnings.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its external identifier.
	// Returns errs.ErrObjectNotFound if no such account exists.
	Get(ctx context.Context, uid kernel.UserID) (*account.Account, error)

	// CreditEarnings atomically increments the account's earnings by amount.
	// The increment happens in SQL so concurrent credits never lose updates.
	CreditEarnings(ctx context.Context, uid kernel.UserID, amount int64) error
}
