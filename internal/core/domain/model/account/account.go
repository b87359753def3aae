package account

import (
	"errors"
	"math"
	"strings"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount or RestoreAccount factory methods.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account represents a user of the campuseats application. The same account
// acts as a customer when placing orders and as a courier when delivering them.
//
// Account follows these invariants:
//   - The identifier is issued externally and never changes
//   - The display name is never empty (it defaults to the email local part)
//   - Earnings are non-negative and only ever increase, by exactly the
//     delivery fee of a completed delivery, through the earnings ledger
type Account struct {
	uid kernel.UserID

	email       string
	displayName string
	photoURL    string

	earnings  int64
	createdAt time.Time

	isConstructed bool
}

// NewAccount registers a new account on first authentication.
// Earnings start at zero and createdAt is set to now. When the identity
// provider supplies no display name, the local part of the email address is
// used, matching what users see elsewhere in the product.
func NewAccount(uid kernel.UserID, email, displayName, photoURL string, now time.Time) (*Account, error) {
	acc := &Account{
		photoURL:      photoURL,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		acc.setUID(uid),
		acc.setEmail(email),
	); err != nil {
		return nil, err
	}

	if displayName == "" {
		displayName = localPart(acc.email)
	}
	if err := acc.setDisplayName(displayName); err != nil {
		return nil, err
	}

	return acc, nil
}

// RestoreAccount reconstructs an account from persistence.
// Stored earnings must be non-negative; a negative value indicates corruption
// and is rejected at the boundary.
func RestoreAccount(
	uid kernel.UserID,
	email, displayName, photoURL string,
	earnings int64,
	createdAt time.Time,
) (*Account, error) {
	acc := &Account{
		photoURL:      photoURL,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		acc.setUID(uid),
		acc.setEmail(email),
		acc.setDisplayName(displayName),
	); err != nil {
		return nil, err
	}

	if earnings < 0 {
		return nil, errs.NewValueIsOutOfRangeError("earnings", earnings, 0, int64(math.MaxInt64))
	}
	acc.earnings = earnings

	return acc, nil
}

// Validate ensures the Account instance was properly constructed through a
// factory method.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}

	return nil
}

// IsEqual compares two accounts by their identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.uid.IsEqual(other.uid)
}

// UID returns the externally issued account identifier.
func (a *Account) UID() kernel.UserID {
	return a.uid
}

// Email returns the account's email address.
func (a *Account) Email() string {
	return a.email
}

// DisplayName returns the account's display name. Never empty.
func (a *Account) DisplayName() string {
	return a.displayName
}

// PhotoURL returns the profile photo URL, possibly empty.
func (a *Account) PhotoURL() string {
	return a.photoURL
}

// Earnings returns the cumulative courier earnings in whole currency units.
func (a *Account) Earnings() int64 {
	return a.earnings
}

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdateProfile changes the owner-editable profile attributes.
// The display name is required; the photo URL may be cleared.
func (a *Account) UpdateProfile(displayName, photoURL string) error {
	if err := a.setDisplayName(displayName); err != nil {
		return err
	}
	a.photoURL = photoURL
	return nil
}

// Credit increases the account's earnings by the given amount.
// The amount must be positive; earnings never decrease. Called only by the
// earnings ledger when a delivery completes.
func (a *Account) Credit(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int64(math.MaxInt64))
	}
	a.earnings += amount
	return nil
}

func (a *Account) setUID(uid kernel.UserID) error {
	if err := uid.Validate(); err != nil {
		return err
	}
	a.uid = uid
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setDisplayName(displayName string) error {
	if strings.TrimSpace(displayName) == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	a.displayName = displayName
	return nil
}

// localPart extracts the part of an email address before the '@'.
func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
