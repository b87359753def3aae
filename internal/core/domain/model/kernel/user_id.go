package kernel

import (
	"strings"

	"campuseats/internal/pkg/errs"
)

// ErrUserIDIsNotConstructed indicates that a UserID was not properly initialized
// through the NewUserID constructor. Returned when validating a zero-value UserID.
var ErrUserIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UserID must be created via NewUserID constructor")

// UserID is a value object that represents the identifier of a user account.
// User identifiers are issued by the external identity provider and are treated
// as opaque non-empty strings; campuseats never mints them itself.
//
// The zero value of UserID is invalid and must be constructed via NewUserID.
// UserID is immutable and safe for concurrent use.
type UserID struct {
	id string
}

// NewUserID creates a UserID from its external string representation.
// The identifier must be non-blank; surrounding whitespace is rejected rather
// than trimmed so the stored value always matches what the identity provider
// issued.
func NewUserID(id string) (UserID, error) {
	if id == "" || strings.TrimSpace(id) != id || strings.TrimSpace(id) == "" {
		return UserID{}, errs.NewValueIsInvalidError("userId")
	}
	return UserID{id: id}, nil
}

// String returns the external string representation of the user identifier.
func (u UserID) String() string {
	return u.id
}

// IsEqual compares two user identifiers for equality.
func (u UserID) IsEqual(other UserID) bool {
	return u.id == other.id
}

// Validate checks if the UserID is properly constructed.
// Returns ErrUserIDIsNotConstructed for the zero value.
func (u UserID) Validate() error {
	if u.id == "" {
		return ErrUserIDIsNotConstructed
	}
	return nil
}
