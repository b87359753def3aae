package commands

import (
	"errors"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrEmailIsInvalid = errors.New("email is invalid")
)

// RegisterAccountCommand represents a sign-in by an externally authenticated
// user. Registration is idempotent: the first sign-in creates the account,
// later sign-ins return the existing one untouched.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	uid         kernel.UserID
	email       string
	displayName string
	photoURL    string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register (or look up) an
// account. The display name and photo URL come from the identity provider and
// may be empty; the aggregate fills in the display name default.
func NewRegisterAccountCommand(
	uid kernel.UserID,
	email, displayName, photoURL string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		displayName: displayName,
		photoURL:    photoURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUID(uid),
		cmd.setEmail(email),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// UID returns the externally issued user identifier.
func (c RegisterAccountCommand) UID() kernel.UserID {
	return c.uid
}

// Email returns the authenticated email address.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// DisplayName returns the provider-supplied display name, possibly empty.
func (c RegisterAccountCommand) DisplayName() string {
	return c.displayName
}

// PhotoURL returns the provider-supplied photo URL, possibly empty.
func (c RegisterAccountCommand) PhotoURL() string {
	return c.photoURL
}

func (c *RegisterAccountCommand) setUID(uid kernel.UserID) error {
	if err := uid.Validate(); err != nil {
		return err
	}

	c.uid = uid
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}
