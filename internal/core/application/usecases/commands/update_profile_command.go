package commands

import (
	"errors"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
	ErrDisplayNameIsRequired = errors.New("display name is required")
)

// UpdateProfileCommand represents an owner's edit of their own profile.
// Only the display name and photo URL are editable; email, UID and earnings
// are not.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	uid         kernel.UserID
	displayName string
	photoURL    string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a profile.
func NewUpdateProfileCommand(uid kernel.UserID, displayName, photoURL string) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		photoURL: photoURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUID(uid),
		cmd.setDisplayName(displayName),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UID returns the identifier of the profile owner.
func (c UpdateProfileCommand) UID() kernel.UserID {
	return c.uid
}

// DisplayName returns the new display name.
func (c UpdateProfileCommand) DisplayName() string {
	return c.displayName
}

// PhotoURL returns the new photo URL, possibly empty to clear it.
func (c UpdateProfileCommand) PhotoURL() string {
	return c.photoURL
}

func (c *UpdateProfileCommand) setUID(uid kernel.UserID) error {
	if err := uid.Validate(); err != nil {
		return err
	}

	c.uid = uid
	return nil
}

func (c *UpdateProfileCommand) setDisplayName(displayName string) error {
	if strings.TrimSpace(displayName) == "" {
		return ErrDisplayNameIsRequired
	}

	c.displayName = displayName
	return nil
}
