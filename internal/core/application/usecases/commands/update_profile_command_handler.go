package commands

import (
	"context"

	"campuseats/internal/core/domain/model/account"
)

// UpdateProfileCommandHandler handles profile edits by the account owner.
type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
// Loads the account, applies the edit, and persists it. Earnings are not
// touched; the repository's Update writes profile columns only.
func (h UpdateProfileCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProfileCommand,
) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	acc, err := accountRepo.Get(ctx, cmd.UID())
	if err != nil {
		return nil, err
	}

	if err = acc.UpdateProfile(cmd.DisplayName(), cmd.PhotoURL()); err != nil {
		return nil, err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return acc, nil
}
