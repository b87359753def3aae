package commands

import (
	"context"
	"errors"
	"time"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/pkg/errs"
)

// RegisterAccountCommandHandler handles account registration on sign-in.
// Creates the account on first sign-in; subsequent sign-ins are lookups.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Returns the existing account when one is already registered for the UID,
// otherwise creates it with zero earnings.
func (h RegisterAccountCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterAccountCommand,
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

	existing, err := accountRepo.Get(ctx, cmd.UID())
	if err == nil {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	registered, err := account.NewAccount(
		cmd.UID(),
		cmd.Email(),
		cmd.DisplayName(),
		cmd.PhotoURL(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = accountRepo.Add(ctx, registered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return registered, nil
}
