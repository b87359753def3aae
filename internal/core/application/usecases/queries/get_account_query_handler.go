package queries

import (
	"context"
	"database/sql"
	"errors"

	"campuseats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAccountQueryHandler reads an account profile from the database.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for account profile queries.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle returns the account's profile and earnings.
// Returns errs.ErrObjectNotFound when no account is registered for the UID.
func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	var (
		resp     AccountResponse
		photoURL *string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			uid,
			email,
			display_name,
			photo_url,
			earnings,
			created_at
		FROM accounts
		WHERE uid = ?
	`, query.UID().String()).Row()

	err := row.Scan(
		&resp.UID,
		&resp.Email,
		&resp.DisplayName,
		&photoURL,
		&resp.Earnings,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AccountResponse{}, errs.NewObjectNotFoundError("account", query.UID())
	}
	if err != nil {
		return AccountResponse{}, err
	}

	if photoURL != nil {
		resp.PhotoURL = *photoURL
	}

	return resp, nil
}
