package accountrepo

import (
	"context"
	"errors"
	"math"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.UID().String(), aggregate)
	return nil
}

// Update persists profile changes to an existing account.
// Writes only the owner-editable columns; earnings change exclusively through
// CreditEarnings.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("uid = ?", dto.UID).
		Updates(map[string]any{
			"display_name": dto.DisplayName,
			"photo_url":    dto.PhotoURL,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", dto.UID)
	}

	r.tracker.TrackAggregate(aggregate.UID().String(), aggregate)
	return nil
}

// Get retrieves an account by its external identifier.
func (r *GormAccountRepository) Get(ctx context.Context, uid kernel.UserID) (*account.Account, error) {
	if err := uid.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "uid = ?", uid.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", uid.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CreditEarnings atomically increments the account's earnings by amount.
// The increment is pushed into SQL so concurrent credits serialize on the row
// instead of losing updates.
func (r *GormAccountRepository) CreditEarnings(ctx context.Context, uid kernel.UserID, amount int64) error {
	if err := uid.Validate(); err != nil {
		return err
	}

	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int64(math.MaxInt64))
	}

	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("uid = ?", uid.String()).
		UpdateColumn("earnings", gorm.Expr("earnings + ?", amount))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", uid.String())
	}

	return nil
}
