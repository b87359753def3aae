// Package accountrepo provides data transfer objects and mapping functions
// for account persistence.
package accountrepo

import (
	"time"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting account
// aggregates. Earnings are a plain bigint column so they can be incremented
// in SQL without read-modify-write races.
type AccountDTO struct {
	UID         string    `gorm:"type:text;primaryKey"`
	Email       string    `gorm:"type:text;not null"`
	DisplayName string    `gorm:"type:text;not null"`
	PhotoURL    string    `gorm:"type:text"`
	Earnings    int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database
// representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		UID:         aggregate.UID().String(),
		Email:       aggregate.Email(),
		DisplayName: aggregate.DisplayName(),
		PhotoURL:    aggregate.PhotoURL(),
		Earnings:    aggregate.Earnings(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	uid, err := kernel.NewUserID(dto.UID)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		uid,
		dto.Email,
		dto.DisplayName,
		dto.PhotoURL,
		dto.Earnings,
		dto.CreatedAt,
	)
}
