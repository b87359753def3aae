package queries

import (
	"context"

	"campuseats/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierDeliveriesQueryHandler reads a courier's active deliveries from
// the database.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for the delivery feed.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle returns the courier's Accepted orders, newest first. An order leaves
// the feed the moment it is marked Delivered.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db,
		"courier_id = ? AND status = ?",
		query.CourierID().String(), order.Accepted.String(),
	)
}
