package queries

import (
	"context"

	"campuseats/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler reads pending orders older than a cutoff
// from the database.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale order
// queries.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle returns all Pending orders created before the cutoff.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db,
		"status = ? AND created_at < ?",
		order.Pending.String(), query.Cutoff(),
	)
}
