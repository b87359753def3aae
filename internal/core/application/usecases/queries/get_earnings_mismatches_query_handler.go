package queries

import (
	"context"

	"campuseats/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetEarningsMismatchesQueryHandler cross-checks account earnings against
// delivered orders in the database.
type GetEarningsMismatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetEarningsMismatchesQueryHandler creates a handler for earnings
// reconciliation queries.
func NewGetEarningsMismatchesQueryHandler(db *gorm.DB) GetEarningsMismatchesQueryHandler {
	return GetEarningsMismatchesQueryHandler{db: db}
}

// Handle returns every account whose earnings differ from delivered count
// times the flat delivery fee. An empty slice means the books balance.
func (h GetEarningsMismatchesQueryHandler) Handle(
	ctx context.Context,
	query GetEarningsMismatchesQuery,
) ([]EarningsMismatchResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	mismatches := make([]EarningsMismatchResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.uid,
			a.earnings,
			COUNT(o.id) AS delivered
		FROM accounts a
		LEFT JOIN orders o ON o.courier_id = a.uid AND o.status = ?
		GROUP BY a.uid, a.earnings
		HAVING a.earnings != COUNT(o.id) * ?
		ORDER BY a.uid
	`, order.Delivered.String(), order.FlatDeliveryFee).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp EarningsMismatchResponse

		if err = rows.Scan(&resp.UID, &resp.Earnings, &resp.Delivered); err != nil {
			return nil, err
		}

		resp.Expected = resp.Delivered * order.FlatDeliveryFee
		mismatches = append(mismatches, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mismatches, nil
}
