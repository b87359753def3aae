// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read denormalized rows straight
// from the database, shaping them into JSON-ready responses for the HTTP
// layer and the live feeds.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ItemResponse is one cart line of an order as shown to clients.
type ItemResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

// OrderResponse is the read model of an order: everything a feed or detail
// view needs, including denormalized participant names and fixed pricing.
type OrderResponse struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customerId"`
	CustomerName     string         `json:"customerName"`
	Vendor           string         `json:"vendor"`
	Items            []ItemResponse `json:"items"`
	DeliveryLocation string         `json:"deliveryLocation"`
	Subtotal         int64          `json:"subtotal"`
	DeliveryFee      int64          `json:"deliveryFee"`
	TotalCost        int64          `json:"totalCost"`
	Status           string         `json:"status"`
	CourierID        string         `json:"courierId,omitempty"`
	CourierName      string         `json:"courierName,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	DeliveredAt      *time.Time     `json:"deliveredAt,omitempty"`
}

// fetchOrders runs the shared order read query with the given WHERE clause
// and loads each order's items in a second query, newest orders first.
func fetchOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_name,
			vendor,
			delivery_location,
			subtotal,
			delivery_fee,
			total_cost,
			status,
			courier_id,
			courier_name,
			created_at,
			delivered_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC, id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        OrderResponse
			courierID   *string
			courierName *string
		)

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.CustomerName,
			&resp.Vendor,
			&resp.DeliveryLocation,
			&resp.Subtotal,
			&resp.DeliveryFee,
			&resp.TotalCost,
			&resp.Status,
			&courierID,
			&courierName,
			&resp.CreatedAt,
			&resp.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if courierID != nil {
			resp.CourierID = *courierID
		}
		if courierName != nil {
			resp.CourierName = *courierName
		}

		resp.Items = make([]ItemResponse, 0)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the cart lines for the given orders in one query and
// distributes them by order ID, preserving cart position.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			price,
			qty
		FROM order_items
		WHERE order_id IN (?)
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			item    ItemResponse
		)

		if err = rows.Scan(&orderID, &item.Name, &item.Price, &item.Qty); err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
