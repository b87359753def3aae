// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"sort"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string form so the rows read naturally in SQL
// and in the feed queries. Pricing columns are denormalized copies of what the
// aggregate computed at placement.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       string    `gorm:"type:text;not null;index"`
	CustomerName     string    `gorm:"type:text;not null"`
	Vendor           string    `gorm:"type:text;not null"`
	DeliveryLocation string    `gorm:"type:text;not null"`
	Subtotal         int64     `gorm:"not null"`
	DeliveryFee      int64     `gorm:"not null"`
	TotalCost        int64     `gorm:"not null"`
	Status           string    `gorm:"type:text;not null;index"`
	CourierID        *string   `gorm:"type:text;index"`
	CourierName      *string   `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
	DeliveredAt      *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one cart line of an order. Position preserves the
// cart ordering chosen by the customer.
type OrderItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Name     string    `gorm:"type:text;not null"`
	Price    int64     `gorm:"not null"`
	Qty      int       `gorm:"not null"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID, courierName *string
	if id := aggregate.Courier(); id != nil {
		raw := id.String()
		courierID = &raw
		name := aggregate.CourierName()
		courierName = &name
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			Position: i,
			Name:     item.Name(),
			Price:    item.Price(),
			Qty:      item.Qty(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.Customer().String(),
		CustomerName:     aggregate.CustomerName(),
		Vendor:           aggregate.Vendor(),
		DeliveryLocation: aggregate.DeliveryLocation(),
		Subtotal:         aggregate.Subtotal(),
		DeliveryFee:      aggregate.DeliveryFee(),
		TotalCost:        aggregate.TotalCost(),
		Status:           aggregate.Status().String(),
		CourierID:        courierID,
		CourierName:      courierName,
		CreatedAt:        aggregate.CreatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		Items:            itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the stored invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewUserID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var (
		courierID   *kernel.UserID
		courierName string
	)
	if dto.CourierID != nil {
		cID, courierErr := kernel.NewUserID(*dto.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}
	if dto.CourierName != nil {
		courierName = *dto.CourierName
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Price, itemDTO.Qty)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		dto.Vendor,
		items,
		dto.DeliveryLocation,
		dto.Subtotal,
		dto.DeliveryFee,
		dto.TotalCost,
		status,
		courierID,
		courierName,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
