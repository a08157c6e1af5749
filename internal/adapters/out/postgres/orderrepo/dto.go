// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The creation timestamp belongs to the persistence layer; GORM fills it on
// insert and the domain never carries it.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	Status       int
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	Items        []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one dish line of an order.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	DishID   uuid.UUID `gorm:"type:uuid"`
	Quantity int
	Status   int
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  item.OrderID().Bytes(),
			DishID:   item.DishID().Bytes(),
			Quantity: item.Quantity(),
			Status:   int(item.Status()),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Status:       int(aggregate.Status()),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// so stored statuses are revalidated against the vocabulary on the way out.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, restaurantID, dto.CustomerName, order.OrderStatus(dto.Status), items)
}

// itemToDomain converts an item row to its domain entity.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, dishID, dto.Quantity, order.ItemStatus(dto.Status))
}
