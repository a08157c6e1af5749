package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is one dish-and-quantity line within an order (a "platillo" entry).
//
// Item invariants:
//   - Must have a valid unique identifier and parent order identifier
//   - Must reference a valid dish identifier
//   - Quantity must be a positive integer (>= 1)
//   - Status must be a member of the item status vocabulary
type Item struct {
	id       kernel.UUID
	orderID  kernel.UUID
	dishID   kernel.UUID
	quantity int
	status   ItemStatus

	isConstructed bool
}

// NewItem creates a new Item in the initial "received" status.
// All identifiers must be valid and quantity must be at least 1.
func NewItem(id kernel.UUID, orderID kernel.UUID, dishID kernel.UUID, quantity int) (*Item, error) {
	item := &Item{
		status:        ItemStatusReceived,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setDishID(dishID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its stored status.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	dishID kernel.UUID,
	quantity int,
	status ItemStatus,
) (*Item, error) {
	item, err := NewItem(id, orderID, dishID, quantity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	item.status = status
	return item, nil
}

// Validate ensures the Item was constructed through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the order this item belongs to.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// DishID returns the identifier of the ordered dish.
func (i *Item) DishID() kernel.UUID {
	return i.dishID
}

// Quantity returns how many units of the dish were ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Status returns the current item status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// SetStatus moves the item to the given status. The only rule is vocabulary
// membership; any member may follow any other.
func (i *Item) SetStatus(status ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	i.status = status
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	i.dishID = dishID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
