package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel an order, or a single
// item within it. The scope is chosen purely by the presence of the item
// identifier: nil cancels the whole order, non-nil cancels only that item.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command.
// Pass a nil itemID to cancel the whole order.
func NewCancelOrderCommand(orderID kernel.UUID, itemID *kernel.UUID) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	if err := command.setItemID(itemID); err != nil {
		return CancelOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to cancel, or nil when the
// whole order is the target.
func (c CancelOrderCommand) ItemID() *kernel.UUID {
	return c.itemID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setItemID(itemID *kernel.UUID) error {
	if itemID != nil {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	c.itemID = itemID
	return nil
}
