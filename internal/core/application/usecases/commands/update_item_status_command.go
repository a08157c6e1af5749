package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
		"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
	)
)

// UpdateItemStatusCommand represents a request to move a single order item
// (platillo line) to a new status. The new status must be a member of the
// item status vocabulary.
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	status  order.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to update an item's status.
// Returns a ValueIsInvalidError when the status is not a vocabulary member.
func NewUpdateItemStatusCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	status order.ItemStatus,
) (UpdateItemStatusCommand, error) {
	command := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
		command.setStatus(status),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (c UpdateItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Status returns the new status to apply.
func (c UpdateItemStatusCommand) Status() order.ItemStatus {
	return c.status
}

func (c *UpdateItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemStatusCommand) setStatus(status order.ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
