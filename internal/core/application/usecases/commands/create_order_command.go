package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// NewOrderItem is one requested dish line in a create-order request.
// Both fields are validated by NewCreateOrderCommand; the struct itself
// carries raw caller input.
type NewOrderItem struct {
	DishID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a request to place a new order for a
// restaurant. The item collection must be non-empty and every item must
// carry a dish identifier and a positive quantity; validation fails fast
// on the first violation found, before any collaborator is invoked.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	customerName string
	items        []NewOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Returns an error if any identifier is invalid, the customer name is empty,
// the item collection is empty, or any item is missing its dish identifier
// or has a non-positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	customerName string,
	items []NewOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setCustomerName(customerName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := orderCommand.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order is placed at.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// CustomerName returns the name the order is placed under.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the validated dish lines of the request.
func (c CreateOrderCommand) Items() []NewOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

// setItems validates the item collection item by item, failing fast on the
// first violation found.
func (c *CreateOrderCommand) setItems(items []NewOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.DishID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(
				fmt.Sprintf("items[%d].dishId", i), err)
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = items
	return nil
}
