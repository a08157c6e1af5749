package order

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for a customer's placed request (a "pedido").
// It carries an overall status and an ordered collection of items, each with
// its own status.
//
// Order invariants:
//   - Must have a valid unique identifier and restaurant identifier
//   - Must have a non-empty customer name
//   - Must contain at least one item at creation time
//   - Status must always be a member of the order status vocabulary
//
// The creation timestamp is owned by the persistence layer and is not part
// of the aggregate.
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	customerName string
	status       OrderStatus
	items        []*Item

	isConstructed bool
}

// NewOrder creates a new Order in the initial "received" status.
// The items collection must contain at least one valid item; validation
// fails fast on the first invalid value encountered.
func NewOrder(id kernel.UUID, restaurantID kernel.UUID, customerName string, items []*Item) (*Order, error) {
	order := &Order{
		status:        OrderStatusReceived,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	if err := order.setItems(items); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its stored status.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	customerName string,
	status OrderStatus,
	items []*Item,
) (*Order, error) {
	order, err := NewOrder(id, restaurantID, customerName, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order was constructed through a factory function.
// Call this when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant the order belongs to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current overall status of the order.
func (o *Order) Status() OrderStatus {
	return o.status
}

// Items returns the order's line items in their original order.
func (o *Order) Items() []*Item {
	return o.items
}

// Item looks up a line item by its identifier.
// Returns nil and false when no such item exists on this order.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

// SetStatus moves the order to the given status. The only rule is vocabulary
// membership; any member may follow any other.
func (o *Order) SetStatus(status OrderStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
