package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract the order lifecycle engine
// depends on. The repository is the single source of truth for durable order
// state; the engine owns transition logic only.
type OrderRepository interface {
	// Add persists a new order aggregate, header and item rows together.
	// Atomicity across the header and all items is this method's contract:
	// either every row is inserted or none is.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order's full detail (header plus items) by identifier.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByRestaurant retrieves all orders placed at the given restaurant.
	// A restaurant with no orders yields an empty slice and a nil error;
	// the caller decides whether that is a domain signal.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetItem retrieves a single item under the given order.
	// Returns an ObjectNotFoundError when no such (order, item) pair exists.
	GetItem(ctx context.Context, orderID kernel.UUID, itemID kernel.UUID) (*order.Item, error)

	// UpdateItemStatus writes the item's status and reports the number of
	// rows affected. Zero affected rows on an item that was just observed
	// indicates a store inconsistency and is the caller's concern.
	UpdateItemStatus(ctx context.Context, orderID kernel.UUID, itemID kernel.UUID, status order.ItemStatus) (int64, error)

	// UpdateStatus writes the order's overall status and returns the updated
	// representation as the store sees it.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.OrderStatus) (*order.Order, error)

	// Cancel cancels the whole order when itemID is nil, or only the given
	// item when itemID is present.
	Cancel(ctx context.Context, orderID kernel.UUID, itemID *kernel.UUID) error

	// CancelStaleReceived cancels every order still in the received status
	// whose creation time is before the cutoff. Returns the number of
	// orders cancelled.
	CancelStaleReceived(ctx context.Context, cutoff time.Time) (int64, error)
}
