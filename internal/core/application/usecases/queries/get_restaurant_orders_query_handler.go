package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// GetRestaurantOrdersQueryHandler retrieves the orders of a restaurant.
//
// An empty result is reported as an ObjectNotFoundError rather than an empty
// list. This conflates "no orders yet" with a missing resource; callers must
// treat it as a domain signal, not a system fault. The repository itself
// returns an empty slice, so the conflation lives only here.
type GetRestaurantOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order listings.
func NewGetRestaurantOrdersQueryHandler(repo ports.OrderRepository) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{repo: repo}
}

// Handle executes the query and returns all orders for the restaurant.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.GetAllByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("restaurantId", query.RestaurantID().String())
	}

	return orders, nil
}
