package queries

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// GetOrderDetailQueryHandler retrieves an order's full detail.
//
// Any repository failure, including a missing order, is wrapped into an
// ApplicationError annotated with the original message; this layer does not
// distinguish "order missing" from "storage error".
type GetOrderDetailQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderDetailQueryHandler creates a handler for order detail lookups.
func NewGetOrderDetailQueryHandler(repo ports.OrderRepository) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{repo: repo}
}

// Handle executes the query and returns the order with its items.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	detail, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return nil, errs.NewApplicationErrorWithCause(
			fmt.Sprintf("failed to get detail of order %s", query.OrderID()), err)
	}

	return detail, nil
}
