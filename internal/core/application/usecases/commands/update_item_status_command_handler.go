package commands

import (
	"context"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// UpdateItemStatusCommandHandler handles status changes on a single order item.
//
// The handler confirms the item exists under the order before writing, so a
// missing (order, item) pair surfaces as NotFound. A write that affects zero
// rows after a successful lookup indicates a store inconsistency and is
// reported as an ApplicationError (server-side failure), not a client error.
type UpdateItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemStatusCommandHandler creates a handler for item status updates.
func NewUpdateItemStatusCommandHandler(uowFactory OrderUoWFactory) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item status update. Success returns nil with no
// resource representation echoed back.
func (h *UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	if _, err := repo.GetItem(ctx, cmd.OrderID(), cmd.ItemID()); err != nil {
		return err
	}

	affected, err := repo.UpdateItemStatus(ctx, cmd.OrderID(), cmd.ItemID(), cmd.Status())
	if err != nil {
		return err
	}

	if affected == 0 {
		return errs.NewApplicationError(fmt.Sprintf(
			"platillo %s of order %s was found but the status write affected no rows",
			cmd.ItemID(), cmd.OrderID()))
	}

	return uow.Commit(ctx)
}
