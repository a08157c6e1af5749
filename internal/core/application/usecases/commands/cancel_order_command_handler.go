package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"restaurant/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order- and item-level cancellation.
// Cancellation is delegated to the repository; whether the item belongs to
// the order is enforced there, not here. Any repository failure surfaces as
// an ApplicationError carrying the original message and the collaborator's
// status code, defaulting to 500 when none is supplied.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. The resulting error message names
// whether the order or the platillo (item) failed to cancel.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err := uow.OrderRepository().Cancel(ctx, cmd.OrderID(), cmd.ItemID()); err != nil {
		return wrapCancelError(cmd, err)
	}

	return uow.Commit(ctx)
}

// wrapCancelError converts a repository failure into an ApplicationError,
// reusing the collaborator's status code when it supplied one.
func wrapCancelError(cmd CancelOrderCommand, err error) error {
	code := http.StatusInternalServerError
	var appErr *errs.ApplicationError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		code = appErr.Code
	}

	if itemID := cmd.ItemID(); itemID != nil {
		return errs.NewApplicationErrorWithCode(
			fmt.Sprintf("failed to cancel platillo %s of order %s", itemID, cmd.OrderID()), code, err)
	}

	return errs.NewApplicationErrorWithCode(
		fmt.Sprintf("failed to cancel order %s", cmd.OrderID()), code, err)
}
