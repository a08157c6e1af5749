package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, id kernel.UUID, status order.OrderStatus) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), id, kernel.NewUUID(), 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, kernel.NewUUID(), "Ana", status, []*order.Item{item})
	require.NoError(t, err)
	return o
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("rejects non-vocabulary status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.OrderStatusUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accepts every vocabulary member", func(t *testing.T) {
		for _, status := range order.AllOrderStatuses() {
			_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), status)
			require.NoError(t, err, status.String())
		}
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.OrderStatusReady)
	require.NoError(t, err)

	updated := restoredOrder(t, orderID, order.OrderStatusReady)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, orderID, order.OrderStatusReady).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.IsEqual(updated))
	assert.Equal(t, order.OrderStatusReady, result.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, commands.UpdateOrderStatusCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.OrderStatusDelivered)
	require.NoError(t, err)

	repoErr := errors.New("write rejected")
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, orderID, order.OrderStatusDelivered).Return(nil, repoErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, repoErr)
	uow.AssertNotCalled(t, "Commit", ctx)
}
