package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, orderID kernel.UUID) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), orderID, kernel.NewUUID(), 2)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("creates item in received status", func(t *testing.T) {
		dishID := kernel.NewUUID()
		item, err := order.NewItem(kernel.NewUUID(), orderID, dishID, 3)

		require.NoError(t, err)
		assert.Equal(t, order.ItemStatusReceived, item.Status())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.DishID().IsEqual(dishID))
		assert.True(t, item.OrderID().IsEqual(orderID))
		require.NoError(t, item.Validate())
	})

	t.Run("rejects zero and negative quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), orderID, kernel.NewUUID(), quantity)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects missing dish identifier", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), orderID, kernel.UUID{}, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, orderID, kernel.NewUUID(), 1)
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 1)
		require.Error(t, err)
	})
}

func TestRestoreItem(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("restores stored status", func(t *testing.T) {
		item, err := order.RestoreItem(kernel.NewUUID(), orderID, kernel.NewUUID(), 1, order.ItemStatusReady)

		require.NoError(t, err)
		assert.Equal(t, order.ItemStatusReady, item.Status())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.NewUUID(), orderID, kernel.NewUUID(), 1, order.ItemStatus(42))
		require.Error(t, err)
	})
}

func TestItem_SetStatus(t *testing.T) {
	item := newTestItem(t, kernel.NewUUID())

	t.Run("accepts any vocabulary member from any state", func(t *testing.T) {
		require.NoError(t, item.SetStatus(order.ItemStatusDelivered))
		// no transition graph: backward moves are not rejected
		require.NoError(t, item.SetStatus(order.ItemStatusReceived))
		assert.Equal(t, order.ItemStatusReceived, item.Status())
	})

	t.Run("rejects non-members and leaves status untouched", func(t *testing.T) {
		before := item.Status()
		err := item.SetStatus(order.ItemStatus(42))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, before, item.Status())
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})

	t.Run("nil item fails validation", func(t *testing.T) {
		var item *order.Item
		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in received status", func(t *testing.T) {
		id := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		items := []*order.Item{newTestItem(t, id), newTestItem(t, id)}

		o, err := order.NewOrder(id, restaurantID, "Ana", items)

		require.NoError(t, err)
		assert.Equal(t, order.OrderStatusReceived, o.Status())
		assert.Equal(t, "Ana", o.CustomerName())
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Len(t, o.Items(), 2)
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty item collection", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Ana", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Ana", []*order.Item{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("rejects empty customer name", func(t *testing.T) {
		id := kernel.NewUUID()
		_, err := order.NewOrder(id, kernel.NewUUID(), "", []*order.Item{newTestItem(t, id)})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("restores stored status", func(t *testing.T) {
		o, err := order.RestoreOrder(id, kernel.NewUUID(), "Ana", order.OrderStatusReady, []*order.Item{newTestItem(t, id)})

		require.NoError(t, err)
		assert.Equal(t, order.OrderStatusReady, o.Status())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, kernel.NewUUID(), "Ana", order.OrderStatus(42), []*order.Item{newTestItem(t, id)})
		require.Error(t, err)
	})
}

func TestOrder_SetStatus(t *testing.T) {
	id := kernel.NewUUID()
	o, err := order.NewOrder(id, kernel.NewUUID(), "Ana", []*order.Item{newTestItem(t, id)})
	require.NoError(t, err)

	t.Run("accepts any vocabulary member from any state", func(t *testing.T) {
		require.NoError(t, o.SetStatus(order.OrderStatusDelivered))
		require.NoError(t, o.SetStatus(order.OrderStatusReceived))
	})

	t.Run("rejects non-members", func(t *testing.T) {
		err := o.SetStatus(order.OrderStatusUnknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Item(t *testing.T) {
	id := kernel.NewUUID()
	first := newTestItem(t, id)
	second := newTestItem(t, id)
	o, err := order.NewOrder(id, kernel.NewUUID(), "Ana", []*order.Item{first, second})
	require.NoError(t, err)

	t.Run("finds item by id", func(t *testing.T) {
		found, ok := o.Item(second.ID())
		require.True(t, ok)
		assert.True(t, found.ID().IsEqual(second.ID()))
	})

	t.Run("returns false for unknown item", func(t *testing.T) {
		_, ok := o.Item(kernel.NewUUID())
		assert.False(t, ok)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
