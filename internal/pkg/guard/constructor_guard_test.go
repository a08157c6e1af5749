package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a guarded value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type dishLine struct {
		dish     string
		quantity int
		guard    guard.ConstructorGuard
	}

	errDishLineNotConstructed := errors.New("dishLine must be created via newDishLine")

	newDishLine := func(dish string, quantity int) (dishLine, error) {
		if dish == "" {
			return dishLine{}, errors.New("dish is required")
		}
		if quantity < 1 {
			return dishLine{}, errors.New("quantity must be at least 1")
		}
		return dishLine{dish: dish, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		line, err := newDishLine("enchiladas", 2)

		require.NoError(t, err)
		require.NoError(t, line.guard.Validate(errDishLineNotConstructed))
		assert.Equal(t, "enchiladas", line.dish)
		assert.Equal(t, 2, line.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var line dishLine

		err := line.guard.Validate(errDishLineNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errDishLineNotConstructed, err)
	})
}
