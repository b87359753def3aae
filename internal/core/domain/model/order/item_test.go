package order_test

import (
	"testing"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("Chips", 20, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Chips", item.Name())
		assert.Equal(t, int64(20), item.Price())
		assert.Equal(t, 2, item.Qty())
		assert.Equal(t, int64(40), item.Total())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewItem("", 20, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewItem("Chips", -1, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem("Chips", 20, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should allow free item", func(t *testing.T) {
		item, err := order.NewItem("Water", 0, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(0), item.Total())
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewItem("", -5, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "item price")
		assert.Contains(t, err.Error(), "item qty")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
