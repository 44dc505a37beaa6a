package order_test

import (
	"strings"
	"testing"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validOwner := kernel.NewUUID()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validOwner, "Central warehouse", "Steel pipes", "12 Harbor Rd", now)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.OwnerID().IsEqual(validOwner))
		assert.Equal(t, "Central warehouse", o.Warehouse())
		assert.Equal(t, "Steel pipes", o.Goods())
		assert.Equal(t, "12 Harbor Rd", o.DeliveryAddress())
		assert.Equal(t, order.Active, o.Status())
		assert.Nil(t, o.Selection())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validOwner, "W", "G", "A", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		var invalidOwner kernel.UUID

		o, err := order.NewOrder(validID, invalidOwner, "W", "G", "A", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "ownerID")
	})

	t.Run("should fail with empty text fields", func(t *testing.T) {
		o, err := order.NewOrder(validID, validOwner, "", "  ", "", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "warehouse")
		assert.Contains(t, err.Error(), "goods")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should fail with overlong text field", func(t *testing.T) {
		long := strings.Repeat("x", order.DetailMaxLength+1)

		o, err := order.NewOrder(validID, validOwner, long, "G", "A", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "warehouse")
	})
}

func TestOrder_UpdateDetails(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Old warehouse", "Old goods", "Old address", now)
		require.NoError(t, err)
		return o
	}

	t.Run("should update only supplied fields", func(t *testing.T) {
		o := newOrder(t)
		warehouse := "New warehouse"

		err := o.UpdateDetails(&warehouse, nil, nil, later)

		require.NoError(t, err)
		assert.Equal(t, "New warehouse", o.Warehouse())
		assert.Equal(t, "Old goods", o.Goods())
		assert.Equal(t, "Old address", o.DeliveryAddress())
		assert.Equal(t, later, o.UpdatedAt())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should update all fields at once", func(t *testing.T) {
		o := newOrder(t)
		warehouse, goods, address := "W2", "G2", "A2"

		err := o.UpdateDetails(&warehouse, &goods, &address, later)

		require.NoError(t, err)
		assert.Equal(t, "W2", o.Warehouse())
		assert.Equal(t, "G2", o.Goods())
		assert.Equal(t, "A2", o.DeliveryAddress())
	})

	t.Run("should reject empty supplied field and keep state", func(t *testing.T) {
		o := newOrder(t)
		empty := ""

		err := o.UpdateDetails(nil, &empty, nil, later)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "goods")
		assert.Equal(t, "Old goods", o.Goods())
	})

	t.Run("should fail on closed order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Close(later))
		warehouse := "Too late"

		err := o.UpdateDetails(&warehouse, nil, nil, later)

		require.ErrorIs(t, err, order.ErrOrderClosed)
		assert.Equal(t, "Old warehouse", o.Warehouse())
	})
}

func TestOrder_Close(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	t.Run("should close active order without selection", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A", now)
		require.NoError(t, err)

		err = o.Close(later)

		require.NoError(t, err)
		assert.Equal(t, order.Closed, o.Status())
		assert.Nil(t, o.Selection())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should fail closing an already closed order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A", now)
		require.NoError(t, err)
		require.NoError(t, o.Close(later))

		err = o.Close(later.Add(time.Minute))

		require.ErrorIs(t, err, order.ErrOrderClosed)
	})
}

func TestOrder_SelectWinner(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	price, _ := kernel.NewPrice(10000)

	t.Run("should close the order and record the selection", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A", now)
		require.NoError(t, err)

		err = o.SelectWinner("fast-freight", price, later)

		require.NoError(t, err)
		assert.Equal(t, order.Closed, o.Status())
		require.NotNil(t, o.Selection())
		assert.Equal(t, "fast-freight", o.Selection().Provider)
		assert.True(t, o.Selection().Price.IsEqual(price))
		assert.Equal(t, later, o.Selection().At)
	})

	t.Run("should fail with empty provider", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A", now)
		require.NoError(t, err)

		err = o.SelectWinner("", price, later)

		require.Error(t, err)
		assert.Equal(t, order.Active, o.Status())
	})

	t.Run("should fail with invalid price", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A", now)
		require.NoError(t, err)
		var invalidPrice kernel.Price

		err = o.SelectWinner("fast-freight", invalidPrice, later)

		require.Error(t, err)
		assert.Equal(t, order.Active, o.Status())
		assert.Nil(t, o.Selection())
	})

	t.Run("should fail on closed order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A", now)
		require.NoError(t, err)
		require.NoError(t, o.Close(later))

		err = o.SelectWinner("fast-freight", price, later.Add(time.Minute))

		require.ErrorIs(t, err, order.ErrOrderClosed)
		assert.Nil(t, o.Selection())
	})

	t.Run("selection always implies closed status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A", now)
		require.NoError(t, err)
		require.NoError(t, o.SelectWinner("fast-freight", price, later))

		if o.Selection() != nil {
			assert.Equal(t, order.Closed, o.Status())
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	price, _ := kernel.NewPrice(10000)

	t.Run("should restore active order", func(t *testing.T) {
		id, owner := kernel.NewUUID(), kernel.NewUUID()

		o, err := order.RestoreOrder(id, owner, "W", "G", "A", order.Active, nil, now, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Active, o.Status())
	})

	t.Run("should restore closed order with selection", func(t *testing.T) {
		selection := &order.Selection{Provider: "fast-freight", Price: price, At: now}

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A",
			order.Closed, selection, now, now)

		require.NoError(t, err)
		require.NotNil(t, o.Selection())
		assert.Equal(t, "fast-freight", o.Selection().Provider)
	})

	t.Run("should reject selection on active order", func(t *testing.T) {
		selection := &order.Selection{Provider: "fast-freight", Price: price, At: now}

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A",
			order.Active, selection, now, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject partial selection", func(t *testing.T) {
		selection := &order.Selection{Provider: "fast-freight"}

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A",
			order.Closed, selection, now, now)

		require.ErrorIs(t, err, order.ErrSelectionIncomplete)
		assert.Nil(t, o)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "W", "G", "A",
			order.Unknown, nil, now, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
