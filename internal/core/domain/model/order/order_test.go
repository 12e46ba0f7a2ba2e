package order_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/fulfillment"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validComponents(t *testing.T) []pricing.Component {
	t.Helper()
	laptop, err := pricing.NewItem("PROD001", "Laptop", 999.99, 1)
	require.NoError(t, err)
	mouse, err := pricing.NewItem("PROD002", "Mouse", 29.99, 2)
	require.NoError(t, err)
	return []pricing.Component{laptop, mouse}
}

func TestNewOrder(t *testing.T) {
	components := validComponents(t)
	policy := fulfillment.NewStandardPolicy()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "CUST-1", components, policy)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-001001", o.ID())
		assert.Equal(t, "CUST-1", o.CustomerID())
		assert.Equal(t, order.New, o.Status())
		assert.Empty(t, o.TrackingNumber())
		assert.False(t, o.Priority())
		assert.False(t, o.International())
		assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Second)
		assert.Len(t, o.Components(), 2)
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		o, err := order.NewOrder("", "CUST-1", components, policy)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "id")
	})

	t.Run("should fail with empty customer id", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "", components, policy)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerID")
	})

	t.Run("should fail with empty components", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "CUST-1", nil, policy)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "components")
	})

	t.Run("should fail with nil policy", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "CUST-1", components, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "policy")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder("", "", nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "customerID")
		assert.Contains(t, err.Error(), "components")
		assert.Contains(t, err.Error(), "policy")
	})

	t.Run("component list is copied at construction", func(t *testing.T) {
		mutable := validComponents(t)
		o, err := order.NewOrder("ORD-001001", "CUST-1", mutable, policy)
		require.NoError(t, err)

		mutable[0] = nil

		assert.NotNil(t, o.Components()[0])
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_TotalAmount(t *testing.T) {
	t.Run("total is subtotal plus shipping plus fee, recomputed per read", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "CUST-1", validComponents(t), fulfillment.NewExpressPolicy())
		require.NoError(t, err)

		// Subtotal 1059.97; express shipping 0.15*1059.97; fee 9.99.
		assert.InDelta(t, 1059.97, o.Subtotal(), 0.0001)
		assert.InDelta(t, 158.9955, o.ShippingCost(), 0.0001)
		assert.InDelta(t, 9.99, o.ProcessingFee(), 0.0001)
		assert.InDelta(t, 1059.97+158.9955+9.99, o.TotalAmount(), 0.0001)
	})

	t.Run("standard policy over $100 ships free", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "CUST-1", validComponents(t), fulfillment.NewStandardPolicy())
		require.NoError(t, err)

		assert.InDelta(t, 1059.97, o.TotalAmount(), 0.0001)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("ORD-001001", "CUST-1", validComponents(t), fulfillment.NewStandardPolicy())
		require.NoError(t, err)
		return o
	}

	t.Run("full happy path", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Process())
		assert.Equal(t, order.Processing, o.Status())

		require.NoError(t, o.Ship())
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cancel from new", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("ship and deliver fail from new and leave status unchanged", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.Ship(), order.ErrIllegalTransition)
		assert.Equal(t, order.New, o.Status())

		require.ErrorIs(t, o.Deliver(), order.ErrIllegalTransition)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("cancel fails after shipping and status remains shipped", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Process())
		require.NoError(t, o.Ship())

		require.ErrorIs(t, o.Cancel(), order.ErrIllegalTransition)
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("delivered status never regresses", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Process())
		require.NoError(t, o.Ship())
		require.NoError(t, o.Deliver())

		require.NoError(t, o.Process())
		require.NoError(t, o.Ship())
		require.NoError(t, o.Deliver())
		require.ErrorIs(t, o.Cancel(), order.ErrIllegalTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_AssignTrackingNumber(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("ORD-001001", "CUST-1", validComponents(t), fulfillment.NewStandardPolicy())
		require.NoError(t, err)
		return o
	}

	t.Run("assigns once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AssignTrackingNumber("TRACK-00001001"))
		assert.Equal(t, "TRACK-00001001", o.TrackingNumber())
	})

	t.Run("rejects empty tracking number", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.AssignTrackingNumber(""))
		assert.Empty(t, o.TrackingNumber())
	})

	t.Run("rejects second assignment", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AssignTrackingNumber("TRACK-00001001"))

		err := o.AssignTrackingNumber("TRACK-00001002")

		require.ErrorIs(t, err, order.ErrTrackingNumberAlreadyAssigned)
		assert.Equal(t, "TRACK-00001001", o.TrackingNumber())
	})
}

func TestOrder_Flags(t *testing.T) {
	t.Run("priority and international flags are one-way", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "CUST-1", validComponents(t), fulfillment.NewStandardPolicy())
		require.NoError(t, err)

		o.MarkPriority()
		o.MarkInternational()

		assert.True(t, o.Priority())
		assert.True(t, o.International())
	})
}

func TestOrder_String(t *testing.T) {
	t.Run("renders id, status, customer and total", func(t *testing.T) {
		o, err := order.NewOrder("ORD-001001", "CUST-1", validComponents(t), fulfillment.NewStandardPolicy())
		require.NoError(t, err)

		s := o.String()

		assert.Contains(t, s, "Order #ORD-001001")
		assert.Contains(t, s, "Status: NEW")
		assert.Contains(t, s, "Customer: CUST-1")
		assert.Contains(t, s, "$1059.97")
	})
}

func TestOrder_IsEqual(t *testing.T) {
	components := validComponents(t)
	policy := fulfillment.NewStandardPolicy()

	t.Run("orders with same id compare equal", func(t *testing.T) {
		o1, _ := order.NewOrder("ORD-001001", "CUST-1", components, policy)
		o2, _ := order.NewOrder("ORD-001001", "CUST-2", components, policy)

		assert.True(t, o1.IsEqual(o2))
	})

	t.Run("orders with different ids are not equal", func(t *testing.T) {
		o1, _ := order.NewOrder("ORD-001001", "CUST-1", components, policy)
		o2, _ := order.NewOrder("ORD-001002", "CUST-1", components, policy)

		assert.False(t, o1.IsEqual(o2))
		assert.False(t, o1.IsEqual(nil))
	})
}
