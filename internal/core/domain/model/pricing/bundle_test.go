package pricing_test

import (
	"testing"

	"orderflow/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID, name string, unitPrice float64, quantity int) *pricing.Item {
	t.Helper()
	item, err := pricing.NewItem(productID, name, unitPrice, quantity)
	require.NoError(t, err)
	return item
}

func TestNewBundle(t *testing.T) {
	t.Run("should create valid bundle", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Starter Kit", 0.1)

		require.NoError(t, err)
		assert.NotNil(t, bundle)
		require.NoError(t, bundle.Validate())
		assert.Equal(t, "Starter Kit", bundle.Name())
		assert.InDelta(t, 0.1, bundle.Discount(), 0.0001)
		assert.True(t, bundle.IsBundle())
		assert.Equal(t, 1, bundle.Quantity())
		assert.Empty(t, bundle.Children())
	})

	t.Run("should create bundle without discount", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Plain Bundle", 0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, bundle.Discount(), 0.0001)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		bundle, err := pricing.NewBundle("", 0.1)

		require.Error(t, err)
		assert.Nil(t, bundle)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with negative discount", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", -0.1)

		require.Error(t, err)
		assert.Nil(t, bundle)
		assert.Contains(t, err.Error(), "discount")
	})

	t.Run("should fail with discount of one or more", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 1.0)

		require.Error(t, err)
		assert.Nil(t, bundle)
		assert.Contains(t, err.Error(), "discount")
	})
}

func TestBundle_TotalPrice(t *testing.T) {
	t.Run("empty bundle totals zero", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Empty", 0.5)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, bundle.TotalPrice(), 0.0001)
	})

	t.Run("discount applies to children subtotal", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0.05)
		require.NoError(t, err)

		bundle.Add(mustItem(t, "PROD001", "Keyboard", 60, 1))
		bundle.Add(mustItem(t, "PROD002", "Mouse", 20, 2))

		// (60 + 40) * (1 - 0.05)
		assert.InDelta(t, 95.0, bundle.TotalPrice(), 0.0001)
	})

	t.Run("nested discounts compose multiplicatively on the affected subtree only", func(t *testing.T) {
		inner, err := pricing.NewBundle("Inner", 0.05)
		require.NoError(t, err)
		inner.Add(mustItem(t, "PROD001", "Keyboard", 100, 1))
		assert.InDelta(t, 95.0, inner.TotalPrice(), 0.0001)

		outer, err := pricing.NewBundle("Outer", 0.10)
		require.NoError(t, err)
		outer.Add(inner)
		outer.Add(mustItem(t, "PROD002", "Headset", 50, 1))

		// (95 + 50) * (1 - 0.10)
		assert.InDelta(t, 130.5, outer.TotalPrice(), 0.0001)
	})

	t.Run("unit price equals discounted total", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0.5)
		require.NoError(t, err)
		bundle.Add(mustItem(t, "PROD001", "Keyboard", 100, 1))

		assert.InDelta(t, bundle.TotalPrice(), bundle.UnitPrice(), 0.0001)
	})
}

func TestBundle_AddRemove(t *testing.T) {
	t.Run("children preserve insertion order", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0)
		require.NoError(t, err)

		first := mustItem(t, "PROD001", "Keyboard", 60, 1)
		second := mustItem(t, "PROD002", "Mouse", 20, 1)
		bundle.Add(first)
		bundle.Add(second)

		children := bundle.Children()
		require.Len(t, children, 2)
		assert.Same(t, first, children[0].(*pricing.Item))
		assert.Same(t, second, children[1].(*pricing.Item))
	})

	t.Run("remove detaches only the given child", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0)
		require.NoError(t, err)

		first := mustItem(t, "PROD001", "Keyboard", 60, 1)
		second := mustItem(t, "PROD002", "Mouse", 20, 1)
		bundle.Add(first)
		bundle.Add(second)

		bundle.Remove(first)

		children := bundle.Children()
		require.Len(t, children, 1)
		assert.Same(t, second, children[0].(*pricing.Item))
	})

	t.Run("removing unknown component is a no-op", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0)
		require.NoError(t, err)
		bundle.Add(mustItem(t, "PROD001", "Keyboard", 60, 1))

		bundle.Remove(mustItem(t, "PROD099", "Ghost", 1, 1))

		assert.Len(t, bundle.Children(), 1)
	})

	t.Run("children returns a copy", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0)
		require.NoError(t, err)
		bundle.Add(mustItem(t, "PROD001", "Keyboard", 60, 1))

		children := bundle.Children()
		children[0] = nil

		assert.NotNil(t, bundle.Children()[0])
	})
}

func TestBundle_Description(t *testing.T) {
	t.Run("shows discount percentage when discount is set", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Office Kit", 0.1)
		require.NoError(t, err)
		bundle.Add(mustItem(t, "PROD001", "Keyboard", 60, 1))

		description := bundle.Description()

		assert.Contains(t, description, "Office Kit (10% discount):")
		assert.Contains(t, description, "└─ Keyboard x1 @ $60.00 = $60.00")
		assert.Contains(t, description, "Total: $54.00")
	})

	t.Run("omits discount note when discount is zero", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Office Kit", 0)
		require.NoError(t, err)

		assert.NotContains(t, bundle.Description(), "discount")
	})

	t.Run("nested bundles render indented", func(t *testing.T) {
		inner, err := pricing.NewBundle("Inner", 0.05)
		require.NoError(t, err)
		inner.Add(mustItem(t, "PROD001", "Keyboard", 100, 1))

		outer, err := pricing.NewBundle("Outer", 0)
		require.NoError(t, err)
		outer.Add(inner)

		description := outer.Description()

		assert.Contains(t, description, "Outer:")
		assert.Contains(t, description, "└─ Inner (5% discount):")
	})
}

func TestTotalOf(t *testing.T) {
	t.Run("sums top-level components", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0.05)
		require.NoError(t, err)
		bundle.Add(mustItem(t, "PROD001", "Keyboard", 100, 1))

		components := []pricing.Component{
			bundle,
			mustItem(t, "PROD002", "Mouse", 29.99, 2),
		}

		assert.InDelta(t, 95+59.98, pricing.TotalOf(components), 0.0001)
	})

	t.Run("empty list totals zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, pricing.TotalOf(nil), 0.0001)
	})
}

func TestLines(t *testing.T) {
	t.Run("flattens nested bundles to leaf items", func(t *testing.T) {
		inner, err := pricing.NewBundle("Inner", 0)
		require.NoError(t, err)
		inner.Add(mustItem(t, "PROD003", "Cable", 5, 4))

		outer, err := pricing.NewBundle("Outer", 0)
		require.NoError(t, err)
		outer.Add(inner)
		outer.Add(mustItem(t, "PROD002", "Mouse", 29.99, 2))

		lines := pricing.Lines([]pricing.Component{
			mustItem(t, "PROD001", "Laptop", 999.99, 1),
			outer,
		})

		assert.Equal(t, []pricing.Line{
			{ProductID: "PROD001", Quantity: 1},
			{ProductID: "PROD003", Quantity: 4},
			{ProductID: "PROD002", Quantity: 2},
		}, lines)
	})
}
