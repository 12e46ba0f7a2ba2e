package fulfillment_test

import (
	"testing"

	"orderflow/internal/core/domain/model/fulfillment"
	"orderflow/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// componentsWorth builds a single-item component list with the given total.
func componentsWorth(t *testing.T, total float64) []pricing.Component {
	t.Helper()
	item, err := pricing.NewItem("PROD001", "Widget", total, 1)
	require.NoError(t, err)
	return []pricing.Component{item}
}

func TestStandardPolicy(t *testing.T) {
	policy := fulfillment.NewStandardPolicy()

	t.Run("name and description", func(t *testing.T) {
		assert.Equal(t, "Standard Processing", policy.Name())
		assert.Contains(t, policy.Description(), "5-7 business days")
	})

	t.Run("flat rate at or under $100", func(t *testing.T) {
		assert.InDelta(t, 5.99, policy.ShippingCost(componentsWorth(t, 99.99)), 0.0001)
	})

	t.Run("boundary: exactly $100 still pays flat rate", func(t *testing.T) {
		assert.InDelta(t, 5.99, policy.ShippingCost(componentsWorth(t, 100.00)), 0.0001)
	})

	t.Run("free shipping strictly over $100", func(t *testing.T) {
		assert.InDelta(t, 0.0, policy.ShippingCost(componentsWorth(t, 100.01)), 0.0001)
	})

	t.Run("no processing fee", func(t *testing.T) {
		assert.InDelta(t, 0.0, policy.ProcessingFee(), 0.0001)
	})

	t.Run("five day estimate", func(t *testing.T) {
		assert.Equal(t, 5, policy.EstimatedDeliveryDays())
	})

	t.Run("accepts any non-empty component list", func(t *testing.T) {
		assert.True(t, policy.CanProcess(componentsWorth(t, 0.01)))
		assert.False(t, policy.CanProcess(nil))
		assert.False(t, policy.CanProcess([]pricing.Component{}))
	})
}

func TestExpressPolicy(t *testing.T) {
	policy := fulfillment.NewExpressPolicy()

	t.Run("name and description", func(t *testing.T) {
		assert.Equal(t, "Express Processing", policy.Name())
		assert.Contains(t, policy.Description(), "1-2 business days")
	})

	t.Run("minimum dominates at $100", func(t *testing.T) {
		assert.InDelta(t, 15.0, policy.ShippingCost(componentsWorth(t, 100)), 0.0001)
	})

	t.Run("percentage dominates at $1000", func(t *testing.T) {
		assert.InDelta(t, 150.0, policy.ShippingCost(componentsWorth(t, 1000)), 0.0001)
	})

	t.Run("processing fee", func(t *testing.T) {
		assert.InDelta(t, 9.99, policy.ProcessingFee(), 0.0001)
	})

	t.Run("two day estimate", func(t *testing.T) {
		assert.Equal(t, 2, policy.EstimatedDeliveryDays())
	})

	t.Run("rejects orders at or over $5000", func(t *testing.T) {
		assert.True(t, policy.CanProcess(componentsWorth(t, 4999.99)))
		assert.False(t, policy.CanProcess(componentsWorth(t, 5000.00)))
		assert.False(t, policy.CanProcess(nil))
	})
}

func TestInternationalPolicy(t *testing.T) {
	policy, err := fulfillment.NewInternationalPolicy("Canada")
	require.NoError(t, err)

	t.Run("requires destination country", func(t *testing.T) {
		p, err := fulfillment.NewInternationalPolicy("")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "destinationCountry")
	})

	t.Run("name includes destination country", func(t *testing.T) {
		assert.Equal(t, "International Processing (Canada)", policy.Name())
		assert.Equal(t, "Canada", policy.DestinationCountry())
		assert.Contains(t, policy.Description(), "Canada")
	})

	t.Run("minimum dominates for small orders", func(t *testing.T) {
		assert.InDelta(t, 30.0, policy.ShippingCost(componentsWorth(t, 100)), 0.0001)
	})

	t.Run("percentage dominates for large orders", func(t *testing.T) {
		assert.InDelta(t, 250.0, policy.ShippingCost(componentsWorth(t, 1000)), 0.0001)
	})

	t.Run("customs fee", func(t *testing.T) {
		assert.InDelta(t, 19.99, policy.ProcessingFee(), 0.0001)
	})

	t.Run("fourteen day estimate", func(t *testing.T) {
		assert.Equal(t, 14, policy.EstimatedDeliveryDays())
	})

	t.Run("accepts only the eligible value range", func(t *testing.T) {
		assert.False(t, policy.CanProcess(componentsWorth(t, 49.99)))
		assert.True(t, policy.CanProcess(componentsWorth(t, 50.00)))
		assert.True(t, policy.CanProcess(componentsWorth(t, 9999.99)))
		assert.False(t, policy.CanProcess(componentsWorth(t, 10000.00)))
		assert.False(t, policy.CanProcess(nil))
	})
}

func TestPolicyShippingCostWithBundles(t *testing.T) {
	t.Run("bundle discount applies before shipping calculation", func(t *testing.T) {
		bundle, err := pricing.NewBundle("Kit", 0.5)
		require.NoError(t, err)
		item, err := pricing.NewItem("PROD001", "Monitor", 300, 1)
		require.NoError(t, err)
		bundle.Add(item)

		// Discounted bundle total is 150, so express shipping is 0.15*150.
		policy := fulfillment.NewExpressPolicy()
		assert.InDelta(t, 22.5, policy.ShippingCost([]pricing.Component{bundle}), 0.0001)
	})
}
