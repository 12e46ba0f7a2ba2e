package services

import (
	"testing"

	"orderflow/internal/core/domain/model/fulfillment"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/pricing"
	"orderflow/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID string, name string, unitPrice float64, quantity int) *pricing.Item {
	t.Helper()
	item, err := pricing.NewItem(productID, name, unitPrice, quantity)
	require.NoError(t, err)
	return item
}

func componentsWorth(t *testing.T, total float64) []pricing.Component {
	t.Helper()
	return []pricing.Component{mustItem(t, "PROD001", "Widget", total, 1)}
}

func TestStandardOrderFactoryBuild(t *testing.T) {
	factory := NewStandardOrderFactory(zerolog.Nop())

	t.Run("should create order in new status", func(t *testing.T) {
		o, err := factory.Build("ORD-001001", "CUST-1", componentsWorth(t, 150), fulfillment.NewStandardPolicy())

		require.NoError(t, err)
		assert.Equal(t, "ORD-001001", o.ID())
		assert.Equal(t, "CUST-1", o.CustomerID())
		assert.Equal(t, order.New, o.Status())
		assert.False(t, o.Priority())
		assert.False(t, o.International())
	})

	t.Run("should keep supplied policy even when it is not the standard one", func(t *testing.T) {
		o, err := factory.Build("ORD-001002", "CUST-1", componentsWorth(t, 150), fulfillment.NewExpressPolicy())

		require.NoError(t, err)
		assert.Equal(t, "Express Processing", o.Policy().Name())
		// the factory configures nothing class-specific
		assert.False(t, o.Priority())
	})

	t.Run("should return all validation errors together", func(t *testing.T) {
		_, err := factory.Build("", "", nil, fulfillment.NewStandardPolicy())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorContains(t, err, "id")
		assert.ErrorContains(t, err, "customerID")
		assert.ErrorContains(t, err, "components")
	})

	t.Run("should fail with required error when policy is nil", func(t *testing.T) {
		_, err := factory.Build("ORD-001003", "CUST-1", componentsWorth(t, 150), nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestExpressOrderFactoryBuild(t *testing.T) {
	factory := NewExpressOrderFactory(zerolog.Nop())

	t.Run("should force express policy and mark priority", func(t *testing.T) {
		o, err := factory.Build("ORD-001010", "CUST-2", componentsWorth(t, 200), fulfillment.NewStandardPolicy())

		require.NoError(t, err)
		assert.Equal(t, "Express Processing", o.Policy().Name())
		assert.True(t, o.Priority())
	})

	t.Run("should accept nil policy and substitute the default express policy", func(t *testing.T) {
		o, err := factory.Build("ORD-001011", "CUST-2", componentsWorth(t, 200), nil)

		require.NoError(t, err)
		assert.Equal(t, "Express Processing", o.Policy().Name())
	})

	t.Run("should keep an express policy supplied by the caller", func(t *testing.T) {
		supplied := fulfillment.NewExpressPolicy()
		o, err := factory.Build("ORD-001012", "CUST-2", componentsWorth(t, 200), supplied)

		require.NoError(t, err)
		assert.Same(t, fulfillment.Policy(supplied), o.Policy())
	})

	t.Run("should reject order at the express ceiling", func(t *testing.T) {
		_, err := factory.Build("ORD-001013", "CUST-2", componentsWorth(t, 5000), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPolicyRejected)
		assert.ErrorContains(t, err, "Express Processing")
	})

	t.Run("should reject ineligible order even when the supplied policy would accept it", func(t *testing.T) {
		// the effective, post-substitution policy decides eligibility
		_, err := factory.Build("ORD-001014", "CUST-2", componentsWorth(t, 6000), fulfillment.NewStandardPolicy())

		assert.ErrorIs(t, err, ErrPolicyRejected)
	})
}

func TestInternationalOrderFactoryBuild(t *testing.T) {
	newFactory := func(t *testing.T) InternationalOrderFactory {
		t.Helper()
		factory, err := NewInternationalOrderFactory("Canada", zerolog.Nop())
		require.NoError(t, err)
		return factory
	}

	t.Run("should require a default country", func(t *testing.T) {
		_, err := NewInternationalOrderFactory("", zerolog.Nop())

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should force international policy for the default country and mark international", func(t *testing.T) {
		factory := newFactory(t)

		o, err := factory.Build("ORD-001020", "CUST-3", componentsWorth(t, 300), fulfillment.NewStandardPolicy())

		require.NoError(t, err)
		assert.Equal(t, "International Processing (Canada)", o.Policy().Name())
		assert.True(t, o.International())
	})

	t.Run("should keep an international policy supplied by the caller", func(t *testing.T) {
		supplied, err := fulfillment.NewInternationalPolicy("Japan")
		require.NoError(t, err)
		factory := newFactory(t)

		o, buildErr := factory.Build("ORD-001021", "CUST-3", componentsWorth(t, 300), supplied)

		require.NoError(t, buildErr)
		assert.Same(t, fulfillment.Policy(supplied), o.Policy())
	})

	t.Run("should reject order below the international floor", func(t *testing.T) {
		factory := newFactory(t)

		_, err := factory.Build("ORD-001022", "CUST-3", componentsWorth(t, 49.99), nil)

		assert.ErrorIs(t, err, ErrPolicyRejected)
	})

	t.Run("should reject order at the international ceiling", func(t *testing.T) {
		factory := newFactory(t)

		_, err := factory.Build("ORD-001023", "CUST-3", componentsWorth(t, 10000), nil)

		assert.ErrorIs(t, err, ErrPolicyRejected)
	})
}

func TestPolicyRejectedError(t *testing.T) {
	t.Run("should name the rejecting policy", func(t *testing.T) {
		err := &PolicyRejectedError{PolicyName: "Express Processing"}

		assert.Equal(t,
			"fulfillment policy rejected order: Express Processing cannot process this order",
			err.Error())
		assert.ErrorIs(t, err, ErrPolicyRejected)
	})
}
