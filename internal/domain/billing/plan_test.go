package billing

import (
	"testing"

	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	price, err := valueobject.NewMoneyKESFromString("2000")
	require.NoError(t, err)

	t.Run("creates plan without data cap", func(t *testing.T) {
		plan, err := NewPlan("Home 10Mbps", price, 10, 30)

		require.NoError(t, err)
		assert.Equal(t, "Home 10Mbps", plan.Name)
		assert.True(t, plan.Price.Equal(decimal.NewFromInt(2000)))
		assert.Equal(t, 10, plan.SpeedMbps)
		assert.Equal(t, 30, plan.DurationDays)
		assert.False(t, plan.HasCap())
		assert.True(t, plan.OverageRate().IsZero())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		plan, err := NewPlan("", price, 10, 30)

		assert.Error(t, err)
		assert.Nil(t, plan)
	})

	t.Run("fails with non-positive speed", func(t *testing.T) {
		plan, err := NewPlan("Home", price, 0, 30)

		assert.Error(t, err)
		assert.Nil(t, plan)
	})

	t.Run("fails with non-positive duration", func(t *testing.T) {
		plan, err := NewPlan("Home", price, 10, 0)

		assert.Error(t, err)
		assert.Nil(t, plan)
	})
}

func TestPlanSetCap(t *testing.T) {
	price, err := valueobject.NewMoneyKESFromString("3500")
	require.NoError(t, err)
	rate, err := valueobject.NewMoneyKESFromString("80")
	require.NoError(t, err)

	t.Run("enables cap with rate", func(t *testing.T) {
		plan, err := NewPlan("Pro 25Mbps", price, 25, 30)
		require.NoError(t, err)

		require.NoError(t, plan.SetCap(decimal.NewFromInt(250), rate))

		assert.True(t, plan.HasCap())
		require.NotNil(t, plan.CapGb)
		assert.True(t, plan.CapGb.Equal(decimal.NewFromInt(250)))
		assert.True(t, plan.OverageRate().Equal(decimal.NewFromInt(80)))
	})

	t.Run("rejects non-positive cap", func(t *testing.T) {
		plan, err := NewPlan("Pro 25Mbps", price, 25, 30)
		require.NoError(t, err)

		assert.Error(t, plan.SetCap(decimal.Zero, rate))
		assert.False(t, plan.HasCap())
	})

	t.Run("clear cap removes both fields", func(t *testing.T) {
		plan, err := NewPlan("Pro 25Mbps", price, 25, 30)
		require.NoError(t, err)
		require.NoError(t, plan.SetCap(decimal.NewFromInt(250), rate))

		plan.ClearCap()

		assert.False(t, plan.HasCap())
		assert.Nil(t, plan.CapGb)
		assert.Nil(t, plan.OveragePerGb)
	})
}

func TestPlanUpdate(t *testing.T) {
	price, err := valueobject.NewMoneyKESFromString("2000")
	require.NoError(t, err)
	plan, err := NewPlan("Home 10Mbps", price, 10, 30)
	require.NoError(t, err)

	newPrice, err := valueobject.NewMoneyKESFromString("2500")
	require.NoError(t, err)

	require.NoError(t, plan.Update("Home 15Mbps", newPrice, 15, 30))

	assert.Equal(t, "Home 15Mbps", plan.Name)
	assert.True(t, plan.Price.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 15, plan.SpeedMbps)
}
