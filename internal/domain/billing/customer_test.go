package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates active customer without plan", func(t *testing.T) {
		customer, err := NewCustomer("Jane Wanjiku", "0712345678")

		require.NoError(t, err)
		assert.Equal(t, "Jane Wanjiku", customer.Name)
		assert.Equal(t, "0712345678", customer.Phone)
		assert.Equal(t, CustomerStatusActive, customer.Status)
		assert.True(t, customer.IsActive())
		assert.False(t, customer.HasPlan())
		assert.False(t, customer.StartedOn.IsZero())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		customer, err := NewCustomer("", "0712345678")

		assert.Error(t, err)
		assert.Nil(t, customer)
	})

	t.Run("fails with empty phone", func(t *testing.T) {
		customer, err := NewCustomer("Jane Wanjiku", "")

		assert.Error(t, err)
		assert.Nil(t, customer)
	})
}

func TestCustomerAssignPlan(t *testing.T) {
	customer, err := NewCustomer("Jane Wanjiku", "0712345678")
	require.NoError(t, err)

	planID := uuid.New()
	require.NoError(t, customer.AssignPlan(planID))

	assert.True(t, customer.HasPlan())
	require.NotNil(t, customer.PlanID)
	assert.Equal(t, planID, *customer.PlanID)

	customer.ClearPlan()

	assert.False(t, customer.HasPlan())
	assert.Nil(t, customer.PlanID)
}

func TestCustomerSetStatus(t *testing.T) {
	customer, err := NewCustomer("Jane Wanjiku", "0712345678")
	require.NoError(t, err)

	t.Run("accepts valid status", func(t *testing.T) {
		require.NoError(t, customer.SetStatus(CustomerStatusInactive))
		assert.False(t, customer.IsActive())

		require.NoError(t, customer.SetStatus(CustomerStatusActive))
		assert.True(t, customer.IsActive())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := customer.SetStatus(CustomerStatus("suspended"))
		assert.Error(t, err)
	})
}

func TestCustomerSetNetwork(t *testing.T) {
	customer, err := NewCustomer("Jane Wanjiku", "0712345678")
	require.NoError(t, err)

	customer.SetNetwork("AA:BB:CC:DD:EE:FF", "10.0.0.17")

	assert.Equal(t, "AA:BB:CC:DD:EE:FF", customer.MAC)
	assert.Equal(t, "10.0.0.17", customer.IP)
}
