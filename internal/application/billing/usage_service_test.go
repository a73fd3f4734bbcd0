package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageServiceRecord(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	customers := NewCustomerService(store)
	svc := NewUsageService(store)

	customer, err := customers.Create(ctx, CreateCustomerRequest{Name: "Jane Wanjiku", Phone: "0712345678"})
	require.NoError(t, err)

	t.Run("records usage for existing customer", func(t *testing.T) {
		record, err := svc.Record(ctx, RecordUsageRequest{
			CustomerID: customer.ID,
			Gb:         decimal.RequireFromString("4.5"),
			Date:       "2024-03-05",
		})

		require.NoError(t, err)
		assert.True(t, record.Gb.Equal(decimal.RequireFromString("4.5")))
	})

	t.Run("rejects unknown customer", func(t *testing.T) {
		_, err := svc.Record(ctx, RecordUsageRequest{
			CustomerID: uuid.New(),
			Gb:         decimal.NewFromInt(1),
			Date:       "2024-03-05",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REFERENCE", domainErr.Code)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := svc.Record(ctx, RecordUsageRequest{
			CustomerID: customer.ID,
			Gb:         decimal.NewFromInt(1),
			Date:       "March 5",
		})

		assert.Error(t, err)
	})
}

func TestUsageServiceTotalUsage(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	customers := NewCustomerService(store)
	svc := NewUsageService(store)

	customer, err := customers.Create(ctx, CreateCustomerRequest{Name: "Jane Wanjiku", Phone: "0712345678"})
	require.NoError(t, err)
	other, err := customers.Create(ctx, CreateCustomerRequest{Name: "Peter Otieno", Phone: "0723456789"})
	require.NoError(t, err)

	for _, entry := range []struct {
		customerID uuid.UUID
		gb         string
		date       string
	}{
		{customer.ID, "10", "2024-03-01"},
		{customer.ID, "20.5", "2024-03-15"},
		{customer.ID, "5", "2024-03-31"},
		{customer.ID, "99", "2024-04-01"},
		{other.ID, "50", "2024-03-15"},
	} {
		_, err := svc.Record(ctx, RecordUsageRequest{
			CustomerID: entry.customerID,
			Gb:         decimal.RequireFromString(entry.gb),
			Date:       entry.date,
		})
		require.NoError(t, err)
	}

	march1 := valueobject.NewDate(2024, time.March, 1)
	march31 := valueobject.NewDate(2024, time.March, 31)

	t.Run("sums only the customer inside inclusive bounds", func(t *testing.T) {
		total, err := svc.TotalUsage(ctx, customer.ID, march1, march31)

		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("35.5")))
	})

	t.Run("customer with no records totals zero", func(t *testing.T) {
		total, err := svc.TotalUsage(ctx, uuid.New(), march1, march31)

		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestUsageServiceList(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	customers := NewCustomerService(store)
	svc := NewUsageService(store)

	customer, err := customers.Create(ctx, CreateCustomerRequest{Name: "Jane Wanjiku", Phone: "0712345678"})
	require.NoError(t, err)

	for _, date := range []string{"2024-03-01", "2024-03-15", "2024-04-01"} {
		_, err := svc.Record(ctx, RecordUsageRequest{
			CustomerID: customer.ID,
			Gb:         decimal.NewFromInt(1),
			Date:       date,
		})
		require.NoError(t, err)
	}

	t.Run("filters by period", func(t *testing.T) {
		records, err := svc.List(ctx, UsageFilter{Start: "2024-03-01", End: "2024-03-31"})

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("filters by customer", func(t *testing.T) {
		stranger := uuid.New()
		records, err := svc.List(ctx, UsageFilter{CustomerID: &stranger})

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestUsageServiceDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	customers := NewCustomerService(store)
	svc := NewUsageService(store)

	customer, err := customers.Create(ctx, CreateCustomerRequest{Name: "Jane Wanjiku", Phone: "0712345678"})
	require.NoError(t, err)

	record, err := svc.Record(ctx, RecordUsageRequest{
		CustomerID: customer.ID,
		Gb:         decimal.NewFromInt(1),
		Date:       "2024-03-05",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID))

	records, err := svc.List(ctx, UsageFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.ErrorIs(t, svc.Delete(ctx, record.ID), shared.ErrNotFound)
}
