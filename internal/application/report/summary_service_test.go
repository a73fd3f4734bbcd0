package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/billing"
	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	plans     []billing.Plan
	customers []billing.Customer
	usage     []billing.UsageRecord
	invoices  []billing.Invoice
	profile   billing.BusinessProfile
}

func (m *memStore) Plans(ctx context.Context) ([]billing.Plan, error) { return m.plans, nil }
func (m *memStore) ReplacePlans(ctx context.Context, plans []billing.Plan) error {
	m.plans = plans
	return nil
}
func (m *memStore) Customers(ctx context.Context) ([]billing.Customer, error) {
	return m.customers, nil
}
func (m *memStore) ReplaceCustomers(ctx context.Context, customers []billing.Customer) error {
	m.customers = customers
	return nil
}
func (m *memStore) Usage(ctx context.Context) ([]billing.UsageRecord, error) { return m.usage, nil }
func (m *memStore) ReplaceUsage(ctx context.Context, records []billing.UsageRecord) error {
	m.usage = records
	return nil
}
func (m *memStore) Invoices(ctx context.Context) ([]billing.Invoice, error) { return m.invoices, nil }
func (m *memStore) ReplaceInvoices(ctx context.Context, invoices []billing.Invoice) error {
	m.invoices = invoices
	return nil
}
func (m *memStore) Profile(ctx context.Context) (billing.BusinessProfile, error) {
	return m.profile, nil
}
func (m *memStore) ReplaceProfile(ctx context.Context, profile billing.BusinessProfile) error {
	m.profile = profile
	return nil
}
func (m *memStore) Reset(ctx context.Context) error { *m = memStore{}; return nil }

func TestSummary(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	svc := NewSummaryService(store)

	t.Run("empty store", func(t *testing.T) {
		summary, err := svc.Summary(ctx)

		require.NoError(t, err)
		assert.True(t, summary.Revenue.IsZero())
		assert.True(t, summary.OutstandingDue.IsZero())
		assert.Zero(t, summary.CustomerCount)
		assert.Zero(t, summary.InvoiceCount)
	})

	t.Run("aggregates across collections", func(t *testing.T) {
		plan, err := billing.NewPlan("Home 10Mbps", valueobject.NewMoneyKES(decimal.NewFromInt(2000)), 10, 30)
		require.NoError(t, err)
		store.plans = []billing.Plan{*plan}

		active, err := billing.NewCustomer("Jane Wanjiku", "0712345678")
		require.NoError(t, err)
		inactive, err := billing.NewCustomer("Peter Otieno", "0723456789")
		require.NoError(t, err)
		inactive.Deactivate()
		store.customers = []billing.Customer{*active, *inactive}

		record, err := billing.NewUsageRecord(active.ID, decimal.RequireFromString("42.5"), valueobject.NewDate(2024, time.March, 5))
		require.NoError(t, err)
		store.usage = []billing.UsageRecord{*record}

		start := valueobject.NewDate(2024, time.March, 1)
		end := valueobject.NewDate(2024, time.March, 31)
		newInvoice := func(number string, total int64, paid bool) billing.Invoice {
			b := billing.Compute(plan, decimal.Zero, decimal.Zero)
			b.Total = decimal.NewFromInt(total)
			inv, err := billing.NewInvoice(number, uuid.New(), plan, start, end, "", b)
			require.NoError(t, err)
			if paid {
				require.NoError(t, inv.MarkPaid())
			}
			return *inv
		}
		store.invoices = []billing.Invoice{
			newInvoice("INV-2024-0001", 5800, true),
			newInvoice("INV-2024-0002", 2320, true),
			newInvoice("INV-2024-0003", 2320, false),
		}

		summary, err := svc.Summary(ctx)

		require.NoError(t, err)
		assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(8120)))
		assert.True(t, summary.OutstandingDue.Equal(decimal.NewFromInt(2320)))
		assert.Equal(t, 1, summary.UnpaidCount)
		assert.Equal(t, 1, summary.ActiveCustomers)
		assert.Equal(t, 2, summary.CustomerCount)
		assert.Equal(t, 1, summary.PlanCount)
		assert.Equal(t, 3, summary.InvoiceCount)
		assert.True(t, summary.TotalUsageGb.Equal(decimal.RequireFromString("42.5")))
	})
}
