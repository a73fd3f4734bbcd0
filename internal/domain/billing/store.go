package billing

import "context"

// Store is the persistence contract the billing engine depends on.
//
// State lives in five independently stored, JSON-serializable collections.
// Reads return the whole collection and writes replace it atomically; the
// engine assumes exclusive single-writer access, so there is no locking or
// optimistic-concurrency handling at this boundary.
type Store interface {
	Plans(ctx context.Context) ([]Plan, error)
	ReplacePlans(ctx context.Context, plans []Plan) error

	Customers(ctx context.Context) ([]Customer, error)
	ReplaceCustomers(ctx context.Context, customers []Customer) error

	Usage(ctx context.Context) ([]UsageRecord, error)
	ReplaceUsage(ctx context.Context, records []UsageRecord) error

	Invoices(ctx context.Context) ([]Invoice, error)
	ReplaceInvoices(ctx context.Context, invoices []Invoice) error

	Profile(ctx context.Context) (BusinessProfile, error)
	ReplaceProfile(ctx context.Context, profile BusinessProfile) error

	// Reset removes all persisted collections and the profile record.
	Reset(ctx context.Context) error
}
