package persistence

import "context"

// Collection keys used by the CollectionStore across every backend.
const (
	KeyPlans     = "plans"
	KeyCustomers = "customers"
	KeyUsage     = "usage"
	KeyInvoices  = "invoices"
	KeyProfile   = "profile"
)

// AllKeys lists every collection key, in the order bundles serialize them
var AllKeys = []string{KeyProfile, KeyPlans, KeyCustomers, KeyUsage, KeyInvoices}

// KV is the minimal byte-level contract a storage backend must satisfy.
// Get returns (nil, nil) for a missing key; callers treat that as an
// empty collection.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
