package billing

import (
	"context"
	"encoding/json"

	"github.com/isp/backend/internal/domain/billing"
	"github.com/isp/backend/internal/domain/shared"
)

// BundleService handles full-state export, import and factory reset
type BundleService struct {
	store billing.Store
}

// NewBundleService creates a new BundleService
func NewBundleService(store billing.Store) *BundleService {
	return &BundleService{store: store}
}

// Export snapshots the entire store into a single portable bundle
func (s *BundleService) Export(ctx context.Context) (*Bundle, error) {
	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.store.Plans(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	usage, err := s.store.Usage(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	if plans == nil {
		plans = []billing.Plan{}
	}
	if customers == nil {
		customers = []billing.Customer{}
	}
	if usage == nil {
		usage = []billing.UsageRecord{}
	}
	if invoices == nil {
		invoices = []billing.Invoice{}
	}

	return &Bundle{
		Profile:   profile,
		Plans:     plans,
		Customers: customers,
		Usage:     usage,
		Invoices:  invoices,
	}, nil
}

// bundleProbe mirrors Bundle with pointer collections so absent keys are
// distinguishable from empty ones
type bundleProbe struct {
	Profile   *billing.BusinessProfile `json:"profile"`
	Plans     *[]billing.Plan          `json:"plans"`
	Customers *[]billing.Customer      `json:"customers"`
	Usage     *[]billing.UsageRecord   `json:"usage"`
	Invoices  *[]billing.Invoice       `json:"invoices"`
}

// Import replaces the entire store with the decoded bundle. The payload
// must carry every collection and the profile; nothing is written when
// decoding or validation fails, so a bad file cannot half-apply.
//
// The replaces themselves run as five sequential writes. A backend
// failure mid-sequence leaves the store partially replaced; callers
// should re-import or reset when that happens.
func (s *BundleService) Import(ctx context.Context, payload []byte) (*Bundle, error) {
	var probe bundleProbe
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, shared.NewDomainError("IMPORT_ERROR", "Bundle is not valid JSON: "+err.Error())
	}
	if probe.Profile == nil || probe.Plans == nil || probe.Customers == nil || probe.Usage == nil || probe.Invoices == nil {
		return nil, shared.NewDomainError("IMPORT_ERROR", "Bundle must contain profile, plans, customers, usage and invoices")
	}

	bundle := &Bundle{
		Profile:   *probe.Profile,
		Plans:     *probe.Plans,
		Customers: *probe.Customers,
		Usage:     *probe.Usage,
		Invoices:  *probe.Invoices,
	}

	if err := s.store.ReplaceProfile(ctx, bundle.Profile); err != nil {
		return nil, err
	}
	if err := s.store.ReplacePlans(ctx, bundle.Plans); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceCustomers(ctx, bundle.Customers); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceUsage(ctx, bundle.Usage); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceInvoices(ctx, bundle.Invoices); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Reset wipes the store and reapplies the starter seed
func (s *BundleService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	return Seed(ctx, s.store)
}
