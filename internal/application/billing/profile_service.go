package billing

import (
	"context"

	"github.com/isp/backend/internal/domain/billing"
)

// ProfileService handles the business profile that brands invoices and
// carries the tax rate
type ProfileService struct {
	store billing.Store
}

// NewProfileService creates a new ProfileService
func NewProfileService(store billing.Store) *ProfileService {
	return &ProfileService{store: store}
}

// Get returns the business profile
func (s *ProfileService) Get(ctx context.Context) (billing.BusinessProfile, error) {
	return s.store.Profile(ctx)
}

// Update replaces the business profile. Changing the tax rate only
// affects invoices issued afterwards; existing invoices keep the
// amounts they were issued with.
func (s *ProfileService) Update(ctx context.Context, req UpdateProfileRequest) (billing.BusinessProfile, error) {
	profile, err := billing.NewBusinessProfile(req.BusinessName, req.Address, req.Phone, req.TaxRate)
	if err != nil {
		return billing.BusinessProfile{}, err
	}
	if err := s.store.ReplaceProfile(ctx, profile); err != nil {
		return billing.BusinessProfile{}, err
	}
	return profile, nil
}
