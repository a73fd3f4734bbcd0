package billing

import (
	"context"

	"github.com/isp/backend/internal/domain/billing"
	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Seed writes the starter profile, plans and demo subscribers so a
// fresh installation is usable immediately. It overwrites whatever the
// store currently holds, so callers guard with IsEmpty unless they mean
// to reset.
func Seed(ctx context.Context, store billing.Store) error {
	profile, err := billing.NewBusinessProfile(
		"Demo ISP",
		"Nakuru, Kenya",
		"0700000000",
		decimal.NewFromInt(16),
	)
	if err != nil {
		return err
	}

	home, err := billing.NewPlan("Home 10Mbps", valueobject.NewMoneyKES(decimal.NewFromInt(2000)), 10, 30)
	if err != nil {
		return err
	}
	if err := home.SetCap(decimal.NewFromInt(100), valueobject.NewMoneyKES(decimal.NewFromInt(100))); err != nil {
		return err
	}

	pro, err := billing.NewPlan("Pro 25Mbps", valueobject.NewMoneyKES(decimal.NewFromInt(3500)), 25, 30)
	if err != nil {
		return err
	}
	if err := pro.SetCap(decimal.NewFromInt(250), valueobject.NewMoneyKES(decimal.NewFromInt(80))); err != nil {
		return err
	}

	jane, err := billing.NewCustomer("Jane Doe", "+254700000000")
	if err != nil {
		return err
	}
	jane.Email = "jane@example.com"
	jane.SetNetwork("AA:BB:CC:DD:EE:FF", "192.168.1.101")
	if err := jane.AssignPlan(home.ID); err != nil {
		return err
	}

	john, err := billing.NewCustomer("John Smith", "+254711111111")
	if err != nil {
		return err
	}
	john.Email = "john@example.com"
	john.SetNetwork("AB:CD:EF:12:34:56", "192.168.1.102")
	if err := john.AssignPlan(pro.ID); err != nil {
		return err
	}

	if err := store.ReplaceProfile(ctx, profile); err != nil {
		return err
	}
	if err := store.ReplacePlans(ctx, []billing.Plan{*home, *pro}); err != nil {
		return err
	}
	if err := store.ReplaceCustomers(ctx, []billing.Customer{*jane, *john}); err != nil {
		return err
	}
	if err := store.ReplaceUsage(ctx, []billing.UsageRecord{}); err != nil {
		return err
	}
	return store.ReplaceInvoices(ctx, []billing.Invoice{})
}

// IsEmpty reports whether the store has no plans and an unnamed profile,
// the state of a first boot
func IsEmpty(ctx context.Context, store billing.Store) (bool, error) {
	plans, err := store.Plans(ctx)
	if err != nil {
		return false, err
	}
	if len(plans) > 0 {
		return false, nil
	}
	profile, err := store.Profile(ctx)
	if err != nil {
		return false, err
	}
	return profile.BusinessName == "", nil
}
