// Package billing provides the domain model for a small-ISP billing workflow.
//
// This package implements the billing bounded context, which is responsible for:
//   - Subscription plans with data caps and per-gigabyte overage rates
//   - Subscribers and their (possibly dangling) plan references
//   - Append-only metered data-usage records
//   - Priced, numbered invoices with a one-way unpaid -> paid transition
//
// Key Aggregates:
//   - Plan: A tariff; invoices snapshot its name and id at issuance
//   - Customer: A subscriber; PlanID absence or dangling is a normal state
//   - UsageRecord: Immutable record of metered data usage on a date
//   - Invoice: Frozen pricing fields plus the single status transition
//
// Value Objects:
//   - Breakdown: The priced result of one billing-period computation
//   - BusinessProfile: Singleton business identity and tax rate
//
// Pricing itself is the pure function Compute; persistence is abstracted by
// the Store contract, five whole-collection JSON documents replaced atomically.
package billing
