// ==============================================================================
// OVERALL STATUS AGGREGATOR - internal/compliance/aggregate.go
// ==============================================================================
// Rolls registry-level statuses into one provider-wide compliance status.
// The result is advisory; per-action permission always comes from the gate.
// ==============================================================================

package compliance

import (
	"time"

	"fixly/internal/domain"
)

// AggregateOverallStatus applies the rollup rules top to bottom, first
// match wins:
//
//  1. not_eligible: the provider has never entered the compliance flow.
//  2. restricted: the core registration is expired or rejected.
//  3. pending: the core registration is not submitted or awaiting review,
//     or any declared coverage is awaiting review.
//  4. verified: the core registration is verified.
func AggregateOverallStatus(
	items []*domain.ComplianceItem,
	policies []*domain.InsurancePolicy,
	_ []*domain.Technician,
	now time.Time,
) domain.OverallStatus {
	if len(items) == 0 {
		return domain.OverallNotEligible
	}

	core := findItem(items, domain.CoreComplianceType)
	coreStatus := ResolveItemStatus(core, now)

	switch coreStatus {
	case domain.StatusExpired, domain.StatusRejected:
		return domain.OverallRestricted
	case domain.StatusNotSubmitted, domain.StatusPendingReview:
		return domain.OverallPending
	}

	for _, policy := range policies {
		if policy.HasCoverage && ResolvePolicyStatus(policy, now) == domain.StatusPendingReview {
			return domain.OverallPending
		}
	}

	return domain.OverallVerified
}
