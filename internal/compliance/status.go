// ==============================================================================
// ITEM STATUS RESOLVER - internal/compliance/status.go
// ==============================================================================
// Derives the live status of a compliance item or insurance policy from its
// stored fields and an explicit evaluation time. Statuses are recomputed on
// every call and never persisted: an expired record can never surface as
// verified through a stale flag.
// ==============================================================================

package compliance

import (
	"strings"
	"time"

	"fixly/internal/domain"
)

// ResolveItemStatus derives the live status of a regulatory registration.
func ResolveItemStatus(item *domain.ComplianceItem, now time.Time) domain.ItemStatus {
	if item == nil || !hasIdentifyingData(item.RegistrationNumber) {
		return domain.StatusNotSubmitted
	}
	if item.RejectedAt != nil {
		return domain.StatusRejected
	}
	// Expiration overrides any verification flag.
	if item.ExpirationDate != nil && item.ExpirationDate.Before(now) {
		return domain.StatusExpired
	}
	if item.LastVerifiedAt != nil {
		return domain.StatusVerified
	}
	return domain.StatusPendingReview
}

// ResolvePolicyStatus derives the live status of an insurance declaration.
// A policy with HasCoverage=false is a valid declared state and resolves to
// not-submitted.
func ResolvePolicyStatus(policy *domain.InsurancePolicy, now time.Time) domain.ItemStatus {
	if policy == nil || !policy.HasCoverage || !hasIdentifyingData(policy.CarrierName) {
		return domain.StatusNotSubmitted
	}
	if policy.RejectedAt != nil {
		return domain.StatusRejected
	}
	if policy.ExpirationDate != nil && policy.ExpirationDate.Before(now) {
		return domain.StatusExpired
	}
	if policy.LastVerifiedAt != nil {
		return domain.StatusVerified
	}
	return domain.StatusPendingReview
}

// HasValidCertification reports whether the technician holds a usable,
// non-expired EPA 609 certification covering the required type. Inactive
// technicians never qualify.
func HasValidCertification(tech *domain.Technician, required domain.EPA609CertType, now time.Time) bool {
	if tech == nil || !tech.IsActive {
		return false
	}
	if tech.EPA609CertType == nil || !hasIdentifyingData(tech.EPA609CertNumber) {
		return false
	}
	if tech.EPA609CertExpiry != nil && tech.EPA609CertExpiry.Before(now) {
		return false
	}
	return tech.EPA609CertType.Satisfies(required)
}

// expiringSoon marks verified records whose expiration falls inside the
// warning window, for dashboard renewal nags.
func expiringSoon(status domain.ItemStatus, expiration *time.Time, now time.Time, window time.Duration) bool {
	if status != domain.StatusVerified || expiration == nil || window <= 0 {
		return false
	}
	return expiration.Before(now.Add(window))
}

func hasIdentifyingData(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
