// ==============================================================================
// SERVICE ELIGIBILITY GATE - internal/compliance/gate.go
// ==============================================================================
// Evaluates whether a provider satisfies the requirement set for a service
// category. Pure function over a registry snapshot; results are computed
// fresh on every call and are never cached across provider edits.
// ==============================================================================

package compliance

import (
	"fmt"
	"time"

	"fixly/internal/domain"
)

// EvaluateGate checks the requirement clauses for one service category in
// fixed order: registration, insurance, technician certification. The first
// failing clause supplies the human-readable reason. A category with no
// requirement set is allowed unconditionally.
func EvaluateGate(
	serviceType domain.ServiceType,
	items []*domain.ComplianceItem,
	policies []*domain.InsurancePolicy,
	technicians []*domain.Technician,
	now time.Time,
) domain.ServiceGateResult {
	set, ok := RequirementsFor(serviceType)
	if !ok {
		return domain.ServiceGateResult{Allowed: true}
	}

	if set.Registration != nil {
		item := findItem(items, *set.Registration)
		if ResolveItemStatus(item, now) != domain.StatusVerified {
			return domain.ServiceGateResult{
				Allowed: false,
				Reason:  fmt.Sprintf("Requires verified %s", set.Registration.Label()),
			}
		}
	}

	if set.Insurance != nil {
		policy := findPolicy(policies, *set.Insurance)
		if ResolvePolicyStatus(policy, now) != domain.StatusVerified {
			return domain.ServiceGateResult{
				Allowed: false,
				Reason:  fmt.Sprintf("Requires active %s insurance", set.Insurance.Label()),
			}
		}
	}

	if set.Certification != nil {
		if !anyCertifiedTechnician(technicians, *set.Certification, now) {
			return domain.ServiceGateResult{
				Allowed: false,
				Reason:  "Requires a technician with valid EPA 609 certification",
			}
		}
	}

	return domain.ServiceGateResult{Allowed: true}
}

// EvaluateAllGates runs the gate for every known service category.
func EvaluateAllGates(
	items []*domain.ComplianceItem,
	policies []*domain.InsurancePolicy,
	technicians []*domain.Technician,
	now time.Time,
) map[domain.ServiceType]domain.ServiceGateResult {
	results := make(map[domain.ServiceType]domain.ServiceGateResult, len(domain.ServiceTypes))
	for _, st := range domain.ServiceTypes {
		results[st] = EvaluateGate(st, items, policies, technicians, now)
	}
	return results
}

func findItem(items []*domain.ComplianceItem, t domain.ComplianceItemType) *domain.ComplianceItem {
	for _, item := range items {
		if item.Type == t {
			return item
		}
	}
	return nil
}

func findPolicy(policies []*domain.InsurancePolicy, t domain.InsuranceType) *domain.InsurancePolicy {
	for _, policy := range policies {
		if policy.Type == t {
			return policy
		}
	}
	return nil
}

func anyCertifiedTechnician(technicians []*domain.Technician, required domain.EPA609CertType, now time.Time) bool {
	for _, tech := range technicians {
		if HasValidCertification(tech, required, now) {
			return true
		}
	}
	return false
}
