// ==============================================================================
// SERVICE REQUIREMENT RULES - internal/compliance/rules.go
// ==============================================================================
// Declarative requirement table: service category -> up to three clauses,
// all of which must hold for the gate to allow. Rules are data; evaluation
// lives in gate.go and never needs to change when a rule does.
// ==============================================================================

package compliance

import "fixly/internal/domain"

// RequirementSet lists the clauses a provider must satisfy before offering
// a service category. Nil clauses are skipped.
type RequirementSet struct {
	// Registration names a compliance item type that must resolve to verified.
	Registration *domain.ComplianceItemType
	// Insurance names a policy type that must resolve to verified.
	Insurance *domain.InsuranceType
	// Certification names the EPA 609 type at least one active technician
	// must hold, non-expired. Universal always satisfies.
	Certification *domain.EPA609CertType
}

// serviceRequirements maps each gated service category to its requirement
// set. Categories absent from the table are allowed unconditionally.
var serviceRequirements = map[domain.ServiceType]RequirementSet{
	domain.ServiceACRefrigerant: {
		Certification: certPtr(domain.EPA609TypeI),
	},
	domain.ServiceMobileRoadside: {
		Registration: typePtr(domain.ComplianceTypeFDACSMotorVehicleRepair),
		Insurance:    insPtr(domain.InsuranceCommercialAuto),
	},
	domain.ServiceTowing: {
		Registration: typePtr(domain.ComplianceTypeFDACSMotorVehicleRepair),
		Insurance:    insPtr(domain.InsuranceOnHook),
	},
	// general_repair intentionally has no requirement set.
}

// RequirementsFor returns the requirement set for a service category and
// whether one is defined.
func RequirementsFor(serviceType domain.ServiceType) (RequirementSet, bool) {
	set, ok := serviceRequirements[serviceType]
	return set, ok
}

func typePtr(t domain.ComplianceItemType) *domain.ComplianceItemType { return &t }
func insPtr(t domain.InsuranceType) *domain.InsuranceType            { return &t }
func certPtr(t domain.EPA609CertType) *domain.EPA609CertType         { return &t }
