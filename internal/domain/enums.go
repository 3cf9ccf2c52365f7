// ==============================================================================
// COMPLIANCE ENUMERATIONS - internal/domain/enums.go
// ==============================================================================
// Closed enum sets exposed at the API boundary. These are fixed: the rule
// table and the registries can only reference values defined here.
// ==============================================================================

package domain

import "fmt"

// ComplianceItemType identifies a regulatory registration a provider must hold.
type ComplianceItemType string

const (
	ComplianceTypeFDACSMotorVehicleRepair ComplianceItemType = "fdacs_motor_vehicle_repair"
	ComplianceTypeLocalBusinessTax        ComplianceItemType = "local_business_tax"
)

// ComplianceItemTypes lists every supported registration type.
var ComplianceItemTypes = []ComplianceItemType{
	ComplianceTypeFDACSMotorVehicleRepair,
	ComplianceTypeLocalBusinessTax,
}

// MandatoryComplianceTypes are seeded for every provider entering the
// compliance flow. The first entry is the jurisdiction-mandatory core
// registration that drives the overall status.
var MandatoryComplianceTypes = []ComplianceItemType{
	ComplianceTypeFDACSMotorVehicleRepair,
}

// CoreComplianceType is the registration the overall status aggregation
// pivots on.
const CoreComplianceType = ComplianceTypeFDACSMotorVehicleRepair

// Label returns the human-readable name shown in the mobile client.
func (t ComplianceItemType) Label() string {
	switch t {
	case ComplianceTypeFDACSMotorVehicleRepair:
		return "FDACS Motor Vehicle Repair Registration"
	case ComplianceTypeLocalBusinessTax:
		return "Local Business Tax Receipt"
	default:
		return string(t)
	}
}

// ParseComplianceItemType validates a wire value against the closed set.
func ParseComplianceItemType(s string) (ComplianceItemType, error) {
	for _, t := range ComplianceItemTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown compliance item type: %q", s)
}

// InsuranceType identifies one of the seven fixed insurance categories.
type InsuranceType string

const (
	InsuranceGeneralLiability      InsuranceType = "general_liability"
	InsuranceGarageLiability       InsuranceType = "garage_liability"
	InsuranceGarageKeepers         InsuranceType = "garage_keepers"
	InsuranceCommercialAuto        InsuranceType = "commercial_auto"
	InsuranceOnHook                InsuranceType = "on_hook"
	InsuranceWorkersComp           InsuranceType = "workers_comp"
	InsuranceProfessionalLiability InsuranceType = "professional_liability"
)

// InsuranceTypes lists every supported coverage category. Every provider
// conceptually holds one record per category, defaulting to no coverage.
var InsuranceTypes = []InsuranceType{
	InsuranceGeneralLiability,
	InsuranceGarageLiability,
	InsuranceGarageKeepers,
	InsuranceCommercialAuto,
	InsuranceOnHook,
	InsuranceWorkersComp,
	InsuranceProfessionalLiability,
}

// Label returns the human-readable name shown in the mobile client.
func (t InsuranceType) Label() string {
	switch t {
	case InsuranceGeneralLiability:
		return "General Liability"
	case InsuranceGarageLiability:
		return "Garage Liability"
	case InsuranceGarageKeepers:
		return "Garage Keepers"
	case InsuranceCommercialAuto:
		return "Commercial Auto"
	case InsuranceOnHook:
		return "On-Hook / Towing"
	case InsuranceWorkersComp:
		return "Workers' Compensation"
	case InsuranceProfessionalLiability:
		return "Professional Liability"
	default:
		return string(t)
	}
}

// ParseInsuranceType validates a wire value against the closed set.
func ParseInsuranceType(s string) (InsuranceType, error) {
	for _, t := range InsuranceTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown insurance type: %q", s)
}

// TechnicianRole classifies a technician on the provider's roster.
type TechnicianRole string

const (
	RoleLeadTechnician TechnicianRole = "lead_technician"
	RoleTechnician     TechnicianRole = "technician"
	RoleApprentice     TechnicianRole = "apprentice"
	RoleHelper         TechnicianRole = "helper"
	RoleOther          TechnicianRole = "other"
)

// TechnicianRoles lists every supported role.
var TechnicianRoles = []TechnicianRole{
	RoleLeadTechnician,
	RoleTechnician,
	RoleApprentice,
	RoleHelper,
	RoleOther,
}

// ParseTechnicianRole validates a wire value against the closed set.
func ParseTechnicianRole(s string) (TechnicianRole, error) {
	for _, r := range TechnicianRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown technician role: %q", s)
}

// EPA609CertType classifies an EPA Section 609 refrigerant-handling
// certification. Universal satisfies any required type.
type EPA609CertType string

const (
	EPA609TypeI     EPA609CertType = "type_i"
	EPA609TypeII    EPA609CertType = "type_ii"
	EPA609TypeIII   EPA609CertType = "type_iii"
	EPA609Universal EPA609CertType = "universal"
)

// EPA609CertTypes lists every supported certification type.
var EPA609CertTypes = []EPA609CertType{
	EPA609TypeI,
	EPA609TypeII,
	EPA609TypeIII,
	EPA609Universal,
}

// Satisfies reports whether a held certification covers the required type.
func (t EPA609CertType) Satisfies(required EPA609CertType) bool {
	return t == required || t == EPA609Universal
}

// ParseEPA609CertType validates a wire value against the closed set.
func ParseEPA609CertType(s string) (EPA609CertType, error) {
	for _, t := range EPA609CertTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown epa 609 certification type: %q", s)
}

// ItemStatus is the live status derived for a compliance item or insurance
// policy from its stored fields and the evaluation time. It is never
// persisted as truth.
type ItemStatus string

const (
	StatusNotSubmitted  ItemStatus = "not_submitted"
	StatusPendingReview ItemStatus = "pending_review"
	StatusVerified      ItemStatus = "verified"
	StatusExpired       ItemStatus = "expired"
	StatusRejected      ItemStatus = "rejected"
)

// OverallStatus is the provider-wide compliance summary. It is advisory;
// per-action permission always comes from the service eligibility gate.
type OverallStatus string

const (
	OverallVerified    OverallStatus = "verified"
	OverallPending     OverallStatus = "pending"
	OverallRestricted  OverallStatus = "restricted"
	OverallNotEligible OverallStatus = "not_eligible"
)

// ServiceType identifies a service category a provider may offer.
type ServiceType string

const (
	ServiceACRefrigerant  ServiceType = "ac_refrigerant_service"
	ServiceGeneralRepair  ServiceType = "general_repair"
	ServiceMobileRoadside ServiceType = "mobile_roadside"
	ServiceTowing         ServiceType = "towing"
)

// ServiceTypes lists every service category gated by the engine.
var ServiceTypes = []ServiceType{
	ServiceACRefrigerant,
	ServiceGeneralRepair,
	ServiceMobileRoadside,
	ServiceTowing,
}

// ParseServiceType validates a wire value against the closed set.
func ParseServiceType(s string) (ServiceType, error) {
	for _, t := range ServiceTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown service type: %q", s)
}
