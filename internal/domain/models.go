// ==============================================================================
// COMPLIANCE DOMAIN MODELS - internal/domain/models.go
// ==============================================================================

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Provider is the marketplace repair business owning compliance records.
// Account/profile management lives in the provider service; this service
// only needs existence and active state.
type Provider struct {
	ID           uuid.UUID `json:"id" db:"id"`
	BusinessName string    `json:"business_name" db:"business_name"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ComplianceItem is a regulatory registration record. One row per
// (provider_id, type); created on first declaration, superseded in place,
// never hard-deleted.
type ComplianceItem struct {
	ID                 uuid.UUID          `json:"id" db:"id"`
	ProviderID         uuid.UUID          `json:"provider_id" db:"provider_id"`
	Type               ComplianceItemType `json:"type" db:"type"`
	RegistrationNumber *string            `json:"registration_number,omitempty" db:"registration_number"`
	ExpirationDate     *time.Time         `json:"expiration_date,omitempty" db:"expiration_date"`
	DocumentUploads    pq.StringArray     `json:"document_uploads" db:"document_uploads"`
	LastVerifiedAt     *time.Time         `json:"last_verified_at,omitempty" db:"last_verified_at"`
	VerifiedBy         *uuid.UUID         `json:"verified_by,omitempty" db:"verified_by"`
	RejectedAt         *time.Time         `json:"rejected_at,omitempty" db:"rejected_at"`
	RejectedReason     *string            `json:"rejected_reason,omitempty" db:"rejected_reason"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// InsurancePolicy is a declared coverage record. Exactly one row per
// (provider_id, type); HasCoverage=false is a valid declared state.
type InsurancePolicy struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	ProviderID     uuid.UUID        `json:"provider_id" db:"provider_id"`
	Type           InsuranceType    `json:"type" db:"type"`
	HasCoverage    bool             `json:"has_coverage" db:"has_coverage"`
	CarrierName    *string          `json:"carrier_name,omitempty" db:"carrier_name"`
	PolicyNumber   *string          `json:"policy_number,omitempty" db:"policy_number"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty" db:"expiration_date"`
	CoverageAmount *decimal.Decimal `json:"coverage_amount,omitempty" db:"coverage_amount"`
	COIUploads     pq.StringArray   `json:"coi_uploads" db:"coi_uploads"`
	LastVerifiedAt *time.Time       `json:"last_verified_at,omitempty" db:"last_verified_at"`
	VerifiedBy     *uuid.UUID       `json:"verified_by,omitempty" db:"verified_by"`
	RejectedAt     *time.Time       `json:"rejected_at,omitempty" db:"rejected_at"`
	RejectedReason *string          `json:"rejected_reason,omitempty" db:"rejected_reason"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

// Technician is a roster member with optional EPA 609 certification.
// Soft-deleted via IsActive; inactive technicians never count toward
// eligibility.
type Technician struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	ProviderID        uuid.UUID       `json:"provider_id" db:"provider_id"`
	FullName          string          `json:"full_name" db:"full_name"`
	Role              TechnicianRole  `json:"role" db:"role"`
	IsActive          bool            `json:"is_active" db:"is_active"`
	EPA609CertNumber  *string         `json:"epa609_cert_number,omitempty" db:"epa609_cert_number"`
	EPA609CertType    *EPA609CertType `json:"epa609_cert_type,omitempty" db:"epa609_cert_type"`
	EPA609CertExpiry  *time.Time      `json:"epa609_cert_expiry,omitempty" db:"epa609_cert_expiry"`
	EPA609CertUploads pq.StringArray  `json:"epa609_cert_uploads" db:"epa609_cert_uploads"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// AuditLog records reviewer and provider actions against compliance records.
type AuditLog struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	Action     string     `json:"action" db:"action"`
	IPAddress  *string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent  *string    `json:"user_agent,omitempty" db:"user_agent"`
	StatusCode *int       `json:"status_code,omitempty" db:"status_code"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// ServiceGateResult is the pass/fail decision for one service category.
// Reason carries the first failing clause's human-readable explanation.
type ServiceGateResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ComplianceItemView pairs a stored item with its freshly resolved status.
type ComplianceItemView struct {
	ComplianceItem
	Label        string     `json:"label"`
	Status       ItemStatus `json:"status"`
	ExpiringSoon bool       `json:"expiring_soon"`
}

// InsurancePolicyView pairs a stored policy with its freshly resolved status.
type InsurancePolicyView struct {
	InsurancePolicy
	Label        string     `json:"label"`
	Status       ItemStatus `json:"status"`
	ExpiringSoon bool       `json:"expiring_soon"`
}

// ComplianceSummary is the read-only aggregate consumed by the provider
// dashboard. Insurance policies always cover all seven categories; types
// the provider never touched appear as not-submitted placeholders.
type ComplianceSummary struct {
	ProviderID        uuid.UUID                         `json:"provider_id"`
	OverallStatus     OverallStatus                     `json:"overall_status"`
	ComplianceItems   []ComplianceItemView              `json:"compliance_items"`
	InsurancePolicies []InsurancePolicyView             `json:"insurance_policies"`
	Technicians       []*Technician                     `json:"technicians"`
	ServiceGating     map[ServiceType]ServiceGateResult `json:"service_gating"`
	EvaluatedAt       time.Time                         `json:"evaluated_at"`
}
