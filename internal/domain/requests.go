// ==============================================================================
// API REQUEST PAYLOADS - internal/domain/requests.go
// ==============================================================================

package domain

import "github.com/shopspring/decimal"

// UpsertComplianceItemRequest is the provider-facing payload for declaring
// or updating a regulatory registration. Dates travel as YYYY-MM-DD.
type UpsertComplianceItemRequest struct {
	Type               string   `json:"type" validate:"required"`
	RegistrationNumber *string  `json:"registration_number,omitempty" validate:"omitempty,min=2,max=64"`
	ExpirationDate     *string  `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DocumentUploads    []string `json:"document_uploads,omitempty" validate:"omitempty,dive,url"`
}

// UpsertInsurancePolicyRequest is the provider-facing payload for declaring
// coverage in one of the seven categories. Carrier and policy number are
// mandatory whenever coverage is declared.
type UpsertInsurancePolicyRequest struct {
	Type           string           `json:"type" validate:"required"`
	HasCoverage    bool             `json:"has_coverage"`
	CarrierName    *string          `json:"carrier_name,omitempty" validate:"required_if=HasCoverage true,omitempty,min=2,max=128"`
	PolicyNumber   *string          `json:"policy_number,omitempty" validate:"required_if=HasCoverage true,omitempty,min=2,max=64"`
	ExpirationDate *string          `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CoverageAmount *decimal.Decimal `json:"coverage_amount,omitempty" validate:"omitempty,gt=0"`
	COIUploads     []string         `json:"coi_uploads,omitempty" validate:"omitempty,dive,url"`
}

// UpsertTechnicianRequest creates a technician when ID is absent and
// updates the existing record when present.
type UpsertTechnicianRequest struct {
	ID                *string  `json:"id,omitempty" validate:"omitempty,uuid4"`
	FullName          string   `json:"full_name" validate:"required,min=2,max=128"`
	Role              string   `json:"role" validate:"required"`
	EPA609CertNumber  *string  `json:"epa609_cert_number,omitempty" validate:"omitempty,min=2,max=64"`
	EPA609CertType    *string  `json:"epa609_cert_type,omitempty" validate:"omitempty"`
	EPA609CertExpiry  *string  `json:"epa609_cert_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EPA609CertUploads []string `json:"epa609_cert_uploads,omitempty" validate:"omitempty,dive,url"`
}

// RejectRequest carries the reviewer's rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=512"`
}
