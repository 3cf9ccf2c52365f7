package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fixly/internal/domain"
)

var aggNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestAggregateOverallStatusNotEligible(t *testing.T) {
	status := AggregateOverallStatus(nil, nil, nil, aggNow)
	assert.Equal(t, domain.OverallNotEligible, status)
}

func TestAggregateOverallStatusNotEligibleDespiteVerifiedPolicies(t *testing.T) {
	// Zero compliance items means not eligible even when every insurance
	// category is verified: the item check runs before any policy look.
	policies := make([]*domain.InsurancePolicy, 0, len(domain.InsuranceTypes))
	for _, insType := range domain.InsuranceTypes {
		policies = append(policies, verifiedPolicy(insType))
	}

	status := AggregateOverallStatus(nil, policies, nil, aggNow)
	assert.Equal(t, domain.OverallNotEligible, status)
}

func TestAggregateOverallStatusPendingCoreNotSubmitted(t *testing.T) {
	// Auto-created blank records exist but nothing is filled in yet.
	items := []*domain.ComplianceItem{
		{Type: domain.ComplianceTypeFDACSMotorVehicleRepair},
	}
	status := AggregateOverallStatus(items, nil, nil, aggNow)
	assert.Equal(t, domain.OverallPending, status)
}

func TestAggregateOverallStatusPendingCoreAwaitingReview(t *testing.T) {
	items := []*domain.ComplianceItem{
		{
			Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
			RegistrationNumber: strPtr("MV-1001"),
		},
	}
	status := AggregateOverallStatus(items, nil, nil, aggNow)
	assert.Equal(t, domain.OverallPending, status)
}

func TestAggregateOverallStatusVerified(t *testing.T) {
	items := []*domain.ComplianceItem{verifiedItem(domain.ComplianceTypeFDACSMotorVehicleRepair)}
	status := AggregateOverallStatus(items, nil, nil, aggNow)
	assert.Equal(t, domain.OverallVerified, status)
}

func TestAggregateOverallStatusRestrictedExpiredCore(t *testing.T) {
	item := verifiedItem(domain.ComplianceTypeFDACSMotorVehicleRepair)
	expired := aggNow.AddDate(0, -1, 0)
	item.ExpirationDate = &expired

	status := AggregateOverallStatus([]*domain.ComplianceItem{item}, nil, nil, aggNow)
	assert.Equal(t, domain.OverallRestricted, status)
}

func TestAggregateOverallStatusRestrictedRejectedCore(t *testing.T) {
	item := verifiedItem(domain.ComplianceTypeFDACSMotorVehicleRepair)
	item.LastVerifiedAt = nil
	rejected := aggNow.Add(-time.Hour)
	item.RejectedAt = &rejected

	status := AggregateOverallStatus([]*domain.ComplianceItem{item}, nil, nil, aggNow)
	assert.Equal(t, domain.OverallRestricted, status)
}

func TestAggregateOverallStatusPendingPolicyUnderReview(t *testing.T) {
	// Core registration verified but a declared coverage still awaits
	// review: the provider is not fully settled.
	items := []*domain.ComplianceItem{verifiedItem(domain.ComplianceTypeFDACSMotorVehicleRepair)}
	policies := []*domain.InsurancePolicy{
		{
			Type:        domain.InsuranceGeneralLiability,
			HasCoverage: true,
			CarrierName: strPtr("Gulfstream Mutual"),
		},
	}

	status := AggregateOverallStatus(items, policies, nil, aggNow)
	assert.Equal(t, domain.OverallPending, status)
}

func TestAggregateOverallStatusNoCoverageDeclarationsDoNotHold(t *testing.T) {
	// Declared-no-coverage records never drag the status back to pending.
	items := []*domain.ComplianceItem{verifiedItem(domain.ComplianceTypeFDACSMotorVehicleRepair)}
	policies := make([]*domain.InsurancePolicy, 0, len(domain.InsuranceTypes))
	for _, insType := range domain.InsuranceTypes {
		policies = append(policies, &domain.InsurancePolicy{Type: insType, HasCoverage: false})
	}

	status := AggregateOverallStatus(items, policies, nil, aggNow)
	assert.Equal(t, domain.OverallVerified, status)
}

func TestAggregateOverallStatusCorePrecedence(t *testing.T) {
	// An expired core registration wins over a pending policy: restricted
	// sits above pending in the rollup.
	item := verifiedItem(domain.ComplianceTypeFDACSMotorVehicleRepair)
	expired := aggNow.AddDate(0, -1, 0)
	item.ExpirationDate = &expired

	policies := []*domain.InsurancePolicy{
		{
			Type:        domain.InsuranceGeneralLiability,
			HasCoverage: true,
			CarrierName: strPtr("Gulfstream Mutual"),
		},
	}

	status := AggregateOverallStatus([]*domain.ComplianceItem{item}, policies, nil, aggNow)
	assert.Equal(t, domain.OverallRestricted, status)
}

func TestAggregateOverallStatusSecondaryItemDoesNotRestrict(t *testing.T) {
	// Only the core registration drives restricted; a lapsed secondary
	// registration leaves a verified provider verified.
	core := verifiedItem(domain.ComplianceTypeFDACSMotorVehicleRepair)
	secondary := verifiedItem(domain.ComplianceTypeLocalBusinessTax)
	expired := aggNow.AddDate(0, -1, 0)
	secondary.ExpirationDate = &expired

	status := AggregateOverallStatus([]*domain.ComplianceItem{core, secondary}, nil, nil, aggNow)
	assert.Equal(t, domain.OverallVerified, status)
}
