// ==============================================================================
// UNIT TESTS - test/unit/compliance_service_test.go
// ==============================================================================
package unit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fixly/internal/compliance"
	"fixly/internal/domain"
	"fixly/pkg/config"
	"fixly/pkg/errors"
	"fixly/pkg/logger"
	"fixly/pkg/validator"
)

// Mock repositories

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Upsert(ctx context.Context, item *domain.ComplianceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceItem), args.Error(1)
}

func (m *MockItemRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.ComplianceItem, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ComplianceItem), args.Error(1)
}

func (m *MockItemRepository) FindByProviderAndType(ctx context.Context, providerID uuid.UUID, itemType domain.ComplianceItemType) (*domain.ComplianceItem, error) {
	args := m.Called(ctx, providerID, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceItem), args.Error(1)
}

func (m *MockItemRepository) SetReviewState(ctx context.Context, item *domain.ComplianceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindPendingReview(ctx context.Context, limit, offset int) ([]*domain.ComplianceItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ComplianceItem), args.Error(1)
}

func (m *MockItemRepository) CountPendingReview(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) Upsert(ctx context.Context, policy *domain.InsurancePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.InsurancePolicy, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyRepository) FindByProviderAndType(ctx context.Context, providerID uuid.UUID, insType domain.InsuranceType) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, providerID, insType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyRepository) SetReviewState(ctx context.Context, policy *domain.InsurancePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) FindPendingReview(ctx context.Context, limit, offset int) ([]*domain.InsurancePolicy, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InsurancePolicy), args.Error(1)
}

func (m *MockPolicyRepository) CountPendingReview(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTechnicianRepository struct {
	mock.Mock
}

func (m *MockTechnicianRepository) Create(ctx context.Context, tech *domain.Technician) error {
	args := m.Called(ctx, tech)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Update(ctx context.Context, tech *domain.Technician) error {
	args := m.Called(ctx, tech)
	return args.Error(0)
}

func (m *MockTechnicianRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.Technician, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

// Helpers

type fixture struct {
	items       *MockItemRepository
	policies    *MockPolicyRepository
	technicians *MockTechnicianRepository
	providers   *MockProviderRepository
	service     *compliance.Service
}

func newFixture() *fixture {
	f := &fixture{
		items:       new(MockItemRepository),
		policies:    new(MockPolicyRepository),
		technicians: new(MockTechnicianRepository),
		providers:   new(MockProviderRepository),
	}
	cfg := &config.Config{
		Compliance: config.ComplianceConfig{
			ExpiryWarningWindow: 30 * 24 * time.Hour,
			ReviewPageSize:      50,
		},
	}
	f.service = compliance.NewService(f.items, f.policies, f.technicians, f.providers, validator.New(), cfg, logger.NewNop())
	return f
}

func activeProvider(id uuid.UUID) *domain.Provider {
	return &domain.Provider{ID: id, BusinessName: "Sunrise Mobile Repair LLC", IsActive: true}
}

func strPtr(s string) *string { return &s }

// Tests

func TestGetComplianceSummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	regNumber := "MV-1001"
	exp := time.Now().AddDate(1, 0, 0)
	verified := time.Now().Add(-24 * time.Hour)
	items := []*domain.ComplianceItem{
		{
			ID:                 uuid.New(),
			ProviderID:         providerID,
			Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
			RegistrationNumber: &regNumber,
			ExpirationDate:     &exp,
			LastVerifiedAt:     &verified,
		},
	}

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.items.On("FindByProviderID", ctx, providerID).Return(items, nil)
	f.policies.On("FindByProviderID", ctx, providerID).Return([]*domain.InsurancePolicy{}, nil)
	f.technicians.On("FindByProviderID", ctx, providerID).Return([]*domain.Technician{}, nil)

	summary, err := f.service.GetComplianceSummary(ctx, providerID)

	assert.NoError(t, err)
	assert.Equal(t, domain.OverallVerified, summary.OverallStatus)
	assert.Len(t, summary.ComplianceItems, 1)
	assert.Equal(t, domain.StatusVerified, summary.ComplianceItems[0].Status)

	// All seven insurance categories surface even with no stored rows.
	assert.Len(t, summary.InsurancePolicies, len(domain.InsuranceTypes))
	for _, view := range summary.InsurancePolicies {
		assert.Equal(t, domain.StatusNotSubmitted, view.Status)
	}

	assert.Len(t, summary.ServiceGating, len(domain.ServiceTypes))
	assert.True(t, summary.ServiceGating[domain.ServiceGeneralRepair].Allowed)
	assert.False(t, summary.ServiceGating[domain.ServiceTowing].Allowed)

	f.items.AssertExpectations(t)
	f.policies.AssertExpectations(t)
	f.technicians.AssertExpectations(t)
	f.providers.AssertExpectations(t)
}

func TestGetComplianceSummaryProviderNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	f.providers.On("FindByID", ctx, providerID).Return(nil, errors.ErrProviderNotFound)

	summary, err := f.service.GetComplianceSummary(ctx, providerID)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, errors.ErrProviderNotFound)
}

func TestUpsertComplianceItemCreatesRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.items.On("FindByProviderAndType", ctx, providerID, domain.ComplianceTypeFDACSMotorVehicleRepair).
		Return(nil, errors.ErrItemNotFound)
	f.items.On("Upsert", ctx, mock.AnythingOfType("*domain.ComplianceItem")).Return(nil)

	req := &domain.UpsertComplianceItemRequest{
		Type:               string(domain.ComplianceTypeFDACSMotorVehicleRepair),
		RegistrationNumber: strPtr("MV-1001"),
		ExpirationDate:     strPtr("2027-06-30"),
	}

	view, err := f.service.UpsertComplianceItem(ctx, providerID, req)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, view.Status)
	assert.Equal(t, providerID, view.ProviderID)
	f.items.AssertExpectations(t)
}

func TestUpsertComplianceItemEditResetsReview(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	verified := time.Now().Add(-24 * time.Hour)
	reviewerID := uuid.New()
	existing := &domain.ComplianceItem{
		ID:                 uuid.New(),
		ProviderID:         providerID,
		Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
		RegistrationNumber: strPtr("MV-1001"),
		LastVerifiedAt:     &verified,
		VerifiedBy:         &reviewerID,
	}

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.items.On("FindByProviderAndType", ctx, providerID, domain.ComplianceTypeFDACSMotorVehicleRepair).
		Return(existing, nil)

	var saved *domain.ComplianceItem
	f.items.On("Upsert", ctx, mock.AnythingOfType("*domain.ComplianceItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.ComplianceItem)
		}).
		Return(nil)

	req := &domain.UpsertComplianceItemRequest{
		Type:               string(domain.ComplianceTypeFDACSMotorVehicleRepair),
		RegistrationNumber: strPtr("MV-2002"),
	}

	view, err := f.service.UpsertComplianceItem(ctx, providerID, req)

	assert.NoError(t, err)
	assert.Nil(t, saved.LastVerifiedAt)
	assert.Nil(t, saved.VerifiedBy)
	assert.Equal(t, "MV-2002", *saved.RegistrationNumber)
	assert.Equal(t, domain.StatusPendingReview, view.Status)
}

func TestUpsertComplianceItemUnchangedKeepsVerification(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	verified := time.Now().Add(-24 * time.Hour)
	existing := &domain.ComplianceItem{
		ID:                 uuid.New(),
		ProviderID:         providerID,
		Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
		RegistrationNumber: strPtr("MV-1001"),
		LastVerifiedAt:     &verified,
	}

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.items.On("FindByProviderAndType", ctx, providerID, domain.ComplianceTypeFDACSMotorVehicleRepair).
		Return(existing, nil)
	f.items.On("Upsert", ctx, mock.AnythingOfType("*domain.ComplianceItem")).Return(nil)

	// Resubmitting identical identifying data, e.g. adding a document.
	req := &domain.UpsertComplianceItemRequest{
		Type:               string(domain.ComplianceTypeFDACSMotorVehicleRepair),
		RegistrationNumber: strPtr("MV-1001"),
		DocumentUploads:    []string{"https://uploads.fixly.dev/docs/registration.pdf"},
	}

	view, err := f.service.UpsertComplianceItem(ctx, providerID, req)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusVerified, view.Status)
}

func TestUpsertComplianceItemUnknownType(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := &domain.UpsertComplianceItemRequest{Type: "boat_repair_license"}

	view, err := f.service.UpsertComplianceItem(ctx, uuid.New(), req)

	assert.Nil(t, view)
	var verrs compliance.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, "type", verrs[0].Field)
}

func TestUpsertComplianceItemInactiveProvider(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	provider := activeProvider(providerID)
	provider.IsActive = false
	f.providers.On("FindByID", ctx, providerID).Return(provider, nil)

	req := &domain.UpsertComplianceItemRequest{
		Type: string(domain.ComplianceTypeFDACSMotorVehicleRepair),
	}

	view, err := f.service.UpsertComplianceItem(ctx, providerID, req)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, errors.ErrProviderInactive)
}

func TestAutoCreateComplianceItemsSkipsExisting(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	existing := &domain.ComplianceItem{
		ID:         uuid.New(),
		ProviderID: providerID,
		Type:       domain.ComplianceTypeFDACSMotorVehicleRepair,
	}

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.items.On("FindByProviderAndType", ctx, providerID, domain.ComplianceTypeFDACSMotorVehicleRepair).
		Return(existing, nil)

	created, err := f.service.AutoCreateComplianceItems(ctx, providerID)

	assert.NoError(t, err)
	assert.Empty(t, created)
	f.items.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAutoCreateComplianceItemsSeedsMandatory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.items.On("FindByProviderAndType", ctx, providerID, mock.AnythingOfType("domain.ComplianceItemType")).
		Return(nil, errors.ErrItemNotFound)
	f.items.On("Upsert", ctx, mock.AnythingOfType("*domain.ComplianceItem")).Return(nil)

	created, err := f.service.AutoCreateComplianceItems(ctx, providerID)

	assert.NoError(t, err)
	assert.Len(t, created, len(domain.MandatoryComplianceTypes))
	for _, view := range created {
		assert.Equal(t, domain.StatusNotSubmitted, view.Status)
	}
}

func TestUpsertInsurancePolicyRequiresCarrierWhenCovered(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := &domain.UpsertInsurancePolicyRequest{
		Type:        string(domain.InsuranceGeneralLiability),
		HasCoverage: true,
	}

	view, err := f.service.UpsertInsurancePolicy(ctx, uuid.New(), req)

	assert.Nil(t, view)
	var verrs compliance.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpsertInsurancePolicyDeclareNoCoverage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.policies.On("FindByProviderAndType", ctx, providerID, domain.InsuranceWorkersComp).
		Return(nil, errors.ErrPolicyNotFound)
	f.policies.On("Upsert", ctx, mock.AnythingOfType("*domain.InsurancePolicy")).Return(nil)

	req := &domain.UpsertInsurancePolicyRequest{
		Type:        string(domain.InsuranceWorkersComp),
		HasCoverage: false,
	}

	view, err := f.service.UpsertInsurancePolicy(ctx, providerID, req)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusNotSubmitted, view.Status)
	f.policies.AssertExpectations(t)
}

func TestUpsertTechnicianCreate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.technicians.On("Create", ctx, mock.AnythingOfType("*domain.Technician")).Return(nil)

	req := &domain.UpsertTechnicianRequest{
		FullName:         "Maria Alvarez",
		Role:             string(domain.RoleLeadTechnician),
		EPA609CertNumber: strPtr("EPA-609-1"),
		EPA609CertType:   strPtr(string(domain.EPA609Universal)),
		EPA609CertExpiry: strPtr("2028-01-31"),
	}

	tech, err := f.service.UpsertTechnician(ctx, providerID, req)

	assert.NoError(t, err)
	assert.True(t, tech.IsActive)
	assert.Equal(t, domain.RoleLeadTechnician, tech.Role)
	assert.Equal(t, domain.EPA609Universal, *tech.EPA609CertType)
	f.technicians.AssertExpectations(t)
}

func TestUpsertTechnicianWrongProvider(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()
	techID := uuid.New()

	other := &domain.Technician{ID: techID, ProviderID: uuid.New(), FullName: "Sam Ortiz", IsActive: true}

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.technicians.On("FindByID", ctx, techID).Return(other, nil)

	idStr := techID.String()
	req := &domain.UpsertTechnicianRequest{
		ID:       &idStr,
		FullName: "Sam Ortiz",
		Role:     string(domain.RoleTechnician),
	}

	tech, err := f.service.UpsertTechnician(ctx, providerID, req)

	assert.Nil(t, tech)
	assert.ErrorIs(t, err, errors.ErrTechnicianNotFound)
	f.technicians.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeactivateTechnician(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()
	techID := uuid.New()

	tech := &domain.Technician{ID: techID, ProviderID: providerID, FullName: "Maria Alvarez", IsActive: true}

	f.technicians.On("FindByID", ctx, techID).Return(tech, nil)
	f.technicians.On("Deactivate", ctx, techID).Return(nil)

	err := f.service.DeactivateTechnician(ctx, providerID, techID)

	assert.NoError(t, err)
	f.technicians.AssertExpectations(t)
}

func TestVerifyComplianceItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := uuid.New()
	reviewerID := uuid.New()

	item := &domain.ComplianceItem{
		ID:                 itemID,
		ProviderID:         uuid.New(),
		Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
		RegistrationNumber: strPtr("MV-1001"),
	}

	f.items.On("FindByID", ctx, itemID).Return(item, nil)
	f.items.On("SetReviewState", ctx, mock.AnythingOfType("*domain.ComplianceItem")).Return(nil)

	view, err := f.service.VerifyComplianceItem(ctx, itemID, reviewerID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusVerified, view.Status)
	assert.Equal(t, reviewerID, *view.VerifiedBy)
	f.items.AssertExpectations(t)
}

func TestVerifyComplianceItemNothingToReview(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := uuid.New()

	// Auto-created blank record: nothing has been submitted yet.
	item := &domain.ComplianceItem{
		ID:   itemID,
		Type: domain.ComplianceTypeFDACSMotorVehicleRepair,
	}

	f.items.On("FindByID", ctx, itemID).Return(item, nil)

	view, err := f.service.VerifyComplianceItem(ctx, itemID, uuid.New())

	assert.Nil(t, view)
	assert.ErrorIs(t, err, errors.ErrNothingToReview)
	f.items.AssertNotCalled(t, "SetReviewState", mock.Anything, mock.Anything)
}

func TestRejectComplianceItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := uuid.New()
	reviewerID := uuid.New()

	verified := time.Now().Add(-24 * time.Hour)
	item := &domain.ComplianceItem{
		ID:                 itemID,
		Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
		RegistrationNumber: strPtr("MV-1001"),
		LastVerifiedAt:     &verified,
	}

	f.items.On("FindByID", ctx, itemID).Return(item, nil)
	f.items.On("SetReviewState", ctx, mock.AnythingOfType("*domain.ComplianceItem")).Return(nil)

	view, err := f.service.RejectComplianceItem(ctx, itemID, reviewerID, "number does not match state records")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, view.Status)
	assert.Nil(t, view.LastVerifiedAt)
	assert.Equal(t, "number does not match state records", *view.RejectedReason)
}

func TestRejectComplianceItemRequiresReason(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	view, err := f.service.RejectComplianceItem(ctx, uuid.New(), uuid.New(), "")

	assert.Nil(t, view)
	var verrs compliance.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestRejectComplianceItemAlreadyRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := uuid.New()

	rejected := time.Now().Add(-24 * time.Hour)
	reason := "number does not match state records"
	item := &domain.ComplianceItem{
		ID:                 itemID,
		Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
		RegistrationNumber: strPtr("MV-1001"),
		RejectedAt:         &rejected,
		RejectedReason:     &reason,
	}

	f.items.On("FindByID", ctx, itemID).Return(item, nil)

	view, err := f.service.RejectComplianceItem(ctx, itemID, uuid.New(), "still wrong")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, errors.ErrAlreadyRejected)
	f.items.AssertNotCalled(t, "SetReviewState", mock.Anything, mock.Anything)
}

func TestRejectInsurancePolicyAlreadyRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	policyID := uuid.New()

	rejected := time.Now().Add(-24 * time.Hour)
	reason := "carrier could not confirm the policy"
	policy := &domain.InsurancePolicy{
		ID:             policyID,
		Type:           domain.InsuranceGeneralLiability,
		HasCoverage:    true,
		CarrierName:    strPtr("Gulfstream Mutual"),
		RejectedAt:     &rejected,
		RejectedReason: &reason,
	}

	f.policies.On("FindByID", ctx, policyID).Return(policy, nil)

	view, err := f.service.RejectInsurancePolicy(ctx, policyID, uuid.New(), "still unconfirmed")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, errors.ErrAlreadyRejected)
	f.policies.AssertNotCalled(t, "SetReviewState", mock.Anything, mock.Anything)
}

func TestVerifyInsurancePolicyNothingToReview(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	policyID := uuid.New()

	policy := &domain.InsurancePolicy{
		ID:          policyID,
		Type:        domain.InsuranceGeneralLiability,
		HasCoverage: false,
	}

	f.policies.On("FindByID", ctx, policyID).Return(policy, nil)

	view, err := f.service.VerifyInsurancePolicy(ctx, policyID, uuid.New())

	assert.Nil(t, view)
	assert.ErrorIs(t, err, errors.ErrNothingToReview)
}

func TestCheckServiceEligibility(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	providerID := uuid.New()

	f.providers.On("FindByID", ctx, providerID).Return(activeProvider(providerID), nil)
	f.items.On("FindByProviderID", ctx, providerID).Return([]*domain.ComplianceItem{}, nil)
	f.policies.On("FindByProviderID", ctx, providerID).Return([]*domain.InsurancePolicy{}, nil)
	f.technicians.On("FindByProviderID", ctx, providerID).Return([]*domain.Technician{}, nil)

	result, err := f.service.CheckServiceEligibility(ctx, providerID, domain.ServiceACRefrigerant)

	assert.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Contains(t, result.Reason, "EPA 609")

	general, err := f.service.CheckServiceEligibility(ctx, providerID, domain.ServiceGeneralRepair)
	assert.NoError(t, err)
	assert.True(t, general.Allowed)
}

func TestCheckServiceEligibilityUnknownServiceType(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.service.CheckServiceEligibility(ctx, uuid.New(), domain.ServiceType("lawn_care"))

	assert.ErrorIs(t, err, errors.ErrUnknownServiceType)
	assert.False(t, result.Allowed)
	f.providers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestListPendingReview(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	pendingItem := &domain.ComplianceItem{
		ID:                 uuid.New(),
		ProviderID:         uuid.New(),
		Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
		RegistrationNumber: strPtr("MV-1001"),
	}
	carrier := "Gulfstream Mutual"
	pendingPolicy := &domain.InsurancePolicy{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		Type:        domain.InsuranceGeneralLiability,
		HasCoverage: true,
		CarrierName: &carrier,
	}

	f.items.On("FindPendingReview", ctx, 50, 0).Return([]*domain.ComplianceItem{pendingItem}, nil)
	f.items.On("CountPendingReview", ctx).Return(1, nil)
	f.policies.On("FindPendingReview", ctx, 50, 0).Return([]*domain.InsurancePolicy{pendingPolicy}, nil)
	f.policies.On("CountPendingReview", ctx).Return(1, nil)

	queue, err := f.service.ListPendingReview(ctx, 0, 0)

	assert.NoError(t, err)
	assert.Len(t, queue.Items, 1)
	assert.Len(t, queue.Policies, 1)
	assert.Equal(t, domain.StatusPendingReview, queue.Items[0].Status)
	assert.Equal(t, domain.StatusPendingReview, queue.Policies[0].Status)
	assert.Equal(t, 1, queue.TotalItems)
	assert.Equal(t, 1, queue.TotalPolicies)
	assert.Equal(t, 50, queue.Limit)
}
