// ==============================================================================
// COMPLIANCE SERVICE - internal/compliance/service.go
// ==============================================================================
// Registry orchestration for the provider compliance engine: validated
// type-keyed upserts, reviewer verify/reject capabilities, and the summary
// aggregate consumed by the provider dashboard.
// ==============================================================================

package compliance

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"fixly/internal/domain"
	"fixly/pkg/config"
	fixlyerrors "fixly/pkg/errors"
	"fixly/pkg/logger"
	"fixly/pkg/validator"

	"github.com/google/uuid"
)

// ==============================================================================
// REPOSITORY INTERFACES
// ==============================================================================

// ItemRepository persists regulatory registration records.
type ItemRepository interface {
	Upsert(ctx context.Context, item *domain.ComplianceItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceItem, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.ComplianceItem, error)
	FindByProviderAndType(ctx context.Context, providerID uuid.UUID, itemType domain.ComplianceItemType) (*domain.ComplianceItem, error)
	SetReviewState(ctx context.Context, item *domain.ComplianceItem) error
	FindPendingReview(ctx context.Context, limit, offset int) ([]*domain.ComplianceItem, error)
	CountPendingReview(ctx context.Context) (int, error)
}

// PolicyRepository persists insurance coverage declarations.
type PolicyRepository interface {
	Upsert(ctx context.Context, policy *domain.InsurancePolicy) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.InsurancePolicy, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.InsurancePolicy, error)
	FindByProviderAndType(ctx context.Context, providerID uuid.UUID, insType domain.InsuranceType) (*domain.InsurancePolicy, error)
	SetReviewState(ctx context.Context, policy *domain.InsurancePolicy) error
	FindPendingReview(ctx context.Context, limit, offset int) ([]*domain.InsurancePolicy, error)
	CountPendingReview(ctx context.Context) (int, error)
}

// TechnicianRepository persists the provider's technician roster.
type TechnicianRepository interface {
	Create(ctx context.Context, tech *domain.Technician) error
	Update(ctx context.Context, tech *domain.Technician) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.Technician, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// ProviderRepository resolves provider existence for registry operations.
type ProviderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
}

// ==============================================================================
// VALIDATION ERRORS
// ==============================================================================

// ValidationError describes a single rejected field in an upsert payload.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every rejected field so the client can render
// them against the form.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func fieldError(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

func structuredErrors(fields map[string]string) ValidationErrors {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	errs := make(ValidationErrors, 0, len(fields))
	for _, k := range keys {
		errs = append(errs, ValidationError{Field: k, Message: fields[k]})
	}
	return errs
}

// ==============================================================================
// SERVICE
// ==============================================================================

// PendingReviewQueue is the admin-facing list of records awaiting review.
type PendingReviewQueue struct {
	Items         []domain.ComplianceItemView  `json:"items"`
	Policies      []domain.InsurancePolicyView `json:"policies"`
	TotalItems    int                          `json:"total_items"`
	TotalPolicies int                          `json:"total_policies"`
	Limit         int                          `json:"limit"`
	Offset        int                          `json:"offset"`
}

// Service wires the registries to the pure engine functions.
type Service struct {
	items       ItemRepository
	policies    PolicyRepository
	technicians TechnicianRepository
	providers   ProviderRepository
	validator   *validator.Validator
	cfg         *config.Config
	logger      logger.Logger
}

// NewService constructs the compliance service with all registry
// dependencies.
func NewService(
	items ItemRepository,
	policies PolicyRepository,
	technicians TechnicianRepository,
	providers ProviderRepository,
	val *validator.Validator,
	cfg *config.Config,
	log logger.Logger,
) *Service {
	return &Service{
		items:       items,
		policies:    policies,
		technicians: technicians,
		providers:   providers,
		validator:   val,
		cfg:         cfg,
		logger:      log,
	}
}

// ==============================================================================
// SUMMARY
// ==============================================================================

// GetComplianceSummary builds the dashboard aggregate: overall status,
// per-record live statuses, roster, and the gate decision for every service
// category. Everything is evaluated against a single now.
func (s *Service) GetComplianceSummary(ctx context.Context, providerID uuid.UUID) (*domain.ComplianceSummary, error) {
	if _, err := s.providers.FindByID(ctx, providerID); err != nil {
		return nil, err
	}

	items, policies, technicians, err := s.loadSnapshot(ctx, providerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &domain.ComplianceSummary{
		ProviderID:        providerID,
		OverallStatus:     AggregateOverallStatus(items, policies, technicians, now),
		ComplianceItems:   s.itemViews(items, now),
		InsurancePolicies: s.policyViews(providerID, policies, now),
		Technicians:       technicians,
		ServiceGating:     EvaluateAllGates(items, policies, technicians, now),
		EvaluatedAt:       now,
	}
	return summary, nil
}

// CheckServiceEligibility answers the per-action permission question for a
// single service category.
func (s *Service) CheckServiceEligibility(ctx context.Context, providerID uuid.UUID, serviceType domain.ServiceType) (domain.ServiceGateResult, error) {
	if _, err := domain.ParseServiceType(string(serviceType)); err != nil {
		return domain.ServiceGateResult{}, fixlyerrors.ErrUnknownServiceType
	}
	if _, err := s.providers.FindByID(ctx, providerID); err != nil {
		return domain.ServiceGateResult{}, err
	}

	items, policies, technicians, err := s.loadSnapshot(ctx, providerID)
	if err != nil {
		return domain.ServiceGateResult{}, err
	}

	return EvaluateGate(serviceType, items, policies, technicians, time.Now()), nil
}

func (s *Service) loadSnapshot(ctx context.Context, providerID uuid.UUID) ([]*domain.ComplianceItem, []*domain.InsurancePolicy, []*domain.Technician, error) {
	items, err := s.items.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, nil, nil, err
	}
	policies, err := s.policies.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, nil, nil, err
	}
	technicians, err := s.technicians.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, nil, nil, err
	}
	return items, policies, technicians, nil
}

func (s *Service) itemViews(items []*domain.ComplianceItem, now time.Time) []domain.ComplianceItemView {
	views := make([]domain.ComplianceItemView, 0, len(items))
	for _, item := range items {
		views = append(views, s.itemView(item, now))
	}
	return views
}

func (s *Service) itemView(item *domain.ComplianceItem, now time.Time) domain.ComplianceItemView {
	status := ResolveItemStatus(item, now)
	return domain.ComplianceItemView{
		ComplianceItem: *item,
		Label:          item.Type.Label(),
		Status:         status,
		ExpiringSoon:   expiringSoon(status, item.ExpirationDate, now, s.warningWindow()),
	}
}

// policyViews returns one view per insurance category. Categories with no
// stored record get a not-submitted placeholder so all seven always exist
// at the boundary.
func (s *Service) policyViews(providerID uuid.UUID, policies []*domain.InsurancePolicy, now time.Time) []domain.InsurancePolicyView {
	byType := make(map[domain.InsuranceType]*domain.InsurancePolicy, len(policies))
	for _, policy := range policies {
		byType[policy.Type] = policy
	}

	views := make([]domain.InsurancePolicyView, 0, len(domain.InsuranceTypes))
	for _, t := range domain.InsuranceTypes {
		policy, ok := byType[t]
		if !ok {
			policy = &domain.InsurancePolicy{ProviderID: providerID, Type: t}
		}
		views = append(views, s.policyView(policy, now))
	}
	return views
}

func (s *Service) policyView(policy *domain.InsurancePolicy, now time.Time) domain.InsurancePolicyView {
	status := ResolvePolicyStatus(policy, now)
	return domain.InsurancePolicyView{
		InsurancePolicy: *policy,
		Label:           policy.Type.Label(),
		Status:          status,
		ExpiringSoon:    expiringSoon(status, policy.ExpirationDate, now, s.warningWindow()),
	}
}

func (s *Service) warningWindow() time.Duration {
	if s.cfg == nil {
		return 0
	}
	return s.cfg.Compliance.ExpiryWarningWindow
}

// ==============================================================================
// COMPLIANCE ITEM REGISTRY
// ==============================================================================

// UpsertComplianceItem creates or updates the single registration record
// for (provider, type). Provider edits to identifying fields reset the
// review state so the record re-enters pending review.
func (s *Service) UpsertComplianceItem(ctx context.Context, providerID uuid.UUID, req *domain.UpsertComplianceItemRequest) (*domain.ComplianceItemView, error) {
	if fields := s.validator.ValidateStructured(req); fields != nil {
		return nil, structuredErrors(fields)
	}

	itemType, err := domain.ParseComplianceItemType(req.Type)
	if err != nil {
		return nil, fieldError("type", fixlyerrors.ErrUnknownComplianceType.Error())
	}

	if err := s.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}

	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		return nil, fieldError("expiration_date", "Invalid date, expected YYYY-MM-DD")
	}

	now := time.Now()
	item, err := s.items.FindByProviderAndType(ctx, providerID, itemType)
	if err != nil && !stderrors.Is(err, fixlyerrors.ErrItemNotFound) {
		return nil, err
	}

	if item == nil {
		item = &domain.ComplianceItem{
			ID:         uuid.New(),
			ProviderID: providerID,
			Type:       itemType,
			CreatedAt:  now,
		}
	} else if itemEdited(item, req.RegistrationNumber, expiration) {
		// Superseded in place: a changed declaration re-enters review.
		item.LastVerifiedAt = nil
		item.VerifiedBy = nil
		item.RejectedAt = nil
		item.RejectedReason = nil
	}

	item.RegistrationNumber = req.RegistrationNumber
	item.ExpirationDate = expiration
	item.DocumentUploads = req.DocumentUploads
	item.UpdatedAt = now

	if err := s.items.Upsert(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Compliance item upserted", map[string]interface{}{
		"provider_id": providerID,
		"type":        itemType,
	})

	view := s.itemView(item, now)
	return &view, nil
}

// AutoCreateComplianceItems seeds the mandatory registration types for a
// provider with no records, moving them from not-eligible into the
// compliance flow.
func (s *Service) AutoCreateComplianceItems(ctx context.Context, providerID uuid.UUID) ([]domain.ComplianceItemView, error) {
	if err := s.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}

	now := time.Now()
	var created []domain.ComplianceItemView
	for _, t := range domain.MandatoryComplianceTypes {
		existing, err := s.items.FindByProviderAndType(ctx, providerID, t)
		if err != nil && !stderrors.Is(err, fixlyerrors.ErrItemNotFound) {
			return nil, err
		}
		if existing != nil {
			continue
		}

		item := &domain.ComplianceItem{
			ID:         uuid.New(),
			ProviderID: providerID,
			Type:       t,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.items.Upsert(ctx, item); err != nil {
			return nil, err
		}
		created = append(created, s.itemView(item, now))
	}

	if len(created) > 0 {
		s.logger.Info("Mandatory compliance items auto-created", map[string]interface{}{
			"provider_id": providerID,
			"count":       len(created),
		})
	}
	return created, nil
}

// ==============================================================================
// INSURANCE POLICY REGISTRY
// ==============================================================================

// UpsertInsurancePolicy creates or updates the single coverage record for
// (provider, type). Declaring coverage requires carrier and policy number.
func (s *Service) UpsertInsurancePolicy(ctx context.Context, providerID uuid.UUID, req *domain.UpsertInsurancePolicyRequest) (*domain.InsurancePolicyView, error) {
	if fields := s.validator.ValidateStructured(req); fields != nil {
		return nil, structuredErrors(fields)
	}

	insType, err := domain.ParseInsuranceType(req.Type)
	if err != nil {
		return nil, fieldError("type", fixlyerrors.ErrUnknownInsuranceType.Error())
	}

	if err := s.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}

	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		return nil, fieldError("expiration_date", "Invalid date, expected YYYY-MM-DD")
	}

	now := time.Now()
	policy, err := s.policies.FindByProviderAndType(ctx, providerID, insType)
	if err != nil && !stderrors.Is(err, fixlyerrors.ErrPolicyNotFound) {
		return nil, err
	}

	if policy == nil {
		policy = &domain.InsurancePolicy{
			ID:         uuid.New(),
			ProviderID: providerID,
			Type:       insType,
			CreatedAt:  now,
		}
	} else if policyEdited(policy, req, expiration) {
		policy.LastVerifiedAt = nil
		policy.VerifiedBy = nil
		policy.RejectedAt = nil
		policy.RejectedReason = nil
	}

	policy.HasCoverage = req.HasCoverage
	policy.CarrierName = req.CarrierName
	policy.PolicyNumber = req.PolicyNumber
	policy.ExpirationDate = expiration
	policy.CoverageAmount = req.CoverageAmount
	policy.COIUploads = req.COIUploads
	policy.UpdatedAt = now

	if err := s.policies.Upsert(ctx, policy); err != nil {
		return nil, err
	}

	s.logger.Info("Insurance policy upserted", map[string]interface{}{
		"provider_id":  providerID,
		"type":         insType,
		"has_coverage": req.HasCoverage,
	})

	view := s.policyView(policy, now)
	return &view, nil
}

// ==============================================================================
// TECHNICIAN REGISTRY
// ==============================================================================

// UpsertTechnician creates a roster member, or updates one when the request
// carries an ID.
func (s *Service) UpsertTechnician(ctx context.Context, providerID uuid.UUID, req *domain.UpsertTechnicianRequest) (*domain.Technician, error) {
	if fields := s.validator.ValidateStructured(req); fields != nil {
		return nil, structuredErrors(fields)
	}

	role, err := domain.ParseTechnicianRole(req.Role)
	if err != nil {
		return nil, fieldError("role", fixlyerrors.ErrUnknownTechnicianRole.Error())
	}

	var certType *domain.EPA609CertType
	if req.EPA609CertType != nil {
		parsed, err := domain.ParseEPA609CertType(*req.EPA609CertType)
		if err != nil {
			return nil, fieldError("epa609_cert_type", fixlyerrors.ErrUnknownCertType.Error())
		}
		certType = &parsed
	}

	certExpiry, err := parseDate(req.EPA609CertExpiry)
	if err != nil {
		return nil, fieldError("epa609_cert_expiry", "Invalid date, expected YYYY-MM-DD")
	}

	if err := s.requireProvider(ctx, providerID); err != nil {
		return nil, err
	}

	now := time.Now()
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			return nil, fieldError("id", "Invalid identifier")
		}
		tech, err := s.technicians.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if tech.ProviderID != providerID {
			return nil, fixlyerrors.ErrTechnicianNotFound
		}

		tech.FullName = validator.Sanitize(req.FullName)
		tech.Role = role
		tech.EPA609CertNumber = req.EPA609CertNumber
		tech.EPA609CertType = certType
		tech.EPA609CertExpiry = certExpiry
		tech.EPA609CertUploads = req.EPA609CertUploads
		tech.UpdatedAt = now

		if err := s.technicians.Update(ctx, tech); err != nil {
			return nil, err
		}
		return tech, nil
	}

	tech := &domain.Technician{
		ID:                uuid.New(),
		ProviderID:        providerID,
		FullName:          validator.Sanitize(req.FullName),
		Role:              role,
		IsActive:          true,
		EPA609CertNumber:  req.EPA609CertNumber,
		EPA609CertType:    certType,
		EPA609CertExpiry:  certExpiry,
		EPA609CertUploads: req.EPA609CertUploads,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.technicians.Create(ctx, tech); err != nil {
		return nil, err
	}

	s.logger.Info("Technician added", map[string]interface{}{
		"provider_id":   providerID,
		"technician_id": tech.ID,
	})
	return tech, nil
}

// DeactivateTechnician soft-deletes a roster member. The technician stops
// counting toward eligibility immediately.
func (s *Service) DeactivateTechnician(ctx context.Context, providerID, technicianID uuid.UUID) error {
	tech, err := s.technicians.FindByID(ctx, technicianID)
	if err != nil {
		return err
	}
	if tech.ProviderID != providerID {
		return fixlyerrors.ErrTechnicianNotFound
	}
	if err := s.technicians.Deactivate(ctx, technicianID); err != nil {
		return err
	}

	s.logger.Info("Technician deactivated", map[string]interface{}{
		"provider_id":   providerID,
		"technician_id": technicianID,
	})
	return nil
}

// ==============================================================================
// REVIEWER CAPABILITIES
// ==============================================================================

// VerifyComplianceItem records a successful human review.
func (s *Service) VerifyComplianceItem(ctx context.Context, itemID, reviewerID uuid.UUID) (*domain.ComplianceItemView, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !hasIdentifyingData(item.RegistrationNumber) {
		return nil, fixlyerrors.ErrNothingToReview
	}

	now := time.Now()
	item.LastVerifiedAt = &now
	item.VerifiedBy = &reviewerID
	item.RejectedAt = nil
	item.RejectedReason = nil
	item.UpdatedAt = now

	if err := s.items.SetReviewState(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Compliance item verified", map[string]interface{}{
		"item_id":     itemID,
		"reviewer_id": reviewerID,
	})
	view := s.itemView(item, now)
	return &view, nil
}

// RejectComplianceItem records a failed human review with a reason.
func (s *Service) RejectComplianceItem(ctx context.Context, itemID, reviewerID uuid.UUID, reason string) (*domain.ComplianceItemView, error) {
	if fields := s.validator.ValidateStructured(&domain.RejectRequest{Reason: reason}); fields != nil {
		return nil, structuredErrors(fields)
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.RejectedAt != nil {
		return nil, fixlyerrors.ErrAlreadyRejected
	}

	now := time.Now()
	item.RejectedAt = &now
	item.RejectedReason = &reason
	item.LastVerifiedAt = nil
	item.VerifiedBy = &reviewerID
	item.UpdatedAt = now

	if err := s.items.SetReviewState(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Compliance item rejected", map[string]interface{}{
		"item_id":     itemID,
		"reviewer_id": reviewerID,
	})
	view := s.itemView(item, now)
	return &view, nil
}

// VerifyInsurancePolicy records a successful human review of a coverage
// declaration.
func (s *Service) VerifyInsurancePolicy(ctx context.Context, policyID, reviewerID uuid.UUID) (*domain.InsurancePolicyView, error) {
	policy, err := s.policies.FindByID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if !policy.HasCoverage || !hasIdentifyingData(policy.CarrierName) {
		return nil, fixlyerrors.ErrNothingToReview
	}

	now := time.Now()
	policy.LastVerifiedAt = &now
	policy.VerifiedBy = &reviewerID
	policy.RejectedAt = nil
	policy.RejectedReason = nil
	policy.UpdatedAt = now

	if err := s.policies.SetReviewState(ctx, policy); err != nil {
		return nil, err
	}

	s.logger.Info("Insurance policy verified", map[string]interface{}{
		"policy_id":   policyID,
		"reviewer_id": reviewerID,
	})
	view := s.policyView(policy, now)
	return &view, nil
}

// RejectInsurancePolicy records a failed human review with a reason.
func (s *Service) RejectInsurancePolicy(ctx context.Context, policyID, reviewerID uuid.UUID, reason string) (*domain.InsurancePolicyView, error) {
	if fields := s.validator.ValidateStructured(&domain.RejectRequest{Reason: reason}); fields != nil {
		return nil, structuredErrors(fields)
	}

	policy, err := s.policies.FindByID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if policy.RejectedAt != nil {
		return nil, fixlyerrors.ErrAlreadyRejected
	}

	now := time.Now()
	policy.RejectedAt = &now
	policy.RejectedReason = &reason
	policy.LastVerifiedAt = nil
	policy.VerifiedBy = &reviewerID
	policy.UpdatedAt = now

	if err := s.policies.SetReviewState(ctx, policy); err != nil {
		return nil, err
	}

	s.logger.Info("Insurance policy rejected", map[string]interface{}{
		"policy_id":   policyID,
		"reviewer_id": reviewerID,
	})
	view := s.policyView(policy, now)
	return &view, nil
}

// ListPendingReview returns the reviewer queue across all providers.
func (s *Service) ListPendingReview(ctx context.Context, limit, offset int) (*PendingReviewQueue, error) {
	if limit <= 0 || limit > s.cfg.Compliance.ReviewPageSize {
		limit = s.cfg.Compliance.ReviewPageSize
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.items.FindPendingReview(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	totalItems, err := s.items.CountPendingReview(ctx)
	if err != nil {
		return nil, err
	}
	policies, err := s.policies.FindPendingReview(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	totalPolicies, err := s.policies.CountPendingReview(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	queue := &PendingReviewQueue{
		Items:         s.itemViews(items, now),
		TotalItems:    totalItems,
		TotalPolicies: totalPolicies,
		Limit:         limit,
		Offset:        offset,
	}
	queue.Policies = make([]domain.InsurancePolicyView, 0, len(policies))
	for _, policy := range policies {
		queue.Policies = append(queue.Policies, s.policyView(policy, now))
	}
	return queue, nil
}

// ==============================================================================
// HELPERS
// ==============================================================================

func (s *Service) requireProvider(ctx context.Context, providerID uuid.UUID) error {
	provider, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		return err
	}
	if !provider.IsActive {
		return fixlyerrors.ErrProviderInactive
	}
	return nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func itemEdited(item *domain.ComplianceItem, regNumber *string, expiration *time.Time) bool {
	return !stringPtrEqual(item.RegistrationNumber, regNumber) ||
		!timePtrEqual(item.ExpirationDate, expiration)
}

func policyEdited(policy *domain.InsurancePolicy, req *domain.UpsertInsurancePolicyRequest, expiration *time.Time) bool {
	if policy.HasCoverage != req.HasCoverage {
		return true
	}
	if !stringPtrEqual(policy.CarrierName, req.CarrierName) ||
		!stringPtrEqual(policy.PolicyNumber, req.PolicyNumber) ||
		!timePtrEqual(policy.ExpirationDate, expiration) {
		return true
	}
	switch {
	case policy.CoverageAmount == nil && req.CoverageAmount == nil:
		return false
	case policy.CoverageAmount == nil || req.CoverageAmount == nil:
		return true
	default:
		return !policy.CoverageAmount.Equal(*req.CoverageAmount)
	}
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
