package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fixly/internal/domain"
	"fixly/pkg/errors"
)

type InsurancePolicyRepository struct {
	db *sqlx.DB
}

func NewInsurancePolicyRepository(db *sqlx.DB) *InsurancePolicyRepository {
	return &InsurancePolicyRepository{db: db}
}

// Upsert inserts or replaces the single record keyed by (provider_id, type).
func (r *InsurancePolicyRepository) Upsert(ctx context.Context, policy *domain.InsurancePolicy) error {
	query := `
		INSERT INTO insurance_policies (
			id, provider_id, type, has_coverage, carrier_name, policy_number,
			expiration_date, coverage_amount, coi_uploads,
			last_verified_at, verified_by, rejected_at, rejected_reason, created_at, updated_at
		) VALUES (
			:id, :provider_id, :type, :has_coverage, :carrier_name, :policy_number,
			:expiration_date, :coverage_amount, :coi_uploads,
			:last_verified_at, :verified_by, :rejected_at, :rejected_reason, :created_at, :updated_at
		)
		ON CONFLICT (provider_id, type) DO UPDATE SET
			has_coverage = EXCLUDED.has_coverage,
			carrier_name = EXCLUDED.carrier_name,
			policy_number = EXCLUDED.policy_number,
			expiration_date = EXCLUDED.expiration_date,
			coverage_amount = EXCLUDED.coverage_amount,
			coi_uploads = EXCLUDED.coi_uploads,
			last_verified_at = EXCLUDED.last_verified_at,
			verified_by = EXCLUDED.verified_by,
			rejected_at = EXCLUDED.rejected_at,
			rejected_reason = EXCLUDED.rejected_reason,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.NamedExecContext(ctx, query, policy)
	return errors.Wrap(err, "failed to upsert insurance policy")
}

func (r *InsurancePolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InsurancePolicy, error) {
	policy := &domain.InsurancePolicy{}
	query := `SELECT * FROM insurance_policies WHERE id = $1`
	err := r.db.GetContext(ctx, policy, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrPolicyNotFound
		}
		return nil, errors.Wrap(err, "failed to find insurance policy by id")
	}
	return policy, nil
}

func (r *InsurancePolicyRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.InsurancePolicy, error) {
	var policies []*domain.InsurancePolicy
	query := `SELECT * FROM insurance_policies WHERE provider_id = $1 ORDER BY type`
	err := r.db.SelectContext(ctx, &policies, query, providerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find insurance policies by provider id")
	}
	return policies, nil
}

func (r *InsurancePolicyRepository) FindByProviderAndType(ctx context.Context, providerID uuid.UUID, insType domain.InsuranceType) (*domain.InsurancePolicy, error) {
	policy := &domain.InsurancePolicy{}
	query := `SELECT * FROM insurance_policies WHERE provider_id = $1 AND type = $2`
	err := r.db.GetContext(ctx, policy, query, providerID, insType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrPolicyNotFound
		}
		return nil, errors.Wrap(err, "failed to find insurance policy by provider and type")
	}
	return policy, nil
}

// SetReviewState persists reviewer decisions without touching the
// provider-declared fields.
func (r *InsurancePolicyRepository) SetReviewState(ctx context.Context, policy *domain.InsurancePolicy) error {
	query := `
		UPDATE insurance_policies SET
			last_verified_at = :last_verified_at,
			verified_by = :verified_by,
			rejected_at = :rejected_at,
			rejected_reason = :rejected_reason,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, policy)
	if err != nil {
		return errors.Wrap(err, "failed to update insurance policy review state")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return errors.ErrPolicyNotFound
	}
	return nil
}

func (r *InsurancePolicyRepository) FindPendingReview(ctx context.Context, limit, offset int) ([]*domain.InsurancePolicy, error) {
	var policies []*domain.InsurancePolicy
	query := `
		SELECT * FROM insurance_policies
		WHERE has_coverage = TRUE
		  AND carrier_name IS NOT NULL
		  AND last_verified_at IS NULL
		  AND rejected_at IS NULL
		ORDER BY updated_at
		LIMIT $1 OFFSET $2
	`
	err := r.db.SelectContext(ctx, &policies, query, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending insurance policies")
	}
	return policies, nil
}

func (r *InsurancePolicyRepository) CountPendingReview(ctx context.Context) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM insurance_policies
		WHERE has_coverage = TRUE
		  AND carrier_name IS NOT NULL
		  AND last_verified_at IS NULL
		  AND rejected_at IS NULL
	`
	err := r.db.GetContext(ctx, &count, query)
	return count, errors.Wrap(err, "failed to count pending insurance policies")
}
