package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fixly/internal/domain"
	"fixly/pkg/errors"
)

type ComplianceItemRepository struct {
	db *sqlx.DB
}

func NewComplianceItemRepository(db *sqlx.DB) *ComplianceItemRepository {
	return &ComplianceItemRepository{db: db}
}

// Upsert inserts or replaces the single record keyed by (provider_id, type).
// The unique index serializes concurrent writers; last writer wins.
func (r *ComplianceItemRepository) Upsert(ctx context.Context, item *domain.ComplianceItem) error {
	query := `
		INSERT INTO compliance_items (
			id, provider_id, type, registration_number, expiration_date, document_uploads,
			last_verified_at, verified_by, rejected_at, rejected_reason, created_at, updated_at
		) VALUES (
			:id, :provider_id, :type, :registration_number, :expiration_date, :document_uploads,
			:last_verified_at, :verified_by, :rejected_at, :rejected_reason, :created_at, :updated_at
		)
		ON CONFLICT (provider_id, type) DO UPDATE SET
			registration_number = EXCLUDED.registration_number,
			expiration_date = EXCLUDED.expiration_date,
			document_uploads = EXCLUDED.document_uploads,
			last_verified_at = EXCLUDED.last_verified_at,
			verified_by = EXCLUDED.verified_by,
			rejected_at = EXCLUDED.rejected_at,
			rejected_reason = EXCLUDED.rejected_reason,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.NamedExecContext(ctx, query, item)
	return errors.Wrap(err, "failed to upsert compliance item")
}

func (r *ComplianceItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceItem, error) {
	item := &domain.ComplianceItem{}
	query := `SELECT * FROM compliance_items WHERE id = $1`
	err := r.db.GetContext(ctx, item, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrItemNotFound
		}
		return nil, errors.Wrap(err, "failed to find compliance item by id")
	}
	return item, nil
}

func (r *ComplianceItemRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.ComplianceItem, error) {
	var items []*domain.ComplianceItem
	query := `SELECT * FROM compliance_items WHERE provider_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &items, query, providerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find compliance items by provider id")
	}
	return items, nil
}

func (r *ComplianceItemRepository) FindByProviderAndType(ctx context.Context, providerID uuid.UUID, itemType domain.ComplianceItemType) (*domain.ComplianceItem, error) {
	item := &domain.ComplianceItem{}
	query := `SELECT * FROM compliance_items WHERE provider_id = $1 AND type = $2`
	err := r.db.GetContext(ctx, item, query, providerID, itemType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrItemNotFound
		}
		return nil, errors.Wrap(err, "failed to find compliance item by provider and type")
	}
	return item, nil
}

// SetReviewState persists reviewer decisions without touching the
// provider-declared fields.
func (r *ComplianceItemRepository) SetReviewState(ctx context.Context, item *domain.ComplianceItem) error {
	query := `
		UPDATE compliance_items SET
			last_verified_at = :last_verified_at,
			verified_by = :verified_by,
			rejected_at = :rejected_at,
			rejected_reason = :rejected_reason,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return errors.Wrap(err, "failed to update compliance item review state")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return errors.ErrItemNotFound
	}
	return nil
}

func (r *ComplianceItemRepository) FindPendingReview(ctx context.Context, limit, offset int) ([]*domain.ComplianceItem, error) {
	var items []*domain.ComplianceItem
	query := `
		SELECT * FROM compliance_items
		WHERE registration_number IS NOT NULL
		  AND last_verified_at IS NULL
		  AND rejected_at IS NULL
		ORDER BY updated_at
		LIMIT $1 OFFSET $2
	`
	err := r.db.SelectContext(ctx, &items, query, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending compliance items")
	}
	return items, nil
}

func (r *ComplianceItemRepository) CountPendingReview(ctx context.Context) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM compliance_items
		WHERE registration_number IS NOT NULL
		  AND last_verified_at IS NULL
		  AND rejected_at IS NULL
	`
	err := r.db.GetContext(ctx, &count, query)
	return count, errors.Wrap(err, "failed to count pending compliance items")
}
