package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fixly/internal/domain"
	"fixly/pkg/errors"
)

type TechnicianRepository struct {
	db *sqlx.DB
}

func NewTechnicianRepository(db *sqlx.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

func (r *TechnicianRepository) Create(ctx context.Context, tech *domain.Technician) error {
	query := `
		INSERT INTO technicians (
			id, provider_id, full_name, role, is_active,
			epa609_cert_number, epa609_cert_type, epa609_cert_expiry, epa609_cert_uploads,
			created_at, updated_at
		) VALUES (
			:id, :provider_id, :full_name, :role, :is_active,
			:epa609_cert_number, :epa609_cert_type, :epa609_cert_expiry, :epa609_cert_uploads,
			:created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, tech)
	return errors.Wrap(err, "failed to create technician")
}

func (r *TechnicianRepository) Update(ctx context.Context, tech *domain.Technician) error {
	tech.UpdatedAt = time.Now()
	query := `
		UPDATE technicians SET
			full_name = :full_name,
			role = :role,
			epa609_cert_number = :epa609_cert_number,
			epa609_cert_type = :epa609_cert_type,
			epa609_cert_expiry = :epa609_cert_expiry,
			epa609_cert_uploads = :epa609_cert_uploads,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, tech)
	if err != nil {
		return errors.Wrap(err, "failed to update technician")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return errors.ErrTechnicianNotFound
	}
	return nil
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	tech := &domain.Technician{}
	query := `SELECT * FROM technicians WHERE id = $1`
	err := r.db.GetContext(ctx, tech, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrTechnicianNotFound
		}
		return nil, errors.Wrap(err, "failed to find technician by id")
	}
	return tech, nil
}

// FindByProviderID returns active roster members only; soft-deleted
// technicians are invisible to the engine.
func (r *TechnicianRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*domain.Technician, error) {
	var techs []*domain.Technician
	query := `SELECT * FROM technicians WHERE provider_id = $1 AND is_active = TRUE ORDER BY created_at`
	err := r.db.SelectContext(ctx, &techs, query, providerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find technicians by provider id")
	}
	return techs, nil
}

func (r *TechnicianRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE technicians SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "failed to deactivate technician")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return errors.ErrTechnicianNotFound
	}
	return nil
}
