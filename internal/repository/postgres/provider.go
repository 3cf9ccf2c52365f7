package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fixly/internal/domain"
	"fixly/pkg/errors"
)

type ProviderRepository struct {
	db *sqlx.DB
}

func NewProviderRepository(db *sqlx.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(ctx context.Context, provider *domain.Provider) error {
	query := `
		INSERT INTO providers (id, business_name, is_active, created_at, updated_at)
		VALUES (:id, :business_name, :is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, provider)
	return errors.Wrap(err, "failed to create provider")
}

func (r *ProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	provider := &domain.Provider{}
	query := `SELECT * FROM providers WHERE id = $1`
	err := r.db.GetContext(ctx, provider, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrProviderNotFound
		}
		return nil, errors.Wrap(err, "failed to find provider by id")
	}
	return provider, nil
}
