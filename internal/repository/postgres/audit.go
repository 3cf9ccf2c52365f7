package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fixly/internal/domain"
	"fixly/pkg/errors"
)

type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, action, ip_address, user_agent, status_code, created_at)
		VALUES (:id, :user_id, :action, :ip_address, :user_agent, :status_code, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, log)
	return errors.Wrap(err, "failed to create audit log")
}
