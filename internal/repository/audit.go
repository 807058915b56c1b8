package repository

import (
	"context"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
)

type AuditTrailRepository struct {
	db *database.DB
}

func NewAuditTrailRepository(db *database.DB) *AuditTrailRepository {
	return &AuditTrailRepository{db: db}
}

func (r *AuditTrailRepository) Append(ctx context.Context, entry *models.AuditEntry) error {
	return Create(ctx, r.db, entry)
}

func (r *AuditTrailRepository) FindAllByFormID(ctx context.Context, formID string) ([]*models.AuditEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM audit_trail WHERE form_id = $1 ORDER BY id
	`, formID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.AuditEntryFromRecord)
}
