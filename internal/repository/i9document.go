package repository

import (
	"context"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/google/uuid"
)

type I9DocumentRepository struct {
	db *database.DB
}

func NewI9DocumentRepository(db *database.DB) *I9DocumentRepository {
	return &I9DocumentRepository{db: db}
}

func (r *I9DocumentRepository) Create(ctx context.Context, doc *models.I9Document) error {
	return Create(ctx, r.db, doc)
}

func (r *I9DocumentRepository) Get(ctx context.Context, id uuid.UUID) (*models.I9Document, error) {
	return Get(ctx, r.db, "i9_documents", map[string]any{"id": id}, models.I9DocumentFromRecord)
}

func (r *I9DocumentRepository) FindAllByFormID(ctx context.Context, formID string) ([]*models.I9Document, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM i9_documents WHERE form_id = $1 ORDER BY created_at
	`, formID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.I9DocumentFromRecord)
}
