package repository

import (
	"context"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
)

type TranslatorRepository struct {
	db *database.DB
}

func NewTranslatorRepository(db *database.DB) *TranslatorRepository {
	return &TranslatorRepository{db: db}
}

func (r *TranslatorRepository) Create(ctx context.Context, translator *models.Translator) error {
	return Create(ctx, r.db, translator)
}

func (r *TranslatorRepository) FindAllByFormID(ctx context.Context, formID string) ([]*models.Translator, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM translators WHERE form_id = $1 ORDER BY created_at
	`, formID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.TranslatorFromRecord)
}
