package repository

import (
	"context"
	"errors"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/jackc/pgx/v5"
)

type I9Section2Repository struct {
	db *database.DB
}

func NewI9Section2Repository(db *database.DB) *I9Section2Repository {
	return &I9Section2Repository{db: db}
}

// Create relies on the form_id unique constraint: signing section 2 twice
// for the same form surfaces ErrDuplicateKey.
func (r *I9Section2Repository) Create(ctx context.Context, section *models.I9Section2) error {
	return Create(ctx, r.db, section)
}

func (r *I9Section2Repository) FindByFormID(ctx context.Context, formID string) (*models.I9Section2, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT * FROM i9_section2 WHERE form_id = $1`, formID)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return models.I9Section2FromRecord(rec)
}

type I9ReverificationRepository struct {
	db *database.DB
}

func NewI9ReverificationRepository(db *database.DB) *I9ReverificationRepository {
	return &I9ReverificationRepository{db: db}
}

func (r *I9ReverificationRepository) Create(ctx context.Context, rev *models.I9Reverification) error {
	return Create(ctx, r.db, rev)
}

func (r *I9ReverificationRepository) FindAllByFormID(ctx context.Context, formID string) ([]*models.I9Reverification, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM i9_reverifications WHERE form_id = $1 ORDER BY created_at
	`, formID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.I9ReverificationFromRecord)
}
