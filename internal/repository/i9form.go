package repository

import (
	"context"
	"errors"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type I9UserRepository struct {
	db *database.DB
}

func NewI9UserRepository(db *database.DB) *I9UserRepository {
	return &I9UserRepository{db: db}
}

func (r *I9UserRepository) Create(ctx context.Context, user *models.I9User) error {
	return Create(ctx, r.db, user)
}

func (r *I9UserRepository) Get(ctx context.Context, id uuid.UUID) (*models.I9User, error) {
	return Get(ctx, r.db, "i9_users", map[string]any{"id": id}, models.I9UserFromRecord)
}

func (r *I9UserRepository) FindByEmail(ctx context.Context, email string) (*models.I9User, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT * FROM i9_users WHERE email = $1`, email)
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
	return models.I9UserFromRecord(rec)
}

type I9FormRepository struct {
	db *database.DB
}

func NewI9FormRepository(db *database.DB) *I9FormRepository {
	return &I9FormRepository{db: db}
}

func (r *I9FormRepository) Create(ctx context.Context, form *models.I9Form) error {
	return Create(ctx, r.db, form)
}

func (r *I9FormRepository) Get(ctx context.Context, id uuid.UUID) (*models.I9Form, error) {
	return Get(ctx, r.db, "i9_forms", map[string]any{"id": id}, models.I9FormFromRecord)
}

func (r *I9FormRepository) FindByFormID(ctx context.Context, formID string) (*models.I9Form, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT * FROM i9_forms WHERE form_id = $1`, formID)
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
	return models.I9FormFromRecord(rec)
}

func (r *I9FormRepository) UpdateStatus(ctx context.Context, formID, status string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE i9_forms SET status = $1, updated_at = NOW()
		WHERE form_id = $2
	`, status, formID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
