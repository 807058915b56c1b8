package repository

import (
	"context"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/google/uuid"
)

type TeamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return Create(ctx, r.db, team)
}

func (r *TeamRepository) Get(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return Get(ctx, r.db, "teams", map[string]any{"id": id}, models.TeamFromRecord)
}

func (r *TeamRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE teams SET name = $1, updated_at = NOW()
		WHERE id = $2
	`, name, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, r.db, "teams", map[string]any{"id": id})
}
