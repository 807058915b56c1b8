package repository

import (
	"context"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/google/uuid"
)

type TodoRepository struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func todoKey(teamID, id uuid.UUID) map[string]any {
	return map[string]any{"team_id": teamID, "id": id}
}

func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return Create(ctx, r.db, todo)
}

func (r *TodoRepository) Get(ctx context.Context, teamID, id uuid.UUID) (*models.Todo, error) {
	return Get(ctx, r.db, "todos", todoKey(teamID, id), models.TodoFromRecord)
}

func (r *TodoRepository) Update(ctx context.Context, todo *models.Todo) (bool, error) {
	return Update(ctx, r.db, todo)
}

func (r *TodoRepository) Delete(ctx context.Context, teamID, id uuid.UUID) (bool, error) {
	return Delete(ctx, r.db, "todos", todoKey(teamID, id))
}

func (r *TodoRepository) FindAllByTeamAndUser(ctx context.Context, teamID, userID uuid.UUID) ([]*models.Todo, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM todos WHERE team_id = $1 AND user_id = $2 ORDER BY created_at
	`, teamID, userID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.TodoFromRecord)
}
