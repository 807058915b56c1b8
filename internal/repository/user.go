package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return Create(ctx, r.db, user)
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return Get(ctx, r.db, "users", map[string]any{"id": id}, models.UserFromRecord)
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return Save(ctx, r.db, user)
}

func (r *UserRepository) FindByCustomerID(ctx context.Context, customerID string) (*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT * FROM users WHERE customer_id = $1`, customerID)
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
	return models.UserFromRecord(rec)
}

func (r *UserRepository) SetCustomerID(ctx context.Context, userID uuid.UUID, customerID string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE users SET customer_id = $1, updated_at = NOW()
		WHERE id = $2
	`, customerID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateSubscription overwrites the stored subscription snapshot. A nil
// snapshot clears it.
func (r *UserRepository) UpdateSubscription(ctx context.Context, userID uuid.UUID, sub *models.Subscription) (bool, error) {
	var subID, productID, status any
	if sub != nil {
		subID, productID, status = sub.ID, sub.ProductID, sub.Status
	}
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE users
		SET subscription_id = $1, product_id = $2, subscription_status = $3, updated_at = NOW()
		WHERE id = $4
	`, subID, productID, status, userID)
	if err != nil {
		return false, fmt.Errorf("failed to update subscription: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE users SET email = $1, updated_at = NOW()
		WHERE id = $2
	`, email, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddTeam appends the team to the legacy team_ids list, skipping the write
// when it is already present.
func (r *UserRepository) AddTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE users
		SET team_ids = array_append(team_ids, $1), updated_at = NOW()
		WHERE id = $2 AND NOT (team_ids @> ARRAY[$1])
	`, teamID.String(), userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) RemoveTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE users
		SET team_ids = array_remove(team_ids, $1), updated_at = NOW()
		WHERE id = $2
	`, teamID.String(), userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
