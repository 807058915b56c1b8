package repository

import (
	"context"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/google/uuid"
)

type MemberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func memberKey(teamID uuid.UUID, key string) map[string]any {
	return map[string]any{"team_id": teamID, "member_key": key}
}

func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	return Create(ctx, r.db, member)
}

func (r *MemberRepository) Get(ctx context.Context, teamID uuid.UUID, key string) (*models.Member, error) {
	return Get(ctx, r.db, "members", memberKey(teamID, key), models.MemberFromRecord)
}

func (r *MemberRepository) Save(ctx context.Context, member *models.Member) error {
	return Save(ctx, r.db, member)
}

func (r *MemberRepository) Delete(ctx context.Context, teamID uuid.UUID, key string) (bool, error) {
	return Delete(ctx, r.db, "members", memberKey(teamID, key))
}

func (r *MemberRepository) FindAllByTeamID(ctx context.Context, teamID uuid.UUID) ([]*models.Member, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM members WHERE team_id = $1 ORDER BY created_at
	`, teamID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.MemberFromRecord)
}

func (r *MemberRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Member, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT * FROM members WHERE user_id = $1 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	return collectAll(rows, models.MemberFromRecord)
}

// DeletePendingByCode consumes an invite: the delete only matches while
// the row is still PENDING, so a replayed or already-accepted code reports
// false. This conditional is the join flow's only concurrency guard.
func (r *MemberRepository) DeletePendingByCode(ctx context.Context, teamID uuid.UUID, code string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		DELETE FROM members
		WHERE team_id = $1 AND member_key = $2 AND status = $3
	`, teamID, code, models.MemberStatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateRoleIfNotOwner changes a member's role unless the current role is
// OWNER; the guard tripping is reported as false.
func (r *MemberRepository) UpdateRoleIfNotOwner(ctx context.Context, teamID uuid.UUID, key, role string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE members SET role = $1
		WHERE team_id = $2 AND member_key = $3 AND role <> $4
	`, role, teamID, key, models.RoleOwner)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MemberRepository) UpdateEmail(ctx context.Context, teamID uuid.UUID, key, email string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE members SET email = $1
		WHERE team_id = $2 AND member_key = $3
	`, email, teamID, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
