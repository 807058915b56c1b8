package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	users   *repository.UserRepository
	teams   *repository.TeamRepository
	members *repository.MemberRepository
}

func NewUserService(users *repository.UserRepository, teams *repository.TeamRepository, members *repository.MemberRepository) *UserService {
	return &UserService{users: users, teams: teams, members: members}
}

// GetOrProvision returns the user, creating them together with a default
// team on the first authenticated request. The writes run sequentially
// with no rollback; a duplicate-key on the user insert means another
// request won the race and we just read their row back.
func (s *UserService) GetOrProvision(ctx context.Context, id uuid.UUID, email string) (*models.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	now := time.Now().UTC()
	team := &models.Team{
		ID:        uuid.New(),
		Name:      models.DefaultTeamName,
		OwnerID:   id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user = &models.User{
		ID:          id,
		Email:       email,
		Name:        nameFromEmail(email),
		TeamIDs:     []string{team.ID.String()},
		FirstSignIn: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return s.users.Get(ctx, id)
		}
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to provision default team: %w", err)
	}

	owner := &models.Member{
		TeamID:    team.ID,
		MemberKey: id.String(),
		UserID:    &id,
		Email:     email,
		Status:    models.MemberStatusActive,
		Role:      models.RoleOwner,
		CreatedAt: now,
	}
	if err := s.members.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to provision owner membership: %w", err)
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.Get(ctx, id)
}

// TeamsOf resolves the user's memberships into teams and roles, one read
// per team.
func (s *UserService) TeamsOf(ctx context.Context, userID uuid.UUID) ([]*models.Team, []string, error) {
	memberships, err := s.members.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var teams []*models.Team
	var roles []string
	for _, m := range memberships {
		if m.Status != models.MemberStatusActive {
			continue
		}
		team, err := s.teams.Get(ctx, m.TeamID)
		if err != nil {
			return nil, nil, err
		}
		if team == nil {
			// Inconsistent data; it shouldn't happen.
			continue
		}
		teams = append(teams, team)
		roles = append(roles, m.Role)
	}
	return teams, roles, nil
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
