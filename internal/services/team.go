package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/internal/logger"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/google/uuid"
)

type TeamService struct {
	users   *repository.UserRepository
	teams   *repository.TeamRepository
	members *repository.MemberRepository
	email   *EmailService
	log     *logger.Logger
}

func NewTeamService(users *repository.UserRepository, teams *repository.TeamRepository, members *repository.MemberRepository, email *EmailService, log *logger.Logger) *TeamService {
	return &TeamService{users: users, teams: teams, members: members, email: email, log: log}
}

func (s *TeamService) Get(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apperr.New(apperr.CodeIncorrectTeamID)
	}
	return team, nil
}

func (s *TeamService) Rename(ctx context.Context, teamID uuid.UUID, name string) error {
	ok, err := s.teams.UpdateName(ctx, teamID, name)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.CodeIncorrectTeamID)
	}
	return nil
}

// requireActiveMember guards team-scoped reads: the caller must hold an
// ACTIVE membership row.
func (s *TeamService) requireActiveMember(ctx context.Context, teamID, userID uuid.UUID) (*models.Member, error) {
	member, err := s.members.Get(ctx, teamID, userID.String())
	if err != nil {
		return nil, err
	}
	if member == nil || member.Status != models.MemberStatusActive {
		return nil, apperr.New(apperr.CodeNotMember)
	}
	return member, nil
}

func (s *TeamService) Members(ctx context.Context, teamID, requesterID uuid.UUID) ([]*models.Member, error) {
	if _, err := s.requireActiveMember(ctx, teamID, requesterID); err != nil {
		return nil, err
	}
	return s.members.FindAllByTeamID(ctx, teamID)
}

// Invite creates a PENDING member row keyed by a fresh random code and
// mails the code out. The email is best-effort; a send failure does not
// undo the row.
func (s *TeamService) Invite(ctx context.Context, teamID, inviterID uuid.UUID, email, role string) (*models.Member, error) {
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireActiveMember(ctx, teamID, inviterID); err != nil {
		return nil, err
	}

	if !models.ValidRole(role) || role == models.RoleOwner {
		role = models.RoleReadOnly
	}

	code, err := newInviteCode()
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		TeamID:    teamID,
		MemberKey: code,
		Email:     email,
		Status:    models.MemberStatusPending,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	if err := s.email.SendTeamInvite(email, team.Name, code); err != nil {
		s.log.Errorw("failed to send invite email", "team_id", teamID, "error", err)
	}

	return member, nil
}

// Join consumes an invite code: the PENDING row is deleted under a
// status guard and an ACTIVE row keyed by the joining user's id is
// written in its place, then the team is appended to the user's legacy
// team list. The steps run sequentially with no compensating rollback.
func (s *TeamService) Join(ctx context.Context, teamID uuid.UUID, code string, userID uuid.UUID, email string) (*models.Member, error) {
	if _, err := s.Get(ctx, teamID); err != nil {
		return nil, err
	}

	existing, err := s.members.Get(ctx, teamID, userID.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.CodeAlreadyMember)
	}

	invite, err := s.members.Get(ctx, teamID, code)
	if err != nil {
		return nil, err
	}
	if invite == nil || invite.Status != models.MemberStatusPending {
		return nil, apperr.New(apperr.CodeIncorrectCode)
	}

	ok, err := s.members.DeletePendingByCode(ctx, teamID, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Consumed between the read and the delete.
		return nil, apperr.New(apperr.CodeIncorrectCode)
	}

	member := &models.Member{
		TeamID:    teamID,
		MemberKey: userID.String(),
		UserID:    &userID,
		Email:     email,
		Status:    models.MemberStatusActive,
		Role:      invite.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.members.Save(ctx, member); err != nil {
		return nil, err
	}

	if _, err := s.users.AddTeam(ctx, userID, teamID); err != nil {
		return nil, err
	}

	return member, nil
}

// RemoveMember deletes the member row and, for ACTIVE members, removes
// the team from the user's legacy team list. There is no compensating
// transaction if the second write fails.
func (s *TeamService) RemoveMember(ctx context.Context, teamID uuid.UUID, memberKey string) error {
	member, err := s.members.Get(ctx, teamID, memberKey)
	if err != nil {
		return err
	}
	if member == nil {
		return apperr.New(apperr.CodeIncorrectID)
	}

	if _, err := s.members.Delete(ctx, teamID, memberKey); err != nil {
		return err
	}

	if member.Status == models.MemberStatusActive && member.UserID != nil {
		if _, err := s.users.RemoveTeam(ctx, *member.UserID, teamID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes every member one at a time and then the team itself.
// The deletes are deliberately sequential (the backing store is easy to
// overrun with parallel writes) and success is the AND of each step; a
// failed step degrades the outcome without rolling back earlier deletes.
func (s *TeamService) Delete(ctx context.Context, teamID uuid.UUID) (bool, error) {
	if _, err := s.Get(ctx, teamID); err != nil {
		return false, err
	}

	memberRows, err := s.members.FindAllByTeamID(ctx, teamID)
	if err != nil {
		return false, err
	}

	allOK := true
	for _, member := range memberRows {
		ok, err := s.members.Delete(ctx, teamID, member.MemberKey)
		if err != nil {
			return false, err
		}
		allOK = allOK && ok

		if member.Status == models.MemberStatusActive && member.UserID != nil {
			if _, err := s.users.RemoveTeam(ctx, *member.UserID, teamID); err != nil {
				return false, err
			}
		}
	}

	ok, err := s.teams.Delete(ctx, teamID)
	if err != nil {
		return false, err
	}
	return allOK && ok, nil
}

// UpdateRole applies the role change under the repository's OWNER guard;
// the guard tripping (or a missing member) is reported as false.
func (s *TeamService) UpdateRole(ctx context.Context, teamID uuid.UUID, memberKey, role string) (bool, error) {
	if !models.ValidRole(role) {
		return false, fmt.Errorf("invalid role %q", role)
	}
	return s.members.UpdateRoleIfNotOwner(ctx, teamID, memberKey, role)
}

// UpdateEmailAcrossTeams propagates a changed address to every membership
// row, one write per team, AND-aggregating the results.
func (s *TeamService) UpdateEmailAcrossTeams(ctx context.Context, userID uuid.UUID, email string) (bool, error) {
	memberRows, err := s.members.FindAllByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	allOK := true
	for _, member := range memberRows {
		ok, err := s.members.UpdateEmail(ctx, member.TeamID, member.MemberKey, email)
		if err != nil {
			return false, err
		}
		allOK = allOK && ok
	}
	return allOK, nil
}

func newInviteCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
