package integration

import (
	"context"
	"testing"

	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_Integration_InviteAndJoin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newTeamService(tdb)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	joiner := fixtures.CreateUser(t)
	team := fixtures.CreateTeam(t, owner)

	invite, err := svc.Invite(ctx, team.ID, owner.ID, joiner.Email, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.MemberStatusPending, invite.Status)
	assert.NotEmpty(t, invite.MemberKey)

	member, err := svc.Join(ctx, team.ID, invite.MemberKey, joiner.ID, joiner.Email)
	require.NoError(t, err)
	assert.Equal(t, models.MemberStatusActive, member.Status)
	assert.Equal(t, models.RoleAdmin, member.Role)
	assert.Equal(t, joiner.ID.String(), member.MemberKey)

	// The invite is consumed: a second join with the same code fails.
	_, err = svc.Join(ctx, team.ID, invite.MemberKey, joiner.ID, joiner.Email)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeAlreadyMember))

	// The joiner's denormalized team list picked up the team.
	userSvc := newUserService(tdb)
	teams, roles, err := userSvc.TeamsOf(ctx, joiner.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, team.ID, teams[0].ID)
	assert.Equal(t, models.RoleAdmin, roles[0])
}

func TestTeamService_Integration_JoinWithStaleCode(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newTeamService(tdb)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	joiner := fixtures.CreateUser(t)
	team := fixtures.CreateTeam(t, owner)

	_, err := svc.Join(ctx, team.ID, "no-such-code", joiner.ID, joiner.Email)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeIncorrectCode))
}

func TestTeamService_Integration_MembersRequiresActiveMembership(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newTeamService(tdb)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	outsider := fixtures.CreateUser(t)
	team := fixtures.CreateTeam(t, owner)

	_, err := svc.Members(ctx, team.ID, outsider.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotMember))

	members, err := svc.Members(ctx, team.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, models.RoleOwner, members[0].Role)
}

func TestTeamService_Integration_DeleteCascadesMembership(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newTeamService(tdb)
	userSvc := newUserService(tdb)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	member := fixtures.CreateUser(t)
	team := fixtures.CreateTeam(t, owner)
	fixtures.AddActiveMember(t, team, member, models.RoleReadOnly)
	fixtures.CreateInvite(t, team, "pending@example.com", models.RoleReadOnly, "pending-code")

	deleted, err := svc.Delete(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, team.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeIncorrectTeamID))

	// Even the former owner is locked out once the member rows are gone.
	_, err = svc.Members(ctx, team.ID, owner.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotMember))

	// Both members lost the team from their denormalized lists.
	for _, u := range []*models.User{owner, member} {
		teams, _, err := userSvc.TeamsOf(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, teams)
	}
}

func TestTeamService_Integration_UpdateRoleGuardsOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newTeamService(tdb)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	member := fixtures.CreateUser(t)
	team := fixtures.CreateTeam(t, owner)
	fixtures.AddActiveMember(t, team, member, models.RoleReadOnly)

	updated, err := svc.UpdateRole(ctx, team.ID, member.ID.String(), models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, updated)

	// The guard keeps the owner row untouched.
	updated, err = svc.UpdateRole(ctx, team.ID, owner.ID.String(), models.RoleReadOnly)
	require.NoError(t, err)
	assert.False(t, updated)
}
