package repositories

import (
	"testing"

	"teamforge/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_CreateAndList(t *testing.T) {
	req := require.New(t)
	repo := NewTeamRepository(newTestDB(t))
	group := uuid.New()
	lead := uuid.New()

	frontend, err := repo.CreateTeam(group, "frontend", 3, lead)
	req.NoError(err)
	backend, err := repo.CreateTeam(group, "backend", 2, uuid.New())
	req.NoError(err)

	teams, err := repo.TeamsInGroup(group)
	req.NoError(err)
	req.Len(teams, 2)
	req.Equal("frontend", teams[0].Name, "listing must follow creation order")
	req.Equal("backend", teams[1].Name)

	_, err = repo.CreateTeam(group, "frontend", 1, lead)
	req.ErrorIs(err, errors.ErrNameInUse)

	got, err := repo.GetTeam(backend.ID)
	req.NoError(err)
	req.Equal(backend, got)

	owned, err := repo.TeamsOwned(lead)
	req.NoError(err)
	req.Len(owned, 1)
	req.Equal(frontend.ID, owned[0].ID)
}

func TestTeamRepository_EditTeam(t *testing.T) {
	req := require.New(t)
	repo := NewTeamRepository(newTestDB(t))
	group := uuid.New()
	oldLead := uuid.New()
	newLead := uuid.New()

	team, err := repo.CreateTeam(group, "frontend", 3, oldLead)
	req.NoError(err)

	req.NoError(repo.EditTeam(team.ID, "platform", 4, newLead))

	got, err := repo.GetTeam(team.ID)
	req.NoError(err)
	req.Equal("platform", got.Name)
	req.Equal(4, got.Quota)
	req.Equal(newLead, got.LeadID)

	owned, err := repo.TeamsOwned(oldLead)
	req.NoError(err)
	req.Empty(owned)
	owned, err = repo.TeamsOwned(newLead)
	req.NoError(err)
	req.Len(owned, 1)

	// The old name can be reused, the new one cannot.
	_, err = repo.CreateTeam(group, "frontend", 1, uuid.New())
	req.NoError(err)
	_, err = repo.CreateTeam(group, "platform", 1, uuid.New())
	req.ErrorIs(err, errors.ErrNameInUse)
}

func TestTeamRepository_Membership(t *testing.T) {
	req := require.New(t)
	repo := NewTeamRepository(newTestDB(t))
	group := uuid.New()

	team, err := repo.CreateTeam(group, "frontend", 3, uuid.New())
	req.NoError(err)

	users := []uuid.UUID{uuid.New(), uuid.New()}
	for _, u := range users {
		req.NoError(repo.AddTeamMember(team.ID, u))
	}

	members, err := repo.TeamMembers(team.ID)
	req.NoError(err)
	req.Equal(users, members)

	teamsOf, err := repo.TeamsOf(users[0])
	req.NoError(err)
	req.Len(teamsOf, 1)
	req.Equal(team.ID, teamsOf[0].ID)

	req.NoError(repo.RemoveTeamMember(team.ID, users[0]))
	members, err = repo.TeamMembers(team.ID)
	req.NoError(err)
	req.Equal([]uuid.UUID{users[1]}, members)

	req.ErrorIs(repo.RemoveTeamMember(team.ID, users[0]), errors.ErrNotMember)
}

func TestTeamRepository_DeleteTeam(t *testing.T) {
	req := require.New(t)
	repo := NewTeamRepository(newTestDB(t))
	group := uuid.New()
	lead := uuid.New()
	member := uuid.New()

	team, err := repo.CreateTeam(group, "frontend", 3, lead)
	req.NoError(err)
	req.NoError(repo.AddTeamMember(team.ID, member))

	req.NoError(repo.DeleteTeam(team.ID))

	_, err = repo.GetTeam(team.ID)
	req.ErrorIs(err, errors.ErrNotFound)

	teams, err := repo.TeamsInGroup(group)
	req.NoError(err)
	req.Empty(teams)

	teamsOf, err := repo.TeamsOf(member)
	req.NoError(err)
	req.Empty(teamsOf)

	owned, err := repo.TeamsOwned(lead)
	req.NoError(err)
	req.Empty(owned)
}
