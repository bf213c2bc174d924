package services

import (
	"log/slog"
	"testing"
	"time"

	"teamforge/moderation"
	"teamforge/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const testTokenDuration = time.Hour

// testEnv wires the full service stack over a throwaway store, so the
// orchestration tests exercise the real repositories.
type testEnv struct {
	auth     IAuthService
	groups   IGroupService
	teams    ITeamService
	matching IMatchingService

	userRepo  repositories.IUserRepository
	groupRepo repositories.IGroupRepository
	teamRepo  repositories.ITeamRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() {
		req.NoError(db.Close())
	})

	log := logs.GetLoggerFromLevel(slog.LevelError)
	censor, err := moderation.NewCensor([]string{"badger", "snake"}, '*', log)
	req.NoError(err)

	users := repositories.NewUserRepository(db)
	groups := repositories.NewGroupRepository(db)
	teams := repositories.NewTeamRepository(db)
	rankings := repositories.NewRankingRepository(db)
	assignments := repositories.NewAssignmentRepository(db)
	announcements := repositories.NewAnnouncementRepository(db)

	return &testEnv{
		auth:      NewAuthService(users, groups, rankings, testTokenDuration),
		groups:    NewGroupService(groups, users, rankings, announcements, censor, log),
		teams:     NewTeamService(teams, groups, users, rankings, announcements, censor, log),
		matching:  NewMatchingService(groups, teams, users, rankings, assignments, log),
		userRepo:  users,
		groupRepo: groups,
		teamRepo:  teams,
	}
}

// register creates an account and returns its ID.
func (e *testEnv) register(t *testing.T, username string) uuid.UUID {
	t.Helper()
	req := require.New(t)
	id, err := e.userRepo.CreateUser(username, "not-a-real-hash")
	req.NoError(err)
	return id
}
