package services

import (
	"fmt"
	"testing"
	"time"

	"teamforge/auth"
	"teamforge/domain"
	"teamforge/errors"
	"teamforge/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newMockedAuthService wires an AuthService whose group and ranking
// repositories never expect a call; tests that need the deletion cascade
// build their own.
func newMockedAuthService(ctrl *gomock.Controller, users *mocks.MockIUserRepository) IAuthService {
	return NewAuthService(
		users,
		mocks.NewMockIGroupRepository(ctrl),
		mocks.NewMockIRankingRepository(ctrl),
		24*time.Hour,
	)
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newMockedAuthService(ctrl, mockRepo)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		username := "newplayer"
		password := "ComplexPass123!"
		expectedUserID := uuid.New()

		// Expect CreateUser to be called with a hashed password (not the plain one)
		mockRepo.EXPECT().
			CreateUser(username, gomock.Any()).
			Return(expectedUserID, nil).
			Times(1)

		token, err := svc.Register(username, password)

		req.NoError(err)
		req.NotEmpty(token)
	})

	t.Run("should fail with a username error when the name is malformed", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register("x", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrInvalidUsername)
		req.NotErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		token, err := svc.Register("newplayer", "simple")

		req.Error(err)
		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when username is already taken", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser("duplicate", gomock.Any()).
			Return(uuid.Nil, errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register("duplicate", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newMockedAuthService(ctrl, mockRepo)

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		username := "player"
		password := "Secret123456!"

		hashedPassword, _ := auth.HashPassword(password)
		storedUser := domain.User{
			ID:           uuid.New(),
			Username:     username,
			PasswordHash: hashedPassword,
			Roles:        []string{"user"},
		}

		mockRepo.EXPECT().
			GetUserByUsername(username).
			Return(storedUser, nil).
			Times(1)

		token, err := svc.Login(username, password)

		req.NoError(err)
		req.NotEmpty(token)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal(storedUser.ID.String(), claims.UserID)
		req.Equal(username, claims.Username)
	})

	t.Run("should return invalid credentials when password is wrong", func(t *testing.T) {
		req := require.New(t)
		username := "player"

		hashedPassword, _ := auth.HashPassword("CorrectPassword123!")
		storedUser := domain.User{
			Username:     username,
			PasswordHash: hashedPassword,
		}

		mockRepo.EXPECT().
			GetUserByUsername(username).
			Return(storedUser, nil).
			Times(1)

		_, err := svc.Login(username, "WrongPassword123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			GetUserByUsername("unknown").
			Return(domain.User{}, errors.ErrNotFound).
			Times(1)

		_, err := svc.Login("unknown", "anyPassword")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newMockedAuthService(ctrl, mockRepo)
	userID := uuid.New()

	hashedPassword, _ := auth.HashPassword("CurrentPass123!")
	storedUser := domain.User{ID: userID, Username: "player", PasswordHash: hashedPassword}

	t.Run("should rehash and store when the current password matches", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByID(userID).Return(storedUser, nil).Times(1)
		mockRepo.EXPECT().ChangePassword(userID, gomock.Any()).Return(nil).Times(1)

		req.NoError(svc.ChangePassword(userID, "CurrentPass123!", "NextSecret456$"))
	})

	t.Run("should refuse when the current password is wrong", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByID(userID).Return(storedUser, nil).Times(1)
		mockRepo.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword(userID, "WrongPass123!", "NextSecret456$")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should refuse a weak replacement password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByID(userID).Return(storedUser, nil).Times(1)
		mockRepo.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword(userID, "CurrentPass123!", "weak")
		req.ErrorIs(err, errors.ErrInvalidPassword)
	})
}

func TestAuthService_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	mockGroups := mocks.NewMockIGroupRepository(ctrl)
	mockRankings := mocks.NewMockIRankingRepository(ctrl)
	svc := NewAuthService(mockRepo, mockGroups, mockRankings, 24*time.Hour)
	userID := uuid.New()

	hashedPassword, _ := auth.HashPassword("CurrentPass123!")
	storedUser := domain.User{ID: userID, Username: "player", PasswordHash: hashedPassword}

	t.Run("should remove memberships and rankings before the account", func(t *testing.T) {
		req := require.New(t)
		group := domain.Group{ID: uuid.New()}

		mockRepo.EXPECT().GetUserByID(userID).Return(storedUser, nil).Times(1)
		mockGroups.EXPECT().GroupsOf(userID).Return([]domain.Group{group}, nil).Times(1)
		mockRankings.EXPECT().DeleteUserRanking(group.ID, userID).Return(nil).Times(1)
		mockGroups.EXPECT().RemoveMember(group.ID, userID).Return(nil).Times(1)
		mockRepo.EXPECT().DeleteUser(userID).Return(nil).Times(1)

		req.NoError(svc.DeleteAccount(userID, "CurrentPass123!"))
	})

	t.Run("should refuse without the right password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByID(userID).Return(storedUser, nil).Times(1)
		mockRepo.EXPECT().DeleteUser(gomock.Any()).Times(0)

		err := svc.DeleteAccount(userID, "WrongPass123!")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should keep the account when a membership cleanup fails", func(t *testing.T) {
		req := require.New(t)
		group := domain.Group{ID: uuid.New()}
		boom := fmt.Errorf("store unavailable")

		mockRepo.EXPECT().GetUserByID(userID).Return(storedUser, nil).Times(1)
		mockGroups.EXPECT().GroupsOf(userID).Return([]domain.Group{group}, nil).Times(1)
		mockRankings.EXPECT().DeleteUserRanking(group.ID, userID).Return(boom).Times(1)
		mockRepo.EXPECT().DeleteUser(gomock.Any()).Times(0)

		req.ErrorIs(svc.DeleteAccount(userID, "CurrentPass123!"), boom)
	})
}

// Deleting an account must not leave its memberships or rankings behind
// in any group it joined.
func TestAuthService_DeleteAccountCascade(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t)

	admin := env.register(t, "admin")
	group, err := env.groups.CreateGroup(admin, "Bootcamp", "boot")
	req.NoError(err)

	_, err = env.auth.Register("mallory", "ComplexPass123!")
	req.NoError(err)
	mallory, err := env.userRepo.GetUserByUsername("mallory")
	req.NoError(err)
	req.NoError(env.groups.Join(group.ID, mallory.ID))

	team, err := env.teams.CreateTeam(group.ID, admin, "alpha", 1)
	req.NoError(err)
	req.NoError(env.teams.RankTeams(group.ID, mallory.ID, []uuid.UUID{team.ID}))

	req.NoError(env.auth.DeleteAccount(mallory.ID, "ComplexPass123!"))

	memberIDs, err := env.groupRepo.Members(group.ID)
	req.NoError(err)
	req.NotContains(memberIDs, mallory.ID)

	has, err := env.teams.HasRankedTeams(group.ID, mallory.ID)
	req.NoError(err)
	req.False(has)
}
