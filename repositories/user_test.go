package repositories

import (
	"testing"

	"teamforge/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	id, err := repo.CreateUser("ann", "hashed-secret")
	req.NoError(err)
	req.NotEqual(uuid.Nil, id)

	byName, err := repo.GetUserByUsername("ann")
	req.NoError(err)
	req.Equal(id, byName.ID)
	req.Equal("hashed-secret", byName.PasswordHash)
	req.Equal([]string{"user"}, byName.Roles)

	byID, err := repo.GetUserByID(id)
	req.NoError(err)
	req.Equal(byName, byID)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.CreateUser("ann", "h1")
	req.NoError(err)

	_, err = repo.CreateUser("ann", "h2")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestUserRepository_ChangeUsername(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	id, err := repo.CreateUser("ann", "h1")
	req.NoError(err)
	_, err = repo.CreateUser("bob", "h2")
	req.NoError(err)

	t.Run("renames and keeps the id index consistent", func(t *testing.T) {
		req := require.New(t)
		req.NoError(repo.ChangeUsername(id, "annika"))

		_, err := repo.GetUserByUsername("ann")
		req.ErrorIs(err, errors.ErrNotFound)

		user, err := repo.GetUserByID(id)
		req.NoError(err)
		req.Equal("annika", user.Username)
	})

	t.Run("refuses a taken name", func(t *testing.T) {
		require.ErrorIs(t, repo.ChangeUsername(id, "bob"), errors.ErrUserAlreadyExists)
	})
}

func TestUserRepository_ChangePasswordAndDelete(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(newTestDB(t))

	id, err := repo.CreateUser("ann", "h1")
	req.NoError(err)

	req.NoError(repo.ChangePassword(id, "h2"))
	user, err := repo.GetUserByID(id)
	req.NoError(err)
	req.Equal("h2", user.PasswordHash)

	req.NoError(repo.DeleteUser(id))
	_, err = repo.GetUserByID(id)
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = repo.GetUserByUsername("ann")
	req.ErrorIs(err, errors.ErrNotFound)
}
