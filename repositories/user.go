//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"teamforge/domain"
	"teamforge/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(username, hashedPassword string) (uuid.UUID, error)
	GetUserByUsername(username string) (domain.User, error)
	GetUserByID(id uuid.UUID) (domain.User, error)
	ChangeUsername(id uuid.UUID, username string) error
	ChangePassword(id uuid.UUID, hashedPassword string) error
	DeleteUser(id uuid.UUID) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// Key layout: "user:name:<username>" holds the record, "user:id:<uuid>"
// points back at the current username so token subjects resolve after a
// rename.
func userNameKey(username string) []byte { return []byte("user:name:" + username) }
func userIDKey(id uuid.UUID) []byte      { return []byte("user:id:" + id.String()) }

// CreateUser persists a new user with an already-hashed password and
// returns the generated ID.
func (u UserRepository) CreateUser(username, hashedPassword string) (uuid.UUID, error) {
	user := domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userNameKey(username)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(userNameKey(username), data); err != nil {
			return err
		}
		return txn.Set(userIDKey(user.ID), []byte(username))
	})
	if err != nil {
		return uuid.Nil, err
	}

	return user.ID, nil
}

func (u UserRepository) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userNameKey(username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrNotFound
	}
	return user, err
}

func (u UserRepository) GetUserByID(id uuid.UUID) (domain.User, error) {
	var username string
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userIDKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			username = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u.GetUserByUsername(username)
}

// ChangeUsername moves the record under the new name key and repoints the
// id index, failing if the name is taken.
func (u UserRepository) ChangeUsername(id uuid.UUID, username string) error {
	user, err := u.GetUserByID(id)
	if err != nil {
		return err
	}

	old := user.Username
	user.Username = username
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userNameKey(username)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Delete(userNameKey(old)); err != nil {
			return err
		}
		if err := txn.Set(userNameKey(username), data); err != nil {
			return err
		}
		return txn.Set(userIDKey(id), []byte(username))
	})
}

func (u UserRepository) ChangePassword(id uuid.UUID, hashedPassword string) error {
	user, err := u.GetUserByID(id)
	if err != nil {
		return err
	}
	user.PasswordHash = hashedPassword

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userNameKey(user.Username), data)
	})
}

func (u UserRepository) DeleteUser(id uuid.UUID) error {
	user, err := u.GetUserByID(id)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(userNameKey(user.Username)); err != nil {
			return err
		}
		return txn.Delete(userIDKey(id))
	})
}
