package services

import (
	"fmt"
	"time"

	"teamforge/auth"
	"teamforge/errors"
	"teamforge/repositories"

	"github.com/google/uuid"
)

type IAuthService interface {
	Register(username, password string) (Token, error)
	Login(username, password string) (Token, error)
	ChangeUsername(userID uuid.UUID, username string) error
	ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error
	DeleteAccount(userID uuid.UUID, password string) error
}

type AuthService struct {
	users         repositories.IUserRepository
	groups        repositories.IGroupRepository
	rankings      repositories.IRankingRepository
	tokenDuration time.Duration
}

type Token string

func NewAuthService(
	users repositories.IUserRepository,
	groups repositories.IGroupRepository,
	rankings repositories.IRankingRepository,
	tokenDuration time.Duration,
) IAuthService {
	return &AuthService{
		users:         users,
		groups:        groups,
		rankings:      rankings,
		tokenDuration: tokenDuration,
	}
}

func (s *AuthService) Register(username, password string) (Token, error) {
	// 1. Validate business rules (username format, password complexity)
	// We check this before any expensive cryptographic operation.
	if err := auth.ValidateUsername(username); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidUsername, err)
	}
	if err := auth.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the user with the generated hash
	userID, err := s.users.CreateUser(username, hashedPassword)
	if err != nil {
		return "", err // Will propagate ErrUserAlreadyExists if the name is taken
	}

	// 4. Generate the initial session token
	token, err := auth.GenerateToken(userID.String(), username, []string{"user"}, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

func (s *AuthService) Login(username, password string) (Token, error) {
	// 1. Retrieve user by username from storage
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return "", errors.ErrInvalidCredentials
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	// 3. Issue the JWT token
	token, err := auth.GenerateToken(user.ID.String(), user.Username, user.Roles, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

func (s *AuthService) ChangeUsername(userID uuid.UUID, username string) error {
	if err := auth.ValidateUsername(username); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidUsername, err)
	}
	return s.users.ChangeUsername(userID, username)
}

// ChangePassword re-authenticates with the current password before
// accepting the new one.
func (s *AuthService) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(currentPassword, user.PasswordHash)
	if err != nil || !match {
		return errors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}
	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}
	return s.users.ChangePassword(userID, hashedPassword)
}

// DeleteAccount requires the password as confirmation. Memberships and
// rankings go with the account, so no group is left pointing at a user
// that no longer resolves.
func (s *AuthService) DeleteAccount(userID uuid.UUID, password string) error {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return errors.ErrInvalidCredentials
	}

	groups, err := s.groups.GroupsOf(userID)
	if err != nil {
		return err
	}
	for _, group := range groups {
		if err := s.rankings.DeleteUserRanking(group.ID, userID); err != nil {
			return err
		}
		if err := s.groups.RemoveMember(group.ID, userID); err != nil {
			return err
		}
	}
	return s.users.DeleteUser(userID)
}
