package errors

import "fmt"

var (
	ErrUserAlreadyExists  = fmt.Errorf("username already taken")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrInvalidUsername    = fmt.Errorf("username must be 3 to 30 alphanumeric characters")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("could not generate session token")

	ErrNotFound      = fmt.Errorf("not found")
	ErrNotGroupAdmin = fmt.Errorf("only a group admin can perform this action")
	ErrNotTeamLead   = fmt.Errorf("only the team lead can perform this action")
	ErrNotMember     = fmt.Errorf("user is not a member of this group")
	ErrNameInUse     = fmt.Errorf("name already in use")

	// ErrSignupClosed is returned when rankings or membership changes are
	// attempted after a group's assignment has been run.
	ErrSignupClosed = fmt.Errorf("group is no longer in the signup phase")

	// ErrRunInProgress is returned when a second assignment run is
	// triggered for a group whose previous run has not finished persisting.
	ErrRunInProgress = fmt.Errorf("an assignment run is already in progress for this group")

	ErrEmptyWords = fmt.Errorf("no words have been found")
)
