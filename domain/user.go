// Package domain contains the core concepts of the team-formation system.
// No storage, network, or transport logic belongs here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered participant. The username doubles as the public
// identity used in preference lists and assignments.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}
