package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phase is where a group stands in its lifecycle. During signup members
// join and rankings are collected; running the assignment moves the group
// to Matched and freezes both.
type Phase string

const (
	PhaseSignup  Phase = "signup"
	PhaseMatched Phase = "matched"
)

// Group is a pool of users and teams matched together in one run.
type Group struct {
	ID        uuid.UUID
	Name      string
	ShortName string
	Phase     Phase
	AdminID   uuid.UUID
	CreatedAt time.Time
}

// InSignup reports whether the group still accepts members and rankings.
func (g Group) InSignup() bool {
	return g.Phase == PhaseSignup
}
