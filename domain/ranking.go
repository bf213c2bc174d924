package domain

import "github.com/google/uuid"

// Ranking is one mutual preference row between a user and a team, mirroring
// how rankings are stored: each side's position is filled in independently
// when that side submits its ordered list. A nil position means that side
// has not ranked the other yet.
type Ranking struct {
	TeamID uuid.UUID
	UserID uuid.UUID
	ByTeam *int // position of the user in the team's list, 1-based
	ByUser *int // position of the team in the user's list, 1-based
}
