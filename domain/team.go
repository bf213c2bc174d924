package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team is a capacity-limited destination inside a group. Quota is the
// number of users the matching run may assign to it.
type Team struct {
	ID        uuid.UUID
	Name      string
	GroupID   uuid.UUID
	Quota     int
	LeadID    uuid.UUID
	CreatedAt time.Time
}
