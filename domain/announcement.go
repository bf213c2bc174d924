package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementScope distinguishes group-wide announcements (posted by a
// group admin) from team announcements (posted by the team lead).
type AnnouncementScope string

const (
	ScopeGroup AnnouncementScope = "group"
	ScopeTeam  AnnouncementScope = "team"
)

// Announcement is a message posted to a group or team board. Text is
// stored after moderation.
type Announcement struct {
	ID       uuid.UUID
	Scope    AnnouncementScope
	OwnerID  uuid.UUID // the group or team the announcement belongs to
	AuthorID uuid.UUID
	Text     string
	Tags     []string
	PostedAt time.Time
}

// HasTag reports whether the announcement carries the given tag.
func (a Announcement) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
