package services

import (
	stderrors "errors"
	"log/slog"

	"teamforge/domain"
	"teamforge/errors"
	"teamforge/moderation"
	"teamforge/repositories"

	"github.com/google/uuid"
)

type IGroupService interface {
	CreateGroup(adminID uuid.UUID, name, shortName string) (domain.Group, error)
	GetGroup(id uuid.UUID) (domain.Group, error)
	GetGroupByName(name string) (domain.Group, error)
	DeleteGroup(groupID, callerID uuid.UUID) error
	Join(groupID, userID uuid.UUID) error
	Leave(groupID, userID uuid.UUID) error
	RemoveMember(groupID, callerID, userID uuid.UUID) error
	Members(groupID uuid.UUID) ([]domain.User, error)
	GroupsOf(userID uuid.UUID) ([]domain.Group, error)
	PostAnnouncement(groupID, authorID uuid.UUID, text string, tags []string) (domain.Announcement, error)
	Announcements(groupID, callerID uuid.UUID, tag string) ([]domain.Announcement, error)
	EditAnnouncement(announcementID, callerID uuid.UUID, text string) error
	DeleteAnnouncement(announcementID, callerID uuid.UUID) error
}

type GroupService struct {
	groups        repositories.IGroupRepository
	users         repositories.IUserRepository
	rankings      repositories.IRankingRepository
	announcements repositories.IAnnouncementRepository
	censor        *moderation.Censor
	log           *slog.Logger
}

func NewGroupService(
	groups repositories.IGroupRepository,
	users repositories.IUserRepository,
	rankings repositories.IRankingRepository,
	announcements repositories.IAnnouncementRepository,
	censor *moderation.Censor,
	log *slog.Logger,
) IGroupService {
	return &GroupService{
		groups:        groups,
		users:         users,
		rankings:      rankings,
		announcements: announcements,
		censor:        censor,
		log:           log,
	}
}

// CreateGroup makes the creator the group admin and its first member.
func (s *GroupService) CreateGroup(adminID uuid.UUID, name, shortName string) (domain.Group, error) {
	group, err := s.groups.CreateGroup(name, shortName, adminID)
	if err != nil {
		return domain.Group{}, err
	}
	if err := s.groups.AddMember(group.ID, adminID); err != nil {
		return domain.Group{}, err
	}
	s.log.Info("group created",
		slog.String("group", group.ID.String()),
		slog.String("name", name))
	return group, nil
}

func (s *GroupService) GetGroup(id uuid.UUID) (domain.Group, error) {
	return s.groups.GetGroup(id)
}

func (s *GroupService) GetGroupByName(name string) (domain.Group, error) {
	return s.groups.GetGroupByName(name)
}

func (s *GroupService) DeleteGroup(groupID, callerID uuid.UUID) error {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return err
	}
	return s.groups.DeleteGroup(groupID)
}

func (s *GroupService) Join(groupID, userID uuid.UUID) error {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return err
	}
	if !group.InSignup() {
		return errors.ErrSignupClosed
	}
	return s.groups.AddMember(groupID, userID)
}

// Leave drops the membership and the user's ranking for that group, so a
// later run never sees preferences from someone who left.
func (s *GroupService) Leave(groupID, userID uuid.UUID) error {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return err
	}
	if !group.InSignup() {
		return errors.ErrSignupClosed
	}
	if err := s.groups.RemoveMember(groupID, userID); err != nil {
		return err
	}
	return s.rankings.DeleteUserRanking(groupID, userID)
}

// RemoveMember lets the admin expel a member, clearing the member's
// ranking along with the membership. Unlike Leave it is not phase gated,
// so an admin can always clean up a membership that no longer resolves.
func (s *GroupService) RemoveMember(groupID, callerID, userID uuid.UUID) error {
	if err := s.requireAdmin(groupID, callerID); err != nil {
		return err
	}
	member, err := s.groups.IsMember(groupID, userID)
	if err != nil {
		return err
	}
	if !member {
		return errors.ErrNotMember
	}
	if err := s.groups.RemoveMember(groupID, userID); err != nil {
		return err
	}
	return s.rankings.DeleteUserRanking(groupID, userID)
}

// Members resolves the member IDs to full users, preserving join order.
// IDs whose account no longer resolves are skipped.
func (s *GroupService) Members(groupID uuid.UUID) ([]domain.User, error) {
	ids, err := s.groups.Members(groupID)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.GetUserByID(id)
		if stderrors.Is(err, errors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *GroupService) GroupsOf(userID uuid.UUID) ([]domain.Group, error) {
	return s.groups.GroupsOf(userID)
}

// PostAnnouncement is admin only. The text goes through the censor first.
func (s *GroupService) PostAnnouncement(groupID, authorID uuid.UUID, text string, tags []string) (domain.Announcement, error) {
	if err := s.requireAdmin(groupID, authorID); err != nil {
		return domain.Announcement{}, err
	}
	clean, hits := s.censor.Clean(text)
	if len(hits) > 0 {
		s.log.Warn("announcement censored",
			slog.String("group", groupID.String()),
			slog.Int("hits", len(hits)))
	}
	return s.announcements.Create(domain.ScopeGroup, groupID, authorID, clean, tags)
}

// Announcements returns the group board, optionally filtered by tag.
// Only members (the admin included) may read it.
func (s *GroupService) Announcements(groupID, callerID uuid.UUID, tag string) ([]domain.Announcement, error) {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return nil, err
	}
	if group.AdminID != callerID {
		member, err := s.groups.IsMember(groupID, callerID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, errors.ErrNotMember
		}
	}
	if tag != "" {
		return s.announcements.FilterByTag(domain.ScopeGroup, groupID, tag)
	}
	return s.announcements.ListByOwner(domain.ScopeGroup, groupID)
}

func (s *GroupService) EditAnnouncement(announcementID, callerID uuid.UUID, text string) error {
	if err := s.requireGroupAnnouncement(announcementID, callerID); err != nil {
		return err
	}
	clean, _ := s.censor.Clean(text)
	return s.announcements.Edit(announcementID, clean)
}

func (s *GroupService) DeleteAnnouncement(announcementID, callerID uuid.UUID) error {
	if err := s.requireGroupAnnouncement(announcementID, callerID); err != nil {
		return err
	}
	return s.announcements.Delete(announcementID)
}

func (s *GroupService) requireAdmin(groupID, callerID uuid.UUID) error {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return err
	}
	if group.AdminID != callerID {
		return errors.ErrNotGroupAdmin
	}
	return nil
}

// requireGroupAnnouncement checks that the announcement is group scoped
// and that the caller administers the owning group.
func (s *GroupService) requireGroupAnnouncement(announcementID, callerID uuid.UUID) error {
	ann, err := s.announcements.Get(announcementID)
	if err != nil {
		return err
	}
	if ann.Scope != domain.ScopeGroup {
		return errors.ErrNotFound
	}
	return s.requireAdmin(ann.OwnerID, callerID)
}
