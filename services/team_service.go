package services

import (
	stderrors "errors"
	"log/slog"

	"teamforge/domain"
	"teamforge/errors"
	"teamforge/matching"
	"teamforge/moderation"
	"teamforge/repositories"

	"github.com/google/uuid"
)

type ITeamService interface {
	CreateTeam(groupID, leadID uuid.UUID, name string, quota int) (domain.Team, error)
	GetTeam(id uuid.UUID) (domain.Team, error)
	EditTeam(teamID, callerID uuid.UUID, name string, quota int, leadID uuid.UUID) error
	DeleteTeam(teamID, callerID uuid.UUID) error
	TeamsInGroup(groupID uuid.UUID) ([]domain.Team, error)
	AddMember(teamID, callerID, userID uuid.UUID) error
	RemoveMember(teamID, callerID, userID uuid.UUID) error
	TeamMembers(teamID uuid.UUID) ([]domain.User, error)
	TeamsOf(userID uuid.UUID) ([]domain.Team, error)
	TeamsOwned(leadID uuid.UUID) ([]domain.Team, error)

	RankUsers(teamID, callerID uuid.UUID, orderedUserIDs []uuid.UUID) error
	RankTeams(groupID, userID uuid.UUID, orderedTeamIDs []uuid.UUID) error
	HasRankedUsers(teamID uuid.UUID) (bool, error)
	HasRankedTeams(groupID, userID uuid.UUID) (bool, error)

	PostAnnouncement(teamID, authorID uuid.UUID, text string, tags []string) (domain.Announcement, error)
	Announcements(teamID, callerID uuid.UUID, tag string) ([]domain.Announcement, error)
	EditAnnouncement(announcementID, callerID uuid.UUID, text string) error
	DeleteAnnouncement(announcementID, callerID uuid.UUID) error
}

type TeamService struct {
	teams         repositories.ITeamRepository
	groups        repositories.IGroupRepository
	users         repositories.IUserRepository
	rankings      repositories.IRankingRepository
	announcements repositories.IAnnouncementRepository
	censor        *moderation.Censor
	log           *slog.Logger
}

func NewTeamService(
	teams repositories.ITeamRepository,
	groups repositories.IGroupRepository,
	users repositories.IUserRepository,
	rankings repositories.IRankingRepository,
	announcements repositories.IAnnouncementRepository,
	censor *moderation.Censor,
	log *slog.Logger,
) ITeamService {
	return &TeamService{
		teams:         teams,
		groups:        groups,
		users:         users,
		rankings:      rankings,
		announcements: announcements,
		censor:        censor,
		log:           log,
	}
}

// CreateTeam registers a team in a group during signup. The creator
// becomes the team lead and must already be a group member.
func (s *TeamService) CreateTeam(groupID, leadID uuid.UUID, name string, quota int) (domain.Team, error) {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return domain.Team{}, err
	}
	if !group.InSignup() {
		return domain.Team{}, errors.ErrSignupClosed
	}
	if quota < 1 {
		return domain.Team{}, matching.ErrInvalidQuota
	}
	if err := s.requireMember(groupID, leadID); err != nil {
		return domain.Team{}, err
	}

	team, err := s.teams.CreateTeam(groupID, name, quota, leadID)
	if err != nil {
		return domain.Team{}, err
	}
	s.log.Info("team created",
		slog.String("team", team.ID.String()),
		slog.String("group", groupID.String()),
		slog.Int("quota", quota))
	return team, nil
}

func (s *TeamService) GetTeam(id uuid.UUID) (domain.Team, error) {
	return s.teams.GetTeam(id)
}

func (s *TeamService) EditTeam(teamID, callerID uuid.UUID, name string, quota int, leadID uuid.UUID) error {
	team, err := s.requireLead(teamID, callerID)
	if err != nil {
		return err
	}
	group, err := s.groups.GetGroup(team.GroupID)
	if err != nil {
		return err
	}
	if !group.InSignup() {
		return errors.ErrSignupClosed
	}
	if quota < 1 {
		return matching.ErrInvalidQuota
	}
	return s.teams.EditTeam(teamID, name, quota, leadID)
}

// DeleteTeam is allowed for the lead or the group admin.
func (s *TeamService) DeleteTeam(teamID, callerID uuid.UUID) error {
	team, err := s.teams.GetTeam(teamID)
	if err != nil {
		return err
	}
	if team.LeadID != callerID {
		group, err := s.groups.GetGroup(team.GroupID)
		if err != nil {
			return err
		}
		if group.AdminID != callerID {
			return errors.ErrNotTeamLead
		}
	}
	return s.teams.DeleteTeam(teamID)
}

func (s *TeamService) TeamsInGroup(groupID uuid.UUID) ([]domain.Team, error) {
	return s.teams.TeamsInGroup(groupID)
}

// AddMember lets the lead take on a group member directly, outside a
// matching run.
func (s *TeamService) AddMember(teamID, callerID, userID uuid.UUID) error {
	team, err := s.requireLead(teamID, callerID)
	if err != nil {
		return err
	}
	if err := s.requireMember(team.GroupID, userID); err != nil {
		return err
	}
	return s.teams.AddTeamMember(teamID, userID)
}

// RemoveMember lets the lead or the group admin drop a team member.
func (s *TeamService) RemoveMember(teamID, callerID, userID uuid.UUID) error {
	team, err := s.teams.GetTeam(teamID)
	if err != nil {
		return err
	}
	if team.LeadID != callerID {
		group, err := s.groups.GetGroup(team.GroupID)
		if err != nil {
			return err
		}
		if group.AdminID != callerID {
			return errors.ErrNotTeamLead
		}
	}
	return s.teams.RemoveTeamMember(teamID, userID)
}

// TeamMembers resolves member IDs to full users; IDs whose account no
// longer resolves are skipped.
func (s *TeamService) TeamMembers(teamID uuid.UUID) ([]domain.User, error) {
	ids, err := s.teams.TeamMembers(teamID)
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

func (s *TeamService) TeamsOf(userID uuid.UUID) ([]domain.Team, error) {
	return s.teams.TeamsOf(userID)
}

func (s *TeamService) TeamsOwned(leadID uuid.UUID) ([]domain.Team, error) {
	return s.teams.TeamsOwned(leadID)
}

// RankUsers stores the lead's ordered preference over candidates. Every
// ranked user must be a member of the team's group.
func (s *TeamService) RankUsers(teamID, callerID uuid.UUID, orderedUserIDs []uuid.UUID) error {
	team, err := s.requireLead(teamID, callerID)
	if err != nil {
		return err
	}
	group, err := s.groups.GetGroup(team.GroupID)
	if err != nil {
		return err
	}
	if !group.InSignup() {
		return errors.ErrSignupClosed
	}
	for _, uid := range orderedUserIDs {
		member, err := s.groups.IsMember(team.GroupID, uid)
		if err != nil {
			return err
		}
		if !member {
			return errors.ErrNotMember
		}
	}
	return s.rankings.SaveTeamRanking(teamID, orderedUserIDs)
}

// RankTeams stores a member's ordered preference over the group's teams.
func (s *TeamService) RankTeams(groupID, userID uuid.UUID, orderedTeamIDs []uuid.UUID) error {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return err
	}
	if !group.InSignup() {
		return errors.ErrSignupClosed
	}
	if err := s.requireMember(groupID, userID); err != nil {
		return err
	}
	for _, tid := range orderedTeamIDs {
		team, err := s.teams.GetTeam(tid)
		if err != nil {
			return err
		}
		if team.GroupID != groupID {
			return errors.ErrNotFound
		}
	}
	return s.rankings.SaveUserRanking(groupID, userID, orderedTeamIDs)
}

func (s *TeamService) HasRankedUsers(teamID uuid.UUID) (bool, error) {
	return s.rankings.HasRankedUsers(teamID)
}

func (s *TeamService) HasRankedTeams(groupID, userID uuid.UUID) (bool, error) {
	return s.rankings.HasRankedTeams(groupID, userID)
}

// PostAnnouncement is lead only. The text goes through the censor first.
func (s *TeamService) PostAnnouncement(teamID, authorID uuid.UUID, text string, tags []string) (domain.Announcement, error) {
	if _, err := s.requireLead(teamID, authorID); err != nil {
		return domain.Announcement{}, err
	}
	clean, hits := s.censor.Clean(text)
	if len(hits) > 0 {
		s.log.Warn("announcement censored",
			slog.String("team", teamID.String()),
			slog.Int("hits", len(hits)))
	}
	return s.announcements.Create(domain.ScopeTeam, teamID, authorID, clean, tags)
}

// Announcements returns the team board for its members or its lead.
func (s *TeamService) Announcements(teamID, callerID uuid.UUID, tag string) ([]domain.Announcement, error) {
	team, err := s.teams.GetTeam(teamID)
	if err != nil {
		return nil, err
	}
	if team.LeadID != callerID {
		ids, err := s.teams.TeamMembers(teamID)
		if err != nil {
			return nil, err
		}
		found := false
		for _, id := range ids {
			if id == callerID {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.ErrNotMember
		}
	}
	if tag != "" {
		return s.announcements.FilterByTag(domain.ScopeTeam, teamID, tag)
	}
	return s.announcements.ListByOwner(domain.ScopeTeam, teamID)
}

func (s *TeamService) EditAnnouncement(announcementID, callerID uuid.UUID, text string) error {
	if err := s.requireTeamAnnouncement(announcementID, callerID); err != nil {
		return err
	}
	clean, _ := s.censor.Clean(text)
	return s.announcements.Edit(announcementID, clean)
}

func (s *TeamService) DeleteAnnouncement(announcementID, callerID uuid.UUID) error {
	if err := s.requireTeamAnnouncement(announcementID, callerID); err != nil {
		return err
	}
	return s.announcements.Delete(announcementID)
}

// requireTeamAnnouncement checks that the announcement is team scoped
// and that the caller leads the owning team.
func (s *TeamService) requireTeamAnnouncement(announcementID, callerID uuid.UUID) error {
	ann, err := s.announcements.Get(announcementID)
	if err != nil {
		return err
	}
	if ann.Scope != domain.ScopeTeam {
		return errors.ErrNotFound
	}
	_, err = s.requireLead(ann.OwnerID, callerID)
	return err
}

func (s *TeamService) requireLead(teamID, callerID uuid.UUID) (domain.Team, error) {
	team, err := s.teams.GetTeam(teamID)
	if err != nil {
		return domain.Team{}, err
	}
	if team.LeadID != callerID {
		return domain.Team{}, errors.ErrNotTeamLead
	}
	return team, nil
}

func (s *TeamService) requireMember(groupID, userID uuid.UUID) error {
	member, err := s.groups.IsMember(groupID, userID)
	if err != nil {
		return err
	}
	if !member {
		return errors.ErrNotMember
	}
	return nil
}
