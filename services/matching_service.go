package services

import (
	stderrors "errors"
	"log/slog"
	"sync"

	"teamforge/errors"
	"teamforge/matching"
	"teamforge/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMatchingService interface {
	// RunAssignment gathers a group's preferences and quotas, runs the
	// matching, persists the outcome and advances the group phase.
	RunAssignment(groupID, callerID uuid.UUID) (repositories.AssignmentRun, error)
	Assignment(groupID, callerID uuid.UUID) (repositories.AssignmentRun, error)
}

type MatchingService struct {
	groups      repositories.IGroupRepository
	teams       repositories.ITeamRepository
	users       repositories.IUserRepository
	rankings    repositories.IRankingRepository
	assignments repositories.IAssignmentRepository
	log         *slog.Logger

	mu      sync.Mutex
	running map[uuid.UUID]struct{}
}

func NewMatchingService(
	groups repositories.IGroupRepository,
	teams repositories.ITeamRepository,
	users repositories.IUserRepository,
	rankings repositories.IRankingRepository,
	assignments repositories.IAssignmentRepository,
	log *slog.Logger,
) IMatchingService {
	return &MatchingService{
		groups:      groups,
		teams:       teams,
		users:       users,
		rankings:    rankings,
		assignments: assignments,
		log:         log,
		running:     map[uuid.UUID]struct{}{},
	}
}

// RunAssignment is admin only and allowed once per group: the run moves
// the phase to matched, and a matched group cannot be rerun. Concurrent
// calls on the same group are rejected while the first one is underway.
func (s *MatchingService) RunAssignment(groupID, callerID uuid.UUID) (repositories.AssignmentRun, error) {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return repositories.AssignmentRun{}, err
	}
	if group.AdminID != callerID {
		return repositories.AssignmentRun{}, errors.ErrNotGroupAdmin
	}
	if !group.InSignup() {
		return repositories.AssignmentRun{}, errors.ErrSignupClosed
	}

	if err := s.acquire(groupID); err != nil {
		return repositories.AssignmentRun{}, err
	}
	defer s.release(groupID)

	teamPrefs, userPrefs, quotas, idx, err := s.gather(groupID)
	if err != nil {
		return repositories.AssignmentRun{}, err
	}

	result, err := matching.Match(teamPrefs, userPrefs, quotas)
	if err != nil {
		return repositories.AssignmentRun{}, err
	}
	s.log.Info("matching run complete",
		slog.String("group", groupID.String()),
		slog.Int("teams", len(quotas)),
		slog.Int("users", len(userPrefs)),
		slog.Int("unmatched", len(result.Unmatched)))

	// Persist the outcome as team memberships, then the run itself.
	for _, assignment := range result.Assignments {
		teamID := idx.teamIDByName[assignment.Team]
		for _, member := range assignment.Members {
			if err := s.teams.AddTeamMember(teamID, idx.userIDByName[member]); err != nil {
				return repositories.AssignmentRun{}, err
			}
		}
	}
	if err := s.assignments.SaveRun(groupID, result); err != nil {
		return repositories.AssignmentRun{}, err
	}
	if err := s.groups.AdvancePhase(groupID); err != nil {
		return repositories.AssignmentRun{}, err
	}

	return s.assignments.GetRun(groupID)
}

// Assignment returns the stored run to the admin or any group member.
func (s *MatchingService) Assignment(groupID, callerID uuid.UUID) (repositories.AssignmentRun, error) {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return repositories.AssignmentRun{}, err
	}
	if group.AdminID != callerID {
		member, err := s.groups.IsMember(groupID, callerID)
		if err != nil {
			return repositories.AssignmentRun{}, err
		}
		if !member {
			return repositories.AssignmentRun{}, errors.ErrNotMember
		}
	}
	return s.assignments.GetRun(groupID)
}

// nameIndex maps between the storage layer's IDs and the name-keyed
// world the matching engine works in.
type nameIndex struct {
	teamIDByName map[string]uuid.UUID
	userIDByName map[string]uuid.UUID
}

// gather assembles the matching inputs in deterministic order: quotas
// and team preferences follow team creation order, user preferences
// follow group join order. Rankings that still mention a user who left
// or a team that was deleted are filtered out rather than failing the
// run.
func (s *MatchingService) gather(groupID uuid.UUID) ([]matching.Preference, []matching.Preference, []matching.Quota, nameIndex, error) {
	idx := nameIndex{
		teamIDByName: map[string]uuid.UUID{},
		userIDByName: map[string]uuid.UUID{},
	}

	teams, err := s.teams.TeamsInGroup(groupID)
	if err != nil {
		return nil, nil, nil, idx, err
	}
	memberIDs, err := s.groups.Members(groupID)
	if err != nil {
		return nil, nil, nil, idx, err
	}

	usernameByID := map[uuid.UUID]string{}
	proposerIDs := make([]uuid.UUID, 0, len(memberIDs))
	for _, id := range memberIDs {
		user, err := s.users.GetUserByID(id)
		if stderrors.Is(err, errors.ErrNotFound) {
			// A member record can outlive its account; skip it instead
			// of failing every future run of the group.
			continue
		}
		if err != nil {
			return nil, nil, nil, idx, err
		}
		usernameByID[id] = user.Username
		idx.userIDByName[user.Username] = id
		proposerIDs = append(proposerIDs, id)
	}
	teamNameByID := map[uuid.UUID]string{}
	for _, team := range teams {
		teamNameByID[team.ID] = team.Name
		idx.teamIDByName[team.Name] = team.ID
	}

	quotas := make([]matching.Quota, 0, len(teams))
	teamPrefs := make([]matching.Preference, 0, len(teams))
	for _, team := range teams {
		quotas = append(quotas, matching.Quota{Team: team.Name, Capacity: team.Quota})

		ranked, err := s.rankings.TeamRanking(team.ID)
		if err != nil {
			return nil, nil, nil, idx, err
		}
		ranked = lo.Filter(ranked, func(id uuid.UUID, _ int) bool {
			_, ok := usernameByID[id]
			return ok
		})
		if len(ranked) == 0 {
			continue
		}
		choices := lo.Map(ranked, func(id uuid.UUID, _ int) string {
			return usernameByID[id]
		})
		teamPrefs = append(teamPrefs, matching.Preference{Name: team.Name, Choices: choices})
	}

	userPrefs := make([]matching.Preference, 0, len(proposerIDs))
	for _, id := range proposerIDs {
		ranked, err := s.rankings.UserRanking(groupID, id)
		if err != nil {
			return nil, nil, nil, idx, err
		}
		ranked = lo.Filter(ranked, func(tid uuid.UUID, _ int) bool {
			_, ok := teamNameByID[tid]
			return ok
		})
		choices := lo.Map(ranked, func(tid uuid.UUID, _ int) string {
			return teamNameByID[tid]
		})
		// Members with no ranking still participate; with empty
		// choices they end up in the unmatched list.
		userPrefs = append(userPrefs, matching.Preference{Name: usernameByID[id], Choices: choices})
	}

	return teamPrefs, userPrefs, quotas, idx, nil
}

func (s *MatchingService) acquire(groupID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.running[groupID]; busy {
		return errors.ErrRunInProgress
	}
	s.running[groupID] = struct{}{}
	return nil
}

func (s *MatchingService) release(groupID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.running, groupID)
}
