package matching

import "fmt"

// teamSlots records which slot ids belong to a team, in creation order.
type teamSlots struct {
	team  string
	slots []string
}

// expansion is the one-to-one instance produced from a capacitated input:
// every team is cloned into capacity-many slots sharing the team's
// preference list, and every user's team ranking is rewritten into a slot
// ranking that keeps all of a team's slots adjacent.
type expansion struct {
	users     []string            // user input order, the canonical proposer order
	userPrefs map[string][]string // user -> ordered slot ids
	slotPrefs map[string][]string // slot id -> ordered user names
	teams     []teamSlots         // quota input order
}

// expand validates the raw instance and builds the expanded one. All input
// checking happens here, before any mutable matching state exists, so a
// failed run leaves nothing half-linked.
func expand(teamPrefs, userPrefs []Preference, quotas []Quota, r rules) (*expansion, error) {
	if !r.lenientCapacity {
		if err := validate(teamPrefs, userPrefs, quotas); err != nil {
			return nil, err
		}
	}

	exp := &expansion{
		userPrefs: make(map[string][]string, len(userPrefs)),
		slotPrefs: make(map[string][]string, len(quotas)),
	}

	prefsByTeam := make(map[string][]string, len(teamPrefs))
	for _, tp := range teamPrefs {
		prefsByTeam[tp.Name] = tp.Choices
	}

	// One slot per unit of capacity. A slot for a team with no preference
	// list keeps an empty list and will simply never receive a proposal it
	// accepts over another.
	slotsByTeam := make(map[string][]string, len(quotas))
	for _, q := range quotas {
		if q.Capacity < 1 {
			continue // lenient mode only; strict mode rejected above
		}
		slots := make([]string, q.Capacity)
		for i := range slots {
			id := fmt.Sprintf("%s#%d", q.Team, i)
			slots[i] = id
			exp.slotPrefs[id] = prefsByTeam[q.Team]
		}
		slotsByTeam[q.Team] = slots
		exp.teams = append(exp.teams, teamSlots{team: q.Team, slots: slots})
	}

	// Rewrite each user's team ranking into a slot ranking. Appending all
	// of a team's slots in creation order keeps the user's team-level
	// order intact and makes slot order within a team an internal
	// tie-break the user does not control. Teams without slots vanish
	// from the list without shifting anything else.
	for _, up := range userPrefs {
		exp.users = append(exp.users, up.Name)
		var choices []string
		for _, team := range up.Choices {
			choices = append(choices, slotsByTeam[team]...)
		}
		exp.userPrefs[up.Name] = choices
	}

	return exp, nil
}

// validate enforces the strict input contract: every ranked team has a
// usable capacity entry, and every name in a preference list exists on the
// opposite side of the instance.
func validate(teamPrefs, userPrefs []Preference, quotas []Quota) error {
	capacityOf := make(map[string]int, len(quotas))
	for _, q := range quotas {
		if q.Capacity < 1 {
			return fmt.Errorf("%w: team %q has capacity %d", ErrInvalidQuota, q.Team, q.Capacity)
		}
		capacityOf[q.Team] = q.Capacity
	}

	knownUsers := make(map[string]struct{}, len(userPrefs))
	for _, up := range userPrefs {
		knownUsers[up.Name] = struct{}{}
	}
	knownTeams := make(map[string]struct{}, len(teamPrefs))
	for _, tp := range teamPrefs {
		knownTeams[tp.Name] = struct{}{}
	}

	for _, tp := range teamPrefs {
		if _, ok := capacityOf[tp.Name]; !ok {
			return fmt.Errorf("%w: team %q", ErrMissingQuota, tp.Name)
		}
		for _, user := range tp.Choices {
			if _, ok := knownUsers[user]; !ok {
				return fmt.Errorf("%w: team %q ranks user %q", ErrUnknownName, tp.Name, user)
			}
		}
	}

	for _, up := range userPrefs {
		for _, team := range up.Choices {
			_, ranked := knownTeams[team]
			_, hasCapacity := capacityOf[team]
			switch {
			case !ranked && !hasCapacity:
				return fmt.Errorf("%w: user %q ranks team %q", ErrUnknownName, up.Name, team)
			case !hasCapacity:
				return fmt.Errorf("%w: team %q", ErrMissingQuota, team)
			}
		}
	}

	return nil
}
