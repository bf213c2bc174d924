package matching

import "sort"

// aggregate folds the one-to-one slot matching back into team terms. Teams
// come out in quota input order; members within a team follow the order
// users were first supplied, not slot order, so the output is stable
// across runs. Users left unmatched are reported explicitly.
func aggregate(exp *expansion, eng *engine) Result {
	userOrder := make(map[string]int, len(exp.users))
	for i, user := range exp.users {
		userOrder[user] = i
	}

	assigned := make(map[string]struct{}, len(exp.users))

	res := Result{Assignments: make([]Assignment, 0, len(exp.teams))}
	for _, ts := range exp.teams {
		members := []string{}
		for _, slot := range ts.slots {
			if user, ok := eng.matchedUser(slot); ok {
				members = append(members, user)
				assigned[user] = struct{}{}
			}
		}
		sort.Slice(members, func(i, j int) bool {
			return userOrder[members[i]] < userOrder[members[j]]
		})
		res.Assignments = append(res.Assignments, Assignment{Team: ts.team, Members: members})
	}

	for _, user := range exp.users {
		if _, ok := assigned[user]; !ok {
			res.Unmatched = append(res.Unmatched, user)
		}
	}

	return res
}
