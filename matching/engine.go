package matching

// engine runs deferred acceptance over the expanded instance: users
// propose in input order, slots hold their best offer so far and trade up
// when a better proposer arrives.
type engine struct {
	proposers []*participant // expanded users, canonical input order
	reviewers map[string]*participant
	closed    bool
}

func newEngine(exp *expansion, r rules) *engine {
	e := &engine{
		reviewers: make(map[string]*participant, len(exp.slotPrefs)),
		closed:    r.closedLists,
	}
	for _, user := range exp.users {
		e.proposers = append(e.proposers, newParticipant(user, exp.userPrefs[user]))
	}
	for _, ts := range exp.teams {
		for _, slot := range ts.slots {
			e.reviewers[slot] = newParticipant(slot, exp.slotPrefs[slot])
		}
	}
	return e
}

// run repeats passes over the proposers until every one of them is either
// matched or out of candidates. Each free proposer walks its list until it
// lands a tentative match or exhausts it; a displaced proposer re-enters
// on the next pass. Every iteration of the inner loop advances a cursor
// that never rewinds, so the run takes at most the sum of all preference
// list lengths in proposal steps.
func (e *engine) run() {
	for {
		active := false
		for _, p := range e.proposers {
			if p.match != nil || p.exhausted() {
				continue
			}
			active = true
			e.propose(p)
		}
		if !active {
			return
		}
	}
}

// propose lets one free proposer work through its remaining candidates.
func (e *engine) propose(p *participant) {
	for p.match == nil {
		name, ok := p.nextCandidate()
		if !ok {
			return
		}
		q := e.reviewers[name]
		if e.closed && !q.listed(p.name) {
			// Exhaustive lists: a reviewer never accepts someone it
			// did not rank.
			continue
		}
		if q.match == nil || q.prefers(p) {
			p.engage(q)
		}
	}
}

// matchedUser returns the user a slot holds at the terminal state.
func (e *engine) matchedUser(slot string) (string, bool) {
	q, ok := e.reviewers[slot]
	if !ok || q.match == nil {
		return "", false
	}
	return q.match.name, true
}
