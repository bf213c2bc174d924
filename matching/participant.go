package matching

// participant is one side of the expanded one-to-one instance, either a
// user or a slot. Rank lookups are built once so preference comparisons
// are O(1); the proposal cursor only ever moves forward, which is what
// bounds the whole run.
type participant struct {
	name   string
	prefs  []string
	rank   map[string]int
	match  *participant
	cursor int
}

func newParticipant(name string, prefs []string) *participant {
	p := &participant{
		name:  name,
		prefs: prefs,
		rank:  make(map[string]int, len(prefs)),
	}
	for i, candidate := range prefs {
		p.rank[candidate] = i
	}
	return p
}

// rankOf places a candidate in this participant's order. A candidate
// absent from the list ranks after every listed one but stays comparable;
// whether such a candidate is acceptable at all is the engine's call.
func (p *participant) rankOf(name string) int {
	if r, ok := p.rank[name]; ok {
		return r
	}
	return len(p.prefs)
}

// listed reports whether the candidate appears in the preference list.
func (p *participant) listed(name string) bool {
	_, ok := p.rank[name]
	return ok
}

// prefers reports whether the candidate beats the current match. Being
// unmatched loses to any candidate.
func (p *participant) prefers(candidate *participant) bool {
	if p.match == nil {
		return true
	}
	return p.rankOf(candidate.name) < p.rankOf(p.match.name)
}

// nextCandidate returns the next never-proposed candidate name, or false
// when the list is exhausted. The cursor is never reset: one proposal per
// candidate per run.
func (p *participant) nextCandidate() (string, bool) {
	if p.cursor >= len(p.prefs) {
		return "", false
	}
	name := p.prefs[p.cursor]
	p.cursor++
	return name, true
}

// exhausted reports whether the participant has proposed to everyone it
// ever will. Terminal for a proposer that is still unmatched.
func (p *participant) exhausted() bool {
	return p.cursor >= len(p.prefs)
}

// engage links p and q as each other's match. Any previous partner on
// either side is freed in the same step, so a broken match never leaves
// one side pointing at a partner that no longer points back. This is the
// engine's only mutation.
func (p *participant) engage(q *participant) {
	if p.match != nil {
		p.match.match = nil
	}
	if q.match != nil {
		q.match.match = nil
	}
	p.match = q
	q.match = p
}
