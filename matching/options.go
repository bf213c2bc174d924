package matching

// rules captures the two behaviors the engine leaves to the caller: how
// capacity gaps are treated and whether preference lists are exhaustive.
type rules struct {
	lenientCapacity bool
	closedLists     bool
}

func defaultRules() rules {
	return rules{}
}

// Option adjusts how a single Match run interprets its inputs.
type Option func(*rules)

// WithLenientCapacity restores the legacy input handling: a team that is
// missing from the quota set, or whose capacity is below one, contributes
// zero slots and is skipped silently instead of failing the run. Unknown
// names are tolerated the same way: a nonexistent team contributes no
// slots, a nonexistent user simply never proposes.
func WithLenientCapacity() Option {
	return func(r *rules) {
		r.lenientCapacity = true
	}
}

// WithClosedLists treats preference lists as exhaustive: a participant
// absent from a list is never acceptable to its owner. The default is open
// lists, where an absent participant ranks below every listed one but can
// still be matched.
func WithClosedLists() Option {
	return func(r *rules) {
		r.closedLists = true
	}
}
