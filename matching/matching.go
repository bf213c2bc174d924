package matching

import "errors"

// Sentinel errors reported before any matching state is built.
var (
	// ErrMissingQuota is returned when a team appears in a preference list
	// but has no capacity entry.
	ErrMissingQuota = errors.New("team has no capacity entry")

	// ErrInvalidQuota is returned when a team's capacity is below one.
	ErrInvalidQuota = errors.New("team capacity must be at least one")

	// ErrUnknownName is returned when a preference list names a user or
	// team that does not exist on the other side of the instance.
	ErrUnknownName = errors.New("preference names an unknown participant")
)

// Preference is one participant's ordered choice list, most preferred first.
// Inputs are slices rather than maps so that two runs over the same data
// walk participants in the same order and produce identical output.
type Preference struct {
	Name    string
	Choices []string
}

// Quota is the maximum number of users a team may be assigned.
type Quota struct {
	Team     string
	Capacity int
}

// Assignment lists the users placed on one team, ordered by their first
// appearance in the user preference input.
type Assignment struct {
	Team    string
	Members []string
}

// Result is the outcome of a run. Every team with capacity appears in
// Assignments, with an empty member list when nothing was assigned to it.
// Users whose preference lists were exhausted without a match are reported
// in Unmatched rather than silently dropped.
type Result struct {
	Assignments []Assignment
	Unmatched   []string
}

// Members returns the users assigned to the named team and whether the
// team took part in the run at all.
func (r Result) Members(team string) ([]string, bool) {
	for _, a := range r.Assignments {
		if a.Team == team {
			return a.Members, true
		}
	}
	return nil, false
}

// Match runs one capacitated stable-matching instance: team preference
// lists over users, user preference lists over teams, and per-team
// capacities. Inputs are validated up front; once matching starts the run
// cannot fail, and calling again with corrected inputs is always safe.
func Match(teamPrefs, userPrefs []Preference, quotas []Quota, opts ...Option) (Result, error) {
	rules := defaultRules()
	for _, opt := range opts {
		opt(&rules)
	}

	exp, err := expand(teamPrefs, userPrefs, quotas, rules)
	if err != nil {
		return Result{}, err
	}

	eng := newEngine(exp, rules)
	eng.run()

	return aggregate(exp, eng), nil
}
