package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// The worked example from the original system, verified by hand simulation
// of deferred acceptance over capacity clones.
func TestMatch_CanonicalScenario(t *testing.T) {
	req := require.New(t)

	teamPrefs := []Preference{
		{Name: "d1", Choices: []string{"s1", "s2", "s3", "s4"}},
		{Name: "d2", Choices: []string{"s4", "s3", "s2", "s1"}},
	}
	userPrefs := []Preference{
		{Name: "s1", Choices: []string{"d1", "d2"}},
		{Name: "s2", Choices: []string{"d2", "d1"}},
		{Name: "s3", Choices: []string{"d2", "d1"}},
		{Name: "s4", Choices: []string{"d1", "d2"}},
	}
	quotas := []Quota{{Team: "d1", Capacity: 2}, {Team: "d2", Capacity: 2}}

	res, err := Match(teamPrefs, userPrefs, quotas)
	req.NoError(err)

	d1, ok := res.Members("d1")
	req.True(ok)
	req.Equal([]string{"s1", "s4"}, d1)

	d2, ok := res.Members("d2")
	req.True(ok)
	req.Equal([]string{"s2", "s3"}, d2)

	req.Empty(res.Unmatched)
	requireStable(t, teamPrefs, userPrefs, quotas, res)
}

func TestMatch_Validation(t *testing.T) {
	t.Run("rejects a ranked team without a quota entry", func(t *testing.T) {
		req := require.New(t)
		_, err := Match(
			[]Preference{{Name: "blue", Choices: []string{"ann"}}},
			[]Preference{{Name: "ann", Choices: []string{"blue"}}},
			nil,
		)
		req.ErrorIs(err, ErrMissingQuota)
	})

	t.Run("rejects a quota below one", func(t *testing.T) {
		req := require.New(t)
		_, err := Match(
			[]Preference{{Name: "blue", Choices: []string{"ann"}}},
			[]Preference{{Name: "ann", Choices: []string{"blue"}}},
			[]Quota{{Team: "blue", Capacity: 0}},
		)
		req.ErrorIs(err, ErrInvalidQuota)
	})

	t.Run("rejects a team ranking an unknown user", func(t *testing.T) {
		req := require.New(t)
		_, err := Match(
			[]Preference{{Name: "blue", Choices: []string{"ghost"}}},
			[]Preference{{Name: "ann", Choices: []string{"blue"}}},
			[]Quota{{Team: "blue", Capacity: 1}},
		)
		req.ErrorIs(err, ErrUnknownName)
	})

	t.Run("rejects a user ranking a team that exists nowhere", func(t *testing.T) {
		req := require.New(t)
		_, err := Match(
			[]Preference{{Name: "blue", Choices: []string{"ann"}}},
			[]Preference{{Name: "ann", Choices: []string{"blue", "ghost"}}},
			[]Quota{{Team: "blue", Capacity: 1}},
		)
		req.ErrorIs(err, ErrUnknownName)
	})

	t.Run("accepts a team with capacity but no preference list", func(t *testing.T) {
		req := require.New(t)
		res, err := Match(
			nil,
			[]Preference{{Name: "ann", Choices: []string{"blue"}}},
			[]Quota{{Team: "blue", Capacity: 1}},
		)
		req.NoError(err)
		members, ok := res.Members("blue")
		req.True(ok)
		req.Equal([]string{"ann"}, members)
	})
}

func TestMatch_LenientCapacity(t *testing.T) {
	t.Run("a team without capacity never receives members", func(t *testing.T) {
		req := require.New(t)
		res, err := Match(
			[]Preference{
				{Name: "blue", Choices: []string{"ann", "bob"}},
				{Name: "red", Choices: []string{"ann", "bob"}},
			},
			[]Preference{
				{Name: "ann", Choices: []string{"red", "blue"}},
				{Name: "bob", Choices: []string{"red", "blue"}},
			},
			[]Quota{{Team: "blue", Capacity: 2}},
			WithLenientCapacity(),
		)
		req.NoError(err)

		_, ok := res.Members("red")
		req.False(ok, "a team with no capacity entry contributes no slots")

		blue, ok := res.Members("blue")
		req.True(ok)
		req.Equal([]string{"ann", "bob"}, blue)
	})

	t.Run("a zero quota behaves like an absent team", func(t *testing.T) {
		req := require.New(t)
		res, err := Match(
			[]Preference{{Name: "blue", Choices: []string{"ann"}}},
			[]Preference{{Name: "ann", Choices: []string{"blue"}}},
			[]Quota{{Team: "blue", Capacity: 0}},
			WithLenientCapacity(),
		)
		req.NoError(err)
		_, ok := res.Members("blue")
		req.False(ok)
		req.Equal([]string{"ann"}, res.Unmatched)
	})
}

func TestMatch_UnmatchedUsers(t *testing.T) {
	t.Run("an empty preference list never matches", func(t *testing.T) {
		req := require.New(t)
		res, err := Match(
			[]Preference{{Name: "blue", Choices: []string{"ann", "bob"}}},
			[]Preference{
				{Name: "ann", Choices: nil},
				{Name: "bob", Choices: []string{"blue"}},
			},
			[]Quota{{Team: "blue", Capacity: 2}},
		)
		req.NoError(err)
		blue, _ := res.Members("blue")
		req.Equal([]string{"bob"}, blue)
		req.Equal([]string{"ann"}, res.Unmatched)
	})

	t.Run("a displaced user with nowhere left to go stays unmatched", func(t *testing.T) {
		req := require.New(t)
		teamPrefs := []Preference{{Name: "blue", Choices: []string{"carol", "bob"}}}
		userPrefs := []Preference{
			{Name: "bob", Choices: []string{"blue"}},
			{Name: "carol", Choices: []string{"blue"}},
		}
		quotas := []Quota{{Team: "blue", Capacity: 1}}

		res, err := Match(teamPrefs, userPrefs, quotas)
		req.NoError(err)
		blue, _ := res.Members("blue")
		req.Equal([]string{"carol"}, blue)
		req.Equal([]string{"bob"}, res.Unmatched)
		requireStable(t, teamPrefs, userPrefs, quotas, res)
	})
}

func TestMatch_ClosedLists(t *testing.T) {
	teamPrefs := []Preference{{Name: "blue", Choices: []string{"ann"}}}
	userPrefs := []Preference{
		{Name: "ann", Choices: nil},
		{Name: "bob", Choices: []string{"blue"}},
	}
	quotas := []Quota{{Team: "blue", Capacity: 1}}

	t.Run("open lists accept an unranked proposer", func(t *testing.T) {
		req := require.New(t)
		res, err := Match(teamPrefs, userPrefs, quotas)
		req.NoError(err)
		blue, _ := res.Members("blue")
		req.Equal([]string{"bob"}, blue)
	})

	t.Run("closed lists refuse an unranked proposer", func(t *testing.T) {
		req := require.New(t)
		res, err := Match(teamPrefs, userPrefs, quotas, WithClosedLists())
		req.NoError(err)
		blue, _ := res.Members("blue")
		req.Empty(blue)
		req.Equal([]string{"ann", "bob"}, res.Unmatched)
	})
}

func TestMatch_Properties(t *testing.T) {
	// A lopsided instance: more users than capacity, overlapping tastes.
	teamPrefs := []Preference{
		{Name: "alpha", Choices: []string{"u1", "u3", "u5", "u2", "u4", "u6"}},
		{Name: "beta", Choices: []string{"u6", "u5", "u4", "u3", "u2", "u1"}},
		{Name: "gamma", Choices: []string{"u2", "u4", "u6", "u1", "u3", "u5"}},
	}
	userPrefs := []Preference{
		{Name: "u1", Choices: []string{"alpha", "beta", "gamma"}},
		{Name: "u2", Choices: []string{"alpha", "gamma", "beta"}},
		{Name: "u3", Choices: []string{"beta", "alpha"}},
		{Name: "u4", Choices: []string{"beta", "gamma"}},
		{Name: "u5", Choices: []string{"gamma", "beta", "alpha"}},
		{Name: "u6", Choices: []string{"gamma", "alpha"}},
	}
	quotas := []Quota{
		{Team: "alpha", Capacity: 2},
		{Team: "beta", Capacity: 1},
		{Team: "gamma", Capacity: 2},
	}

	res, err := Match(teamPrefs, userPrefs, quotas)
	require.NoError(t, err)

	t.Run("quota bound", func(t *testing.T) {
		req := require.New(t)
		for _, q := range quotas {
			members, ok := res.Members(q.Team)
			req.True(ok)
			req.LessOrEqual(len(members), q.Capacity)
		}
	})

	t.Run("injectivity", func(t *testing.T) {
		req := require.New(t)
		seen := map[string]string{}
		for _, a := range res.Assignments {
			for _, m := range a.Members {
				prev, dup := seen[m]
				req.False(dup, "user %s assigned to both %s and %s", m, prev, a.Team)
				seen[m] = a.Team
			}
		}
	})

	t.Run("stability", func(t *testing.T) {
		requireStable(t, teamPrefs, userPrefs, quotas, res)
	})

	t.Run("determinism", func(t *testing.T) {
		req := require.New(t)
		for i := 0; i < 5; i++ {
			again, err := Match(teamPrefs, userPrefs, quotas)
			req.NoError(err)
			req.Equal(res, again)
		}
	})
}

// requireStable fails the test when the assignment contains a blocking
// pair: a user and a team, not matched together, where the user ranks the
// team above its current assignment and the team either has free capacity
// or ranks the user above its least-preferred member.
func requireStable(t *testing.T, teamPrefs, userPrefs []Preference, quotas []Quota, res Result) {
	t.Helper()
	req := require.New(t)

	rank := func(prefs []Preference, owner, candidate string) int {
		for _, p := range prefs {
			if p.Name != owner {
				continue
			}
			for i, c := range p.Choices {
				if c == candidate {
					return i
				}
			}
			return len(p.Choices)
		}
		return 0
	}

	capacity := map[string]int{}
	for _, q := range quotas {
		capacity[q.Team] = q.Capacity
	}

	teamOf := map[string]string{}
	for _, a := range res.Assignments {
		for _, m := range a.Members {
			teamOf[m] = a.Team
		}
	}

	for _, up := range userPrefs {
		user := up.Name
		current, matched := teamOf[user]
		for _, team := range up.Choices {
			if team == current {
				break // everything past this point ranks worse
			}
			if matched && rank(userPrefs, user, team) >= rank(userPrefs, user, current) {
				continue
			}
			members, ok := res.Members(team)
			if !ok {
				continue
			}
			if len(members) < capacity[team] {
				req.Failf("unstable", "user %s and under-quota team %s block the matching", user, team)
			}
			for _, m := range members {
				if rank(teamPrefs, team, user) < rank(teamPrefs, team, m) {
					req.Failf("unstable", "user %s and team %s block the matching over member %s", user, team, m)
				}
			}
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	const users, teams = 200, 20

	teamPrefs := make([]Preference, teams)
	quotas := make([]Quota, teams)
	allUsers := make([]string, users)
	for i := range allUsers {
		allUsers[i] = fmt.Sprintf("u%03d", i)
	}
	for i := range teamPrefs {
		choices := make([]string, users)
		for j := range choices {
			choices[j] = allUsers[(j*7+i)%users]
		}
		teamPrefs[i] = Preference{Name: fmt.Sprintf("t%02d", i), Choices: choices}
		quotas[i] = Quota{Team: teamPrefs[i].Name, Capacity: users / teams}
	}
	userPrefs := make([]Preference, users)
	for i := range userPrefs {
		choices := make([]string, teams)
		for j := range choices {
			choices[j] = teamPrefs[(j*3+i)%teams].Name
		}
		userPrefs[i] = Preference{Name: allUsers[i], Choices: choices}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Match(teamPrefs, userPrefs, quotas); err != nil {
			b.Fatal(err)
		}
	}
}
