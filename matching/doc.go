// Package matching assigns users to capacity-limited teams from mutually
// ranked preferences, producing a stable assignment: no user and team that
// would both prefer each other over their current match are left apart.
//
// The capacitated problem is reduced to a classical one-to-one instance by
// cloning each team into quota-many slots sharing the team's preference
// list, solved with deferred acceptance (Gale-Shapley, users proposing),
// and folded back into team terms afterwards.
//
// A run is a pure, synchronous computation over freshly built state; the
// package holds nothing between calls and is safe for concurrent use as
// long as each call owns its inputs.
package matching
