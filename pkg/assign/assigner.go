package assign

import "errors"

// ErrNodeLimitReached is returned when a solve exceeds its node budget before
// exhausting the search space. The assignments accumulated so far are still
// returned alongside it.
var ErrNodeLimitReached = errors.New("node limit reached before the search space was exhausted")

// Assigner enumerates the valid placements of people into groups. Solve
// returns the deduplicated assignments in a deterministic order; an empty
// slice with a nil error means no valid assignment exists, whether the
// constraints were structurally infeasible or simply unsatisfiable.
type Assigner interface {
	Solve(input ModelInput) ([]Assignment, error)
	Verify(assignment Assignment, input ModelInput) bool
}

// NewExhaustiveAssigner builds an assigner that enumerates every valid
// assignment, allowing a person to hold up to MaxGroups simultaneous
// memberships. A nodeLimit of 0 means unbounded.
func NewExhaustiveAssigner(nodeLimit uint64) Assigner {
	return &exhaustiveAssigner{nodeLimit: nodeLimit}
}

// NewMinUnassignedAssigner builds an assigner where each person joins at most
// one group or stays unassigned, and only the assignments with the fewest
// unassigned people are kept. Branches that already exceed the best known
// unassigned count are pruned. A nodeLimit of 0 means unbounded.
func NewMinUnassignedAssigner(nodeLimit uint64) Assigner {
	return &minUnassignedAssigner{nodeLimit: nodeLimit}
}
