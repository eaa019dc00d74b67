package assign

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Assignment is one complete, canonical placement of people into groups.
// Every group of the input appears as a key (possibly with an empty member
// list), members and unassigned names are sorted, and two assignments are the
// same result iff their keys are equal.
type Assignment struct {
	Groups     map[string][]string
	Unassigned []string
}

// Key flattens the assignment into its canonical identity: groups in name
// order with sorted members, followed by the sorted unassigned list. Search
// paths that build the same grouping through different internal orders
// collapse onto the same key. Every name is quoted so delimiters inside a
// name cannot make two structurally different assignments share a key.
func (assignment Assignment) Key() string {
	groupNames := lo.Keys(assignment.Groups)
	slices.Sort(groupNames)

	var builder strings.Builder
	for _, groupName := range groupNames {
		builder.WriteString(strconv.Quote(groupName))
		builder.WriteByte('=')
		writeNames(&builder, assignment.Groups[groupName])
		builder.WriteByte('|')
	}
	builder.WriteByte('~')
	writeNames(&builder, assignment.Unassigned)
	return builder.String()
}

func writeNames(builder *strings.Builder, names []string) {
	for i, name := range names {
		if i > 0 {
			builder.WriteByte(';')
		}
		builder.WriteString(strconv.Quote(name))
	}
}

// normalize copies the mutable search state into a canonical Assignment,
// sorting members per group and the unassigned list. Every group of the
// constraint mapping is present in the result, empty or not.
func normalize(state *searchState, groups map[string]GroupConstraint) Assignment {
	normalized := make(map[string][]string, len(groups))
	for groupName := range groups {
		members := make([]string, len(state.members[groupName]))
		copy(members, state.members[groupName])
		slices.Sort(members)
		normalized[groupName] = members
	}

	unassigned := make([]string, len(state.unassigned))
	copy(unassigned, state.unassigned)
	slices.Sort(unassigned)

	return Assignment{Groups: normalized, Unassigned: unassigned}
}

// resultSet deduplicates assignments by canonical key.
type resultSet struct {
	assignments map[string]Assignment
}

func newResultSet() *resultSet {
	return &resultSet{assignments: make(map[string]Assignment)}
}

func (set *resultSet) add(assignment Assignment) {
	set.assignments[assignment.Key()] = assignment
}

// values returns the deduplicated assignments in key order, so iteration for
// output is deterministic.
func (set *resultSet) values() []Assignment {
	keys := lo.Keys(set.assignments)
	slices.Sort(keys)
	return lo.Map(keys, func(key string, _ int) Assignment { return set.assignments[key] })
}
