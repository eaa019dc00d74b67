package assign

import "log"

// searchState is the mutable state of one solve: the ordered member lists per
// group and, in the exclusive variant, the explicit unassigned list. It is
// owned by a single search and mutated under a strict push/pop discipline:
// every mutation made before a recursive call is undone after it returns.
type searchState struct {
	members    map[string][]string
	unassigned []string
}

func newSearchState(groups map[string]GroupConstraint) *searchState {
	members := make(map[string][]string, len(groups))
	for groupName := range groups {
		members[groupName] = make([]string, 0)
	}
	return &searchState{members: members}
}

func (state *searchState) push(groupName, personName string) {
	state.members[groupName] = append(state.members[groupName], personName)
}

// pop removes the most recent member of a group. A mismatch between the
// popped name and the expected one means the push/pop discipline was broken
// somewhere, which corrupts every sibling branch; that is a programming
// defect, not a recoverable condition.
func (state *searchState) pop(groupName, personName string) {
	members := state.members[groupName]
	if len(members) == 0 || members[len(members)-1] != personName {
		log.Panicf("corrupted search state: expected %v on top of group %v", personName, groupName)
	}
	state.members[groupName] = members[:len(members)-1]
}

func (state *searchState) pushUnassigned(personName string) {
	state.unassigned = append(state.unassigned, personName)
}

func (state *searchState) popUnassigned(personName string) {
	if len(state.unassigned) == 0 || state.unassigned[len(state.unassigned)-1] != personName {
		log.Panicf("corrupted search state: expected %v on top of unassigned", personName)
	}
	state.unassigned = state.unassigned[:len(state.unassigned)-1]
}
