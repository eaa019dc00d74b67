package assign

type minUnassignedAssigner struct {
	nodeLimit uint64
}

func (assigner *minUnassignedAssigner) Solve(input ModelInput) ([]Assignment, error) {
	//** Validate group constraints before any search
	if !minSizePossible(input.Groups) || !minSeatsCoverable(input) {
		return []Assignment{}, nil
	}

	//** Order people so the most constrained are decided first
	search := &minUnassignedSearch{
		groups:    input.Groups,
		people:    sortPeople(input.People),
		state:     newSearchState(input.Groups),
		tracker:   newTracker(),
		nodeLimit: assigner.nodeLimit,
	}

	err := search.backtrack(0)
	return search.tracker.results.values(), err
}

func (assigner *minUnassignedAssigner) Verify(assignment Assignment, input ModelInput) bool {
	return verify(assignment, input, true)
}

type minUnassignedSearch struct {
	groups    map[string]GroupConstraint
	people    []Person
	state     *searchState
	tracker   *tracker
	nodeLimit uint64
	nodes     uint64
}

// backtrack explores single-membership placements of people[personIndex:]:
// each person either joins one eligible group with spare capacity or is left
// on the explicit unassigned list. The unassigned count never shrinks as the
// search descends, so a branch already above the best known count can be
// abandoned outright.
func (search *minUnassignedSearch) backtrack(personIndex int) error {
	if search.nodes++; search.nodeLimit > 0 && search.nodes > search.nodeLimit {
		return ErrNodeLimitReached
	}

	if uint64(len(search.state.unassigned)) > search.tracker.bound() {
		return nil
	}

	if personIndex == len(search.people) {
		if meetsMinSizes(search.state, search.groups) {
			search.tracker.record(normalize(search.state, search.groups))
		}
		return nil
	}

	person := search.people[personIndex]

	// MaxGroups is clamped to one membership here; a quota of zero means the
	// person can only stay unassigned
	if person.MaxGroups > 0 {
		for _, groupName := range eligibleGroups(person, search.groups) {
			if uint64(len(search.state.members[groupName])) >= search.groups[groupName].MaxSize {
				continue
			}

			search.state.push(groupName, person.Name)
			err := search.backtrack(personIndex + 1)
			search.state.pop(groupName, person.Name)
			if err != nil {
				return err
			}
		}
	}

	search.state.pushUnassigned(person.Name)
	err := search.backtrack(personIndex + 1)
	search.state.popUnassigned(person.Name)
	return err
}
