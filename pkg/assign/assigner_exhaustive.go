package assign

type exhaustiveAssigner struct {
	nodeLimit uint64
}

func (assigner *exhaustiveAssigner) Solve(input ModelInput) ([]Assignment, error) {
	//** Validate group constraints before any search
	if !minSizePossible(input.Groups) || !minSeatsCoverable(input) {
		return []Assignment{}, nil
	}

	//** Order people so the most constrained are decided first
	search := &exhaustiveSearch{
		groups:    input.Groups,
		people:    sortPeople(input.People),
		state:     newSearchState(input.Groups),
		results:   newResultSet(),
		nodeLimit: assigner.nodeLimit,
	}

	err := search.backtrack(0)
	return search.results.values(), err
}

func (assigner *exhaustiveAssigner) Verify(assignment Assignment, input ModelInput) bool {
	return verify(assignment, input, false)
}

type exhaustiveSearch struct {
	groups    map[string]GroupConstraint
	people    []Person
	state     *searchState
	results   *resultSet
	nodeLimit uint64
	nodes     uint64
}

// backtrack explores every way of assigning people[personIndex:] on top of
// the current state. For each person it tries every k-combination of their
// eligible groups for k in 0..MaxGroups; the empty combination leaves the
// person out of all groups. State mutations are undone before the next
// combination is tried.
func (search *exhaustiveSearch) backtrack(personIndex int) error {
	if search.nodes++; search.nodeLimit > 0 && search.nodes > search.nodeLimit {
		return ErrNodeLimitReached
	}

	if personIndex == len(search.people) {
		if meetsMinSizes(search.state, search.groups) {
			search.results.add(normalize(search.state, search.groups))
		}
		return nil
	}

	person := search.people[personIndex]
	eligible := eligibleGroups(person, search.groups)

	var err error
	maxCombinationSize := min(person.MaxGroups, uint64(len(eligible)))
	for k := uint64(0); k <= maxCombinationSize && err == nil; k++ {
		combinations(eligible, k, search.hasCapacity, func(combination []string) {
			if err != nil {
				return
			}

			for _, groupName := range combination {
				search.state.push(groupName, person.Name)
			}

			err = search.backtrack(personIndex + 1)

			for _, groupName := range combination {
				search.state.pop(groupName, person.Name)
			}
		})
	}
	return err
}

func (search *exhaustiveSearch) hasCapacity(groupName string) bool {
	return uint64(len(search.state.members[groupName])) < search.groups[groupName].MaxSize
}
